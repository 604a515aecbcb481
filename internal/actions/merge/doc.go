// Package merge realizes a PR train: it merges every step into its successor,
// then the tip into the combined branch, and optionally publishes the result.
//
// Merges run strictly in order on the caller's goroutine because each one
// mutates the shared working tree. The branch checked out at start is
// restored on every exit path once the run has started mutating.
package merge
