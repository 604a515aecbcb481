// Package tui provides the terminal presentation of a prtrain run.
//
// It receives plain status events from the merge orchestrator and the
// publisher and renders them: the start-up banner, the discovered train,
// per-merge progress lines and push progress (an animated bar on a TTY,
// one line per branch otherwise). It also owns the Splog logger.
package tui
