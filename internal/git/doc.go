// Package git provides low-level Git operations.
//
// It wraps git command execution and go-git repository access behind the
// Backend interface used by the merge orchestrator and publisher:
//   - Repository detection and current branch (go-git)
//   - Local branch listing (go-git)
//   - Checkout, branch creation and merges (git CLI)
//   - Pushes to a remote (git CLI)
//
// This package should be the only place where direct git commands are executed.
package git
