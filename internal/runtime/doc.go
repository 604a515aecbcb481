// Package runtime provides the execution context for prtrain commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the version-control backend, logger, and repository root path.
package runtime
