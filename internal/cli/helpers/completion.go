// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"prtrain.dev/prtrain/internal/git"
)

// CompleteRemotes is a helper for RegisterFlagCompletionFunc
// that returns the remotes configured in the repository.
func CompleteRemotes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	remotes, err := git.NewGitBackend("").ListRemotes()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return remotes, cobra.ShellCompDirectiveNoFileComp
}
