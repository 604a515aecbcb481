// Package testhelpers provides testing utilities for prtrain,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")
	require.ElementsMatch(t, expected, branches)
}

// ExpectCurrentBranch asserts which branch is checked out.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	current, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, current)
}

// ExpectContains asserts that every ancestor ref is reachable from descendant.
func ExpectContains(t *testing.T, repo *GitRepo, descendant string, ancestors ...string) {
	t.Helper()

	for _, ancestor := range ancestors {
		require.True(t, repo.IsAncestor(ancestor, descendant), "%s should contain %s", descendant, ancestor)
	}
}
