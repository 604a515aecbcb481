package train

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	prerrors "prtrain.dev/prtrain/internal/errors"
)

func TestParseRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple step", input: "feature/1", expected: "feature"},
		{name: "nested root", input: "feature/train/2", expected: "feature/train"},
		{name: "combined branch", input: "feature/train/combined", expected: "feature/train"},
		{name: "trailing path after step", input: "feature/train/3/fixup", expected: "feature/train"},
		{name: "trailing slash after step", input: "feature/train/3/", expected: "feature/train"},
		{name: "numeric component inside root", input: "release/2024/login/4", expected: "release/2024/login"},
		{name: "anchors on last segment", input: "a/1/b/2", expected: "a/1/b"},
		{name: "combined after numeric root", input: "release/2024/combined", expected: "release/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root, err := ParseRoot(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, root)
		})
	}
}

func TestParseRootRejectsNonTrainBranches(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"hotfix",
		"main",
		"feature/login",
		"feature/v2",
		"feature/2abc",
		"feature/combinedx",
		"/1",
		"1",
		"",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRoot(input)
			require.ErrorIs(t, err, prerrors.ErrNotInTrain)
		})
	}
}

func TestParseStepIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "single digit", input: "feature/train/1", expected: 1},
		{name: "multiple digits", input: "feature/train/42", expected: 42},
		{name: "leading zeros", input: "feature/train/007", expected: 7},
		{name: "zero", input: "feature/train/0", expected: 0},
		{name: "trailing path", input: "feature/train/5/wip", expected: 5},
		{name: "last numeric segment wins", input: "release/2024/login/3", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			index, err := ParseStepIndex(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, index)
		})
	}
}

func TestParseStepIndexRejectsNonSteps(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"feature/train/combined",
		"release/2024/combined",
		"feature/train",
		"hotfix",
		"feature/train/1a",
		"feature/train/99999999999999999999999999",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseStepIndex(input)
			require.ErrorIs(t, err, prerrors.ErrNotAStep)
		})
	}
}

func TestStepIndexInTrain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		root     string
		input    string
		expected int
	}{
		{name: "step of a numeric root", root: "release/2024/login", input: "release/2024/login/3", expected: 3},
		{name: "trailing path", root: "feature/train", input: "feature/train/5/wip", expected: 5},
		{name: "literal prefix", root: "feature/train", input: "feature/training/2", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			index, err := StepIndexInTrain(tt.root, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, index)
		})
	}
}

func TestStepIndexInTrainRejectsRootComponents(t *testing.T) {
	t.Parallel()

	root := "release/2024/login"
	for _, input := range []string{
		"release/2024/login",
		"release/2024/login/notes",
		"release/2024/login/wip",
		"release/2024/login/combined",
		"release/2024/other/1",
		"main",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := StepIndexInTrain(root, input)
			require.ErrorIs(t, err, prerrors.ErrNotAStep)
		})
	}
}

func TestStepBranchNameRoundTrip(t *testing.T) {
	t.Parallel()

	for _, root := range []string{"feature", "feature/train", "release/2024/login", "a/1/b"} {
		for _, index := range []int{0, 1, 9, 10, 123} {
			t.Run(fmt.Sprintf("%s/%d", root, index), func(t *testing.T) {
				name := StepBranchName(root, index)

				parsedRoot, err := ParseRoot(name)
				require.NoError(t, err)
				require.Equal(t, root, parsedRoot)

				parsedIndex, err := ParseStepIndex(name)
				require.NoError(t, err)
				require.Equal(t, index, parsedIndex)
			})
		}
	}
}

func TestCombinedBranchName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "feature/train/combined", CombinedBranchName("feature/train"))

	root, err := ParseRoot(CombinedBranchName("feature/train"))
	require.NoError(t, err)
	require.Equal(t, "feature/train", root)
}
