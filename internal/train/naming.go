package train

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	prerrors "prtrain.dev/prtrain/internal/errors"
)

// CombinedSegment is the segment naming the branch every train is merged into
const CombinedSegment = "combined"

var (
	// The greedy root anchors on the last step or combined segment.
	rootRegex = regexp.MustCompile(`^(.+)/([0-9]+|` + CombinedSegment + `)(/.*)?$`)
	stepRegex = regexp.MustCompile(`^.*/([0-9]+)(/.*)?$`)
)

// ParseRoot returns the train root of a branch name of the form
// <root>/<segment>[/<anything>] where segment is a step index or "combined".
func ParseRoot(branchName string) (string, error) {
	match := rootRegex.FindStringSubmatch(branchName)
	if match == nil {
		return "", fmt.Errorf("%q: %w", branchName, prerrors.ErrNotInTrain)
	}
	return match[1], nil
}

// ParseStepIndex returns the step index encoded in the last numeric segment of a branch name.
// The combined branch is never a step.
func ParseStepIndex(branchName string) (int, error) {
	match := stepRegex.FindStringSubmatch(branchName)
	if match == nil || lastSegment(branchName) == CombinedSegment {
		return 0, fmt.Errorf("%q: %w", branchName, prerrors.ErrNotAStep)
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("%q: %w", branchName, prerrors.ErrNotAStep)
	}
	return index, nil
}

// StepIndexInTrain returns the step index of branchName within the train rooted at root.
// Only the part after root is parsed, so numeric components of the root are never steps.
func StepIndexInTrain(root, branchName string) (int, error) {
	rest, ok := strings.CutPrefix(branchName, root)
	if !ok {
		return 0, fmt.Errorf("%q: %w", branchName, prerrors.ErrNotAStep)
	}
	index, err := ParseStepIndex(rest)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", branchName, prerrors.ErrNotAStep)
	}
	return index, nil
}

// CombinedBranchName returns the name of the combined branch for a root
func CombinedBranchName(root string) string {
	return root + "/" + CombinedSegment
}

// StepBranchName returns the branch name of step index within root
func StepBranchName(root string, index int) string {
	return root + "/" + strconv.Itoa(index)
}

func lastSegment(branchName string) string {
	for i := len(branchName) - 1; i >= 0; i-- {
		if branchName[i] == '/' {
			return branchName[i+1:]
		}
	}
	return branchName
}
