package train

import (
	"fmt"
	"sort"

	prerrors "prtrain.dev/prtrain/internal/errors"
)

// Train is the ordered chain of step branches sharing a root
type Train struct {
	Root           string
	Steps          []string
	CombinedBranch string
}

// MergeStep is one directed merge of From into To
type MergeStep struct {
	From string
	To   string
}

func (s MergeStep) String() string {
	return fmt.Sprintf("%s -> %s", s.From, s.To)
}

// Resolve computes the train the current branch belongs to from the local branch list.
//
// Candidates are every branch starting with the root of currentBranch that carries a
// numeric step segment after the root, sorted ascending by step index. Two candidates with the same
// index are rejected with a DuplicateStepError.
func Resolve(currentBranch string, allBranches []string) (*Train, error) {
	root, err := ParseRoot(currentBranch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", prerrors.ErrNotPartOfTrain, err)
	}

	type step struct {
		name  string
		index int
	}
	var steps []step
	for _, branch := range allBranches {
		index, err := StepIndexInTrain(root, branch)
		if err != nil {
			continue
		}
		steps = append(steps, step{name: branch, index: index})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].index != steps[j].index {
			return steps[i].index < steps[j].index
		}
		return steps[i].name < steps[j].name
	})

	names := make([]string, 0, len(steps))
	for i, s := range steps {
		if i > 0 && steps[i-1].index == s.index {
			return nil, prerrors.NewDuplicateStepError(s.index, steps[i-1].name, s.name)
		}
		names = append(names, s.name)
	}

	return &Train{
		Root:           root,
		Steps:          names,
		CombinedBranch: CombinedBranchName(root),
	}, nil
}

// IsEmpty reports whether the train has no steps
func (t *Train) IsEmpty() bool {
	return len(t.Steps) == 0
}

// Tip returns the highest step of the train, or "" when the train is empty
func (t *Train) Tip() string {
	if t.IsEmpty() {
		return ""
	}
	return t.Steps[len(t.Steps)-1]
}

// MergeSteps returns the merges needed to realize the train, in execution order:
// each step into its successor, then the tip into the combined branch.
func (t *Train) MergeSteps() []MergeStep {
	if t.IsEmpty() {
		return nil
	}
	merges := make([]MergeStep, 0, len(t.Steps))
	for i := 0; i < len(t.Steps)-1; i++ {
		merges = append(merges, MergeStep{From: t.Steps[i], To: t.Steps[i+1]})
	}
	return append(merges, MergeStep{From: t.Tip(), To: t.CombinedBranch})
}

// Branches returns every branch of the train including the combined branch
func (t *Train) Branches() []string {
	branches := make([]string, 0, len(t.Steps)+1)
	branches = append(branches, t.Steps...)
	return append(branches, t.CombinedBranch)
}
