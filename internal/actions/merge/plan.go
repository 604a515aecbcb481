package merge

import (
	"errors"
	"fmt"
	"slices"

	prerrors "prtrain.dev/prtrain/internal/errors"
	"prtrain.dev/prtrain/internal/git"
	"prtrain.dev/prtrain/internal/train"
)

// Plan is the ordered list of merges computed for the current branch
type Plan struct {
	Train         *train.Train
	CurrentBranch string
	// Steps are the merges in execution order; the last one targets the combined branch
	Steps []train.MergeStep
	// CreateCombined is set when the combined branch does not exist yet
	CreateCombined bool
}

// CreatePlan validates the repository and resolves the train of the current branch.
// It does not mutate the repository.
func CreatePlan(backend git.Backend) (*Plan, error) {
	if !backend.IsRepository() {
		return nil, prerrors.ErrNotARepository
	}

	current, err := backend.CurrentBranchName()
	if err != nil {
		if errors.Is(err, git.ErrDetachedHead) {
			return nil, fmt.Errorf("%w: %w", prerrors.ErrNotPartOfTrain, err)
		}
		return nil, fmt.Errorf("failed to read current branch: %w", err)
	}

	branches, err := backend.ListLocalBranches()
	if err != nil {
		return nil, fmt.Errorf("failed to list local branches: %w", err)
	}

	t, err := train.Resolve(current, branches)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Train:          t,
		CurrentBranch:  current,
		Steps:          t.MergeSteps(),
		CreateCombined: !t.IsEmpty() && !slices.Contains(branches, t.CombinedBranch),
	}, nil
}

// IsEmpty reports whether the plan has nothing to merge
func (p *Plan) IsEmpty() bool {
	return len(p.Steps) == 0
}

// Describe returns one human-readable line per action of the plan
func (p *Plan) Describe() []string {
	lines := make([]string, 0, len(p.Steps)+1)
	for i, step := range p.Steps {
		if i == len(p.Steps)-1 && p.CreateCombined {
			lines = append(lines, fmt.Sprintf("create %s", step.To))
		}
		lines = append(lines, fmt.Sprintf("merge %s into %s", step.From, step.To))
	}
	return lines
}
