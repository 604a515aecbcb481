package tui

import (
	"prtrain.dev/prtrain/internal/train"
)

// MergeReporter prints merge progress line by line as the original train tool did
type MergeReporter struct {
	splog *Splog
}

// NewMergeReporter creates a merge reporter writing to splog
func NewMergeReporter(splog *Splog) *MergeReporter {
	return &MergeReporter{splog: splog}
}

func (r *MergeReporter) TrainResolved(t *train.Train) {
	if t.IsEmpty() {
		r.splog.Info("No steps found for train %s.", ColorBranchName(t.Root))
		return
	}
	r.splog.Info("I've found these partial branches:")
	for _, step := range t.Steps {
		r.splog.Info(" -> %s", ColorGreen(step))
	}
	r.splog.Newline()
}

func (r *MergeReporter) MergeStarted(step train.MergeStep, _, _ int) {
	r.splog.Debug("merging %s into %s", step.From, step.To)
	r.splog.Page("merging " + step.From + " into branch " + step.To + "... ")
}

func (r *MergeReporter) MergeCompleted(_ train.MergeStep, _, _ int) {
	r.splog.Info("✅")
}

func (r *MergeReporter) MergeFailed(_ train.MergeStep, _, _ int, err error) {
	r.splog.Info("❌")
	r.splog.Debug("merge failed: %v", err)
}

func (r *MergeReporter) CombinedBranchCreated(branchName string) {
	r.splog.Info("creating combined branch (%s)", branchName)
}

func (r *MergeReporter) BranchRestored(branchName string) {
	r.splog.Debug("checked out %s again", branchName)
}

// PrintPlan lists the actions a run would take without performing them
func PrintPlan(splog *Splog, lines []string) {
	if len(lines) == 0 {
		return
	}
	splog.Info("%s", ColorYellow("Dry run, the train would:"))
	for _, line := range lines {
		splog.Info("  ▸ %s", ColorDim(line))
	}
}
