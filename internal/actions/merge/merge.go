package merge

import (
	"context"
	"errors"
	"time"

	"prtrain.dev/prtrain/internal/actions/publish"
	"prtrain.dev/prtrain/internal/config"
	prerrors "prtrain.dev/prtrain/internal/errors"
	"prtrain.dev/prtrain/internal/git"
	"prtrain.dev/prtrain/internal/runtime"
	"prtrain.dev/prtrain/internal/train"
	"prtrain.dev/prtrain/internal/tui"
)

// ProgressReporter is an interface for reporting merge progress
type ProgressReporter interface {
	TrainResolved(t *train.Train)
	MergeStarted(step train.MergeStep, index, total int)
	MergeCompleted(step train.MergeStep, index, total int)
	MergeFailed(step train.MergeStep, index, total int, err error)
	CombinedBranchCreated(branchName string)
	BranchRestored(branchName string)
}

// Options contains options for the merge action
type Options struct {
	// DryRun resolves and reports the plan without touching the repository
	DryRun bool
	// Push publishes every train branch after merging
	Push   bool
	Remote string
	// SettleDelay is the pause after each merge before it is reported complete.
	// Zero disables it; DefaultOptions and OptionsFromConfig start from config.DefaultSettleDelay.
	SettleDelay     time.Duration
	PushConcurrency int

	Reporter     ProgressReporter
	PushReporter publish.ProgressReporter
}

// DefaultOptions returns the options of a run without configuration
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig returns the options described by cfg
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Push:            cfg.Push,
		Remote:          cfg.Remote,
		SettleDelay:     cfg.SettleDelay,
		PushConcurrency: cfg.PushConcurrency,
	}
}

// Result describes what a run did
type Result struct {
	Plan *Plan
	// Merged lists the merges that completed, in order
	Merged []train.MergeStep
	// Push is set when publishing ran
	Push  *publish.Result
	State State
}

type orchestrator struct {
	backend git.Backend
	splog   *tui.Splog
	opts    Options
	result  *Result
}

// Action merges the train of the current branch and optionally publishes it
func Action(ctx *runtime.Context, opts Options) (*Result, error) {
	o := &orchestrator{
		backend: ctx.Backend,
		splog:   ctx.Splog,
		opts:    opts,
		result:  &Result{State: StateIdle},
	}
	err := o.run(ctx.Context)
	return o.result, err
}

func (o *orchestrator) transition(state State) {
	o.splog.Debug("merge state: %s -> %s", o.result.State, state)
	o.result.State = state
}

func (o *orchestrator) reporter() ProgressReporter {
	if o.opts.Reporter == nil {
		return nopReporter{}
	}
	return o.opts.Reporter
}

func (o *orchestrator) run(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			o.transition(StateFailed)
			return
		}
		o.transition(StateDone)
	}()

	plan, err := CreatePlan(o.backend)
	if err != nil {
		return err
	}
	o.result.Plan = plan
	o.transition(StateValidatedRepo)
	o.reporter().TrainResolved(plan.Train)

	if plan.IsEmpty() || o.opts.DryRun {
		return nil
	}

	lease := acquireCheckout(o.backend, plan.CurrentBranch)
	defer func() {
		err = errors.Join(err, o.restore(ctx, lease))
	}()

	if err := o.mergeSteps(ctx, plan); err != nil {
		return err
	}

	if !o.opts.Push {
		return nil
	}

	o.transition(StatePushing)
	done := make(chan error, 1)
	go func() {
		res, pushErr := publish.Publish(ctx, o.backend, publish.Options{
			Branches:    plan.Train.Branches(),
			Remote:      o.opts.Remote,
			Concurrency: o.opts.PushConcurrency,
			Reporter:    o.opts.PushReporter,
		})
		o.result.Push = res
		done <- pushErr
	}()

	// Pushes read branch tips by name, so the working tree can be restored meanwhile
	restoreErr := o.restore(ctx, lease)
	return errors.Join(<-done, restoreErr)
}

func (o *orchestrator) mergeSteps(ctx context.Context, plan *Plan) error {
	total := len(plan.Steps)
	last := total - 1

	o.transition(StateMergingSteps)
	for i, step := range plan.Steps[:last] {
		if err := o.mergeStep(ctx, step, i, total); err != nil {
			return err
		}
	}

	o.transition(StateEnsuringCombinedBranch)
	if plan.CreateCombined {
		combined := plan.Train.CombinedBranch
		if err := o.backend.CreateAndCheckout(ctx, combined); err != nil {
			return prerrors.NewMergeFailedError(plan.Train.Tip(), combined, err)
		}
		o.reporter().CombinedBranchCreated(combined)
	}

	o.transition(StateMergingIntoCombined)
	return o.mergeStep(ctx, plan.Steps[last], last, total)
}

// mergeStep checks out step.To and merges step.From into it
func (o *orchestrator) mergeStep(ctx context.Context, step train.MergeStep, index, total int) error {
	o.reporter().MergeStarted(step, index, total)

	fail := func(err error) error {
		mergeErr := prerrors.NewMergeFailedError(step.From, step.To, err)
		o.reporter().MergeFailed(step, index, total, mergeErr)
		return mergeErr
	}

	if err := o.backend.Checkout(ctx, step.To); err != nil {
		return fail(err)
	}
	if err := o.backend.Merge(ctx, step.From); err != nil {
		return fail(err)
	}
	if err := settle(ctx, o.opts.SettleDelay); err != nil {
		return fail(err)
	}

	o.result.Merged = append(o.result.Merged, step)
	o.reporter().MergeCompleted(step, index, total)
	return nil
}

func (o *orchestrator) restore(ctx context.Context, lease *checkoutLease) error {
	if lease.released {
		return nil
	}
	previous := o.result.State
	o.transition(StateRestoringOriginalBranch)
	if err := lease.Release(ctx); err != nil {
		o.splog.Debug("restore failed: %v", err)
		return err
	}
	o.reporter().BranchRestored(lease.branch)
	o.transition(previous)
	return nil
}

// settle waits out the settling delay unless ctx is canceled first
func settle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type nopReporter struct{}

func (nopReporter) TrainResolved(*train.Train) {}
func (nopReporter) MergeStarted(train.MergeStep, int, int) {}
func (nopReporter) MergeCompleted(train.MergeStep, int, int) {}
func (nopReporter) MergeFailed(train.MergeStep, int, int, error) {}
func (nopReporter) CombinedBranchCreated(string) {}
func (nopReporter) BranchRestored(string) {}
