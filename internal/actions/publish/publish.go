// Package publish pushes the branches of a train to a remote.
package publish

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"prtrain.dev/prtrain/internal/config"
	prerrors "prtrain.dev/prtrain/internal/errors"
)

// Pusher pushes a single branch to a remote
type Pusher interface {
	Push(ctx context.Context, remote, branchName string) error
}

// ProgressReporter receives push progress. Calls are serialized.
type ProgressReporter interface {
	PushStarted(remote string, branches []string)
	BranchPushed(branchName string, err error)
	PushCompleted(pushed, failed int)
}

// Options contains options for publishing a train
type Options struct {
	Branches []string
	// Remote defaults to config.DefaultRemote when empty
	Remote string
	// Concurrency caps simultaneous pushes; 0 means one goroutine per branch
	Concurrency int
	Reporter    ProgressReporter
}

// Result records the outcome of every push
type Result struct {
	Remote string
	Pushed []string
	Failed map[string]error
}

// Publish pushes every branch concurrently and waits for all of them to settle.
// A failed push does not stop the others; every failure is collected into a
// PushFailedError returned once all pushes are done.
func Publish(ctx context.Context, pusher Pusher, opts Options) (*Result, error) {
	remote := opts.Remote
	if remote == "" {
		remote = config.DefaultRemote
	}

	var reportMu sync.Mutex
	report := func(fn func(ProgressReporter)) {
		if opts.Reporter == nil {
			return
		}
		reportMu.Lock()
		defer reportMu.Unlock()
		fn(opts.Reporter)
	}

	report(func(r ProgressReporter) { r.PushStarted(remote, opts.Branches) })

	errs := make([]error, len(opts.Branches))
	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, branch := range opts.Branches {
		g.Go(func() error {
			err := pusher.Push(ctx, remote, branch)
			errs[i] = err
			report(func(r ProgressReporter) { r.BranchPushed(branch, err) })
			// Failures are collected rather than returned so that the group never short-circuits
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{Remote: remote, Failed: map[string]error{}}
	for i, branch := range opts.Branches {
		if errs[i] != nil {
			result.Failed[branch] = errs[i]
			continue
		}
		result.Pushed = append(result.Pushed, branch)
	}

	report(func(r ProgressReporter) { r.PushCompleted(len(result.Pushed), len(result.Failed)) })

	if len(result.Failed) > 0 {
		return result, prerrors.NewPushFailedError(remote, result.Failed)
	}
	return result, nil
}
