package publish

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	prerrors "prtrain.dev/prtrain/internal/errors"
)

type fakePusher struct {
	mu       sync.Mutex
	calls    []string
	failures map[string]error
	delay    time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (p *fakePusher) Push(_ context.Context, remote, branchName string) error {
	n := p.inFlight.Add(1)
	defer p.inFlight.Add(-1)
	for {
		peak := p.maxInFlight.Load()
		if n <= peak || p.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	p.mu.Lock()
	p.calls = append(p.calls, remote+" "+branchName)
	p.mu.Unlock()
	return p.failures[branchName]
}

type recordingReporter struct {
	started   []string
	remote    string
	pushed    map[string]error
	completed [2]int
	calls     int
}

func (r *recordingReporter) PushStarted(remote string, branches []string) {
	r.remote = remote
	r.started = branches
	r.pushed = map[string]error{}
	r.calls++
}

func (r *recordingReporter) BranchPushed(branchName string, err error) {
	r.pushed[branchName] = err
	r.calls++
}

func (r *recordingReporter) PushCompleted(pushed, failed int) {
	r.completed = [2]int{pushed, failed}
	r.calls++
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	branches := []string{"f/1", "f/2", "f/3", "f/combined"}

	t.Run("pushes every branch to the remote", func(t *testing.T) {
		pusher := &fakePusher{}
		reporter := &recordingReporter{}

		result, err := Publish(ctx, pusher, Options{Branches: branches, Remote: "upstream", Reporter: reporter})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"upstream f/1", "upstream f/2", "upstream f/3", "upstream f/combined"}, pusher.calls)
		require.Equal(t, branches, result.Pushed)
		require.Empty(t, result.Failed)

		require.Equal(t, "upstream", reporter.remote)
		require.Len(t, reporter.pushed, len(branches))
		require.Equal(t, [2]int{4, 0}, reporter.completed)
		require.Equal(t, len(branches)+2, reporter.calls)
	})

	t.Run("defaults to origin", func(t *testing.T) {
		pusher := &fakePusher{}

		result, err := Publish(ctx, pusher, Options{Branches: []string{"f/1"}})
		require.NoError(t, err)
		require.Equal(t, "origin", result.Remote)
		require.Equal(t, []string{"origin f/1"}, pusher.calls)
	})

	t.Run("collects all failures after every push settles", func(t *testing.T) {
		rejected := errors.New("rejected")
		pusher := &fakePusher{failures: map[string]error{
			"f/1": rejected,
			"f/3": fmt.Errorf("timeout"),
		}}
		reporter := &recordingReporter{}

		result, err := Publish(ctx, pusher, Options{Branches: branches, Reporter: reporter})
		require.ErrorIs(t, err, prerrors.ErrPushFailed)
		require.ErrorIs(t, err, rejected)
		require.Len(t, pusher.calls, len(branches))

		var pushErr *prerrors.PushFailedError
		require.ErrorAs(t, err, &pushErr)
		require.Equal(t, []string{"f/1", "f/3"}, pushErr.Branches())

		require.Equal(t, []string{"f/2", "f/combined"}, result.Pushed)
		require.Len(t, result.Failed, 2)
		require.Equal(t, [2]int{2, 2}, reporter.completed)
		require.Equal(t, rejected, reporter.pushed["f/1"])
		require.NoError(t, reporter.pushed["f/2"])
	})

	t.Run("pushes run concurrently", func(t *testing.T) {
		pusher := &fakePusher{delay: 50 * time.Millisecond}

		_, err := Publish(ctx, pusher, Options{Branches: branches})
		require.NoError(t, err)
		require.Greater(t, pusher.maxInFlight.Load(), int32(1))
	})

	t.Run("respects the concurrency limit", func(t *testing.T) {
		pusher := &fakePusher{delay: 10 * time.Millisecond}

		_, err := Publish(ctx, pusher, Options{Branches: branches, Concurrency: 1})
		require.NoError(t, err)
		require.Equal(t, int32(1), pusher.maxInFlight.Load())
		require.Len(t, pusher.calls, len(branches))
	})

	t.Run("nothing to push", func(t *testing.T) {
		pusher := &fakePusher{}

		result, err := Publish(ctx, pusher, Options{})
		require.NoError(t, err)
		require.Empty(t, result.Pushed)
		require.Empty(t, pusher.calls)
	})
}
