package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimplePushProgress(t *testing.T) {
	t.Run("prints every push and a summary", func(t *testing.T) {
		splog, buf := newBufferSplog(t)
		ui := NewSimplePushProgress(splog)

		ui.PushStarted("origin", []string{"f/1", "f/combined"})
		ui.BranchPushed("f/combined", nil)
		ui.BranchPushed("f/1", nil)
		ui.PushCompleted(2, 0)

		require.Equal(t, "Pushing changes to remote origin...\n"+
			"  ✓ [1/2] f/combined\n"+
			"  ✓ [2/2] f/1\n"+
			"All changes pushed ✅\n", buf.String())
	})

	t.Run("reports failures", func(t *testing.T) {
		splog, buf := newBufferSplog(t)
		ui := NewSimplePushProgress(splog)

		ui.PushStarted("upstream", []string{"f/1"})
		ui.BranchPushed("f/1", errors.New("rejected"))
		ui.PushCompleted(0, 1)

		require.Contains(t, buf.String(), "  ✗ [1/1] f/1 failed: rejected\n")
		require.Contains(t, buf.String(), "Pushed 0 branch(es), 1 failed\n")
		require.NotContains(t, buf.String(), "All changes pushed")
	})
}

func TestPushModel(t *testing.T) {
	m := newPushModel(3)
	require.InDelta(t, 0.25, m.percent(), 0.001)
	require.Contains(t, m.View(), "Uploading")

	for range 5 {
		m.Update(pushTickMsg{})
	}
	require.InDelta(t, 1.0, m.percent(), 0.001)

	_, cmd := m.Update(pushDoneMsg{})
	require.NotNil(t, cmd)
	require.True(t, m.done)
	require.Empty(t, m.View())
}
