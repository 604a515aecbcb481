package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func withColor(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })
}

func TestColors(t *testing.T) {
	t.Run("plain without a color profile", func(t *testing.T) {
		for _, color := range []func(string) string{ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorDim, ColorBranchName} {
			require.Equal(t, "text", color("text"))
		}
	})

	t.Run("styled with a color profile", func(t *testing.T) {
		withColor(t)
		for _, color := range []func(string) string{ColorRed, ColorGreen, ColorYellow, ColorCyan, ColorDim, ColorBranchName} {
			styled := color("text")
			require.Contains(t, styled, "text")
			require.Contains(t, styled, "\x1b[")
		}
	})
}

func TestReporterOutputIsStyled(t *testing.T) {
	withColor(t)

	t.Run("dry run plan", func(t *testing.T) {
		splog, buf := newBufferSplog(t)

		PrintPlan(splog, []string{"merge a into b"})
		require.Contains(t, buf.String(), ColorYellow("Dry run, the train would:"))
		require.Contains(t, buf.String(), ColorDim("merge a into b"))
	})

	t.Run("push progress", func(t *testing.T) {
		splog, buf := newBufferSplog(t)
		ui := NewSimplePushProgress(splog)

		ui.PushStarted("upstream", []string{"f/1"})
		ui.BranchPushed("f/1", errors.New("rejected"))

		out := buf.String()
		require.Contains(t, out, ColorCyan("upstream"))
		require.Contains(t, out, ColorRed("f/1 failed: rejected"))
		require.True(t, strings.HasPrefix(out, "Pushing changes to remote "))
	})
}
