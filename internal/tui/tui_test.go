package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newBufferSplog(t *testing.T) (*Splog, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, "")
	if err != nil {
		t.Fatalf("failed to create splog: %v", err)
	}
	return splog, &buf
}
