package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// PushProgressUI receives push progress from the publisher
type PushProgressUI interface {
	PushStarted(remote string, branches []string)
	BranchPushed(branchName string, err error)
	PushCompleted(pushed, failed int)
}

// NewPushProgressUI creates the appropriate UI based on TTY availability
func NewPushProgressUI(splog *Splog) PushProgressUI {
	if IsTTY() {
		return NewTTYPushProgress(splog)
	}
	return NewSimplePushProgress(splog)
}

func pushSummary(splog *Splog, pushed, failed int) {
	if failed > 0 {
		splog.Info("%s", ColorRed(fmt.Sprintf("Pushed %d branch(es), %d failed", pushed, failed)))
		return
	}
	splog.Info("All changes pushed ✅")
}

// ============================================================================
// SimplePushProgress - line-by-line output for non-TTY environments
// ============================================================================

// SimplePushProgress prints one line per settled push
type SimplePushProgress struct {
	splog *Splog
	mu    sync.Mutex
	total int
	done  int
}

// NewSimplePushProgress creates a new simple push progress UI
func NewSimplePushProgress(splog *Splog) *SimplePushProgress {
	return &SimplePushProgress{splog: splog}
}

func (u *SimplePushProgress) PushStarted(remote string, branches []string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.total = len(branches)
	u.done = 0
	u.splog.Info("Pushing changes to remote %s...", ColorCyan(remote))
}

func (u *SimplePushProgress) BranchPushed(branchName string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.done++
	if err != nil {
		u.splog.Info("  ✗ [%d/%d] %s", u.done, u.total, ColorRed(fmt.Sprintf("%s failed: %v", branchName, err)))
		return
	}
	u.splog.Info("  ✓ [%d/%d] %s", u.done, u.total, ColorBranchName(branchName))
}

func (u *SimplePushProgress) PushCompleted(pushed, failed int) {
	pushSummary(u.splog, pushed, failed)
}

// ============================================================================
// TTYPushProgress - bubbletea progress bar for TTY environments
// ============================================================================

const progressBarWidth = 20

// TTYPushProgress renders an animated upload bar while pushes run
type TTYPushProgress struct {
	splog   *Splog
	program *tea.Program
	failed  []string
}

// NewTTYPushProgress creates a new TTY push progress UI
func NewTTYPushProgress(splog *Splog) *TTYPushProgress {
	return &TTYPushProgress{splog: splog}
}

func (u *TTYPushProgress) PushStarted(remote string, branches []string) {
	u.splog.Info("Pushing changes to remote %s...", ColorCyan(remote))

	// Interrupts are left to the caller's signal handling
	u.program = tea.NewProgram(
		newPushModel(len(branches)),
		tea.WithInput(nil),
		tea.WithOutput(u.splog.Writer()),
		tea.WithoutSignalHandler(),
	)
	go func() {
		_, _ = u.program.Run()
	}()
}

func (u *TTYPushProgress) BranchPushed(branchName string, err error) {
	if err != nil {
		u.failed = append(u.failed, fmt.Sprintf("%s: %v", branchName, err))
	}
	if u.program != nil {
		u.program.Send(pushTickMsg{})
	}
}

func (u *TTYPushProgress) PushCompleted(pushed, failed int) {
	if u.program != nil {
		u.program.Send(pushDoneMsg{})
		u.program.Wait()
	}
	for _, line := range u.failed {
		u.splog.Info("  ✗ %s", ColorRed(line))
	}
	pushSummary(u.splog, pushed, failed)
}

type pushTickMsg struct{}

type pushDoneMsg struct{}

type pushModel struct {
	bar     progress.Model
	total   int
	ticks   int
	started time.Time
	done    bool
}

// newPushModel counts one tick up front so the bar never starts empty
func newPushModel(branches int) *pushModel {
	return &pushModel{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressBarWidth)),
		total:   branches + 1,
		ticks:   1,
		started: time.Now(),
	}
}

func (m *pushModel) Init() tea.Cmd {
	return nil
}

func (m *pushModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case pushTickMsg:
		if m.ticks < m.total {
			m.ticks++
		}
		return m, nil
	case pushDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *pushModel) percent() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.ticks) / float64(m.total)
}

func (m *pushModel) View() string {
	// The bar is cleared once every push has settled
	if m.done {
		return ""
	}
	elapsed := time.Since(m.started).Round(100 * time.Millisecond)
	return fmt.Sprintf("Uploading %s %s\n", m.bar.ViewAs(m.percent()), ColorDim(elapsed.String()))
}
