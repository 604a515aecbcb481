package tui

import "github.com/charmbracelet/lipgloss"

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// ColorRed colors text red
func ColorRed(text string) string {
	return redStyle.Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return greenStyle.Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return yellowStyle.Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return cyanStyle.Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorBranchName colors a branch name
func ColorBranchName(branchName string) string {
	return branchStyle.Render(branchName)
}
