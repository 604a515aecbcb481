package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `  ____  ____    _             _
 |  _ \|  _ \  | |_ _ __ __ _(_)_ __
 | |_) | |_) | | __| '__/ _' | | '_ \
 |  __/|  _ <  | |_| | | (_| | | | | |
 |_|   |_| \_\  \__|_|  \__,_|_|_| |_|`

const bannerWidth = 65

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

// Banner returns the start-up banner followed by a separator line
func Banner() string {
	return bannerStyle.Render(bannerArt) + "\n" + strings.Repeat("=", bannerWidth) + "\n"
}

// PrintBanner writes the banner to the splog console
func PrintBanner(splog *Splog) {
	splog.Page(Banner())
	splog.Newline()
}
