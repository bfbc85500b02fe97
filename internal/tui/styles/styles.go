// Package styles holds the lipgloss styles shared by the flowdeck TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title styles the page header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("135"))

	// Header styles the table header row.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("245"))

	// Selected styles the row under the cursor.
	Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	// Muted styles secondary text (pipeline names, hints).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Secondary styles accents like counts and progress.
	Secondary = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Error styles failure text and the alert surface.
	Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("203"))

	// HelpKey styles key names in the help bar.
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("250"))

	// Dialog styles the confirmation modal box.
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("203")).
		Padding(1, 3)
)
