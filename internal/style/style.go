// Package style holds the shared terminal styles.
package style

import "github.com/charmbracelet/lipgloss"

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	Bold   = lipgloss.NewStyle().Bold(true)
	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Answer = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	Error  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var (
	OKPrefix   = Answer.Render("✓")
	FailPrefix = Error.Render("✗")
)
