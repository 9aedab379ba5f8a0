package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	pathStyle   = lipgloss.NewStyle().Underline(true)

	// Token table columns.
	posColumn  = lipgloss.NewStyle().Width(10)
	typeColumn = lipgloss.NewStyle().Width(12)
)
