package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle styles prompt titles and report headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).Inline(true)
	// FaintStyle styles hints and placeholders.
	FaintStyle = lipgloss.NewStyle().Faint(true).Inline(true)
	// CursorStyle marks the selected menu entry.
	CursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true).Inline(true)

	statusStyles = map[string]lipgloss.Style{
		"ok":      lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true),
		"sent":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true),
		"created": lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true),
		"skipped": lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Inline(true),
	}
)

// StatusStyle returns the lipgloss style for the given status string.
func StatusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle().Inline(true)
}

// ErrorStyle styles validation and action errors.
func ErrorStyle() lipgloss.Style { return StatusStyle("error") }
