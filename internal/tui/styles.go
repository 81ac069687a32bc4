package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Row: lipgloss.NewStyle().
			PaddingLeft(1),
		Selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
