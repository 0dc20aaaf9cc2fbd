package views

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	meta      lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	unread    lipgloss.Style
	fieldKey  lipgloss.Style
	fieldText lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		unread:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		fieldKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		fieldText: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
