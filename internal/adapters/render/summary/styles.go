package summary

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	number  lipgloss.Style
	label   lipgloss.Style
	section lipgloss.Style
	sender  lipgloss.Style
	time    lipgloss.Style
	body    lipgloss.Style
	empty   lipgloss.Style
	online  lipgloss.Style
	offline lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true),
		header:  r.NewStyle().Foreground(lipgloss.Color("241")),
		number:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		section: r.NewStyle().MarginTop(1),
		sender:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		time:    r.NewStyle().Foreground(lipgloss.Color("244")),
		body:    r.NewStyle().Foreground(lipgloss.Color("250")),
		empty:   r.NewStyle().Faint(true),
		online:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		offline: r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
