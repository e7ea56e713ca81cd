package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("63")
	muted  = lipgloss.Color("245")
	faint  = lipgloss.Color("240")
	good   = lipgloss.Color("42")
	bad    = lipgloss.Color("203")
)

type styles struct {
	brand       lipgloss.Style
	title       lipgloss.Style
	subtitle    lipgloss.Style
	muted       lipgloss.Style
	card        lipgloss.Style
	gateway     lipgloss.Style
	online      lipgloss.Style
	region      lipgloss.Style
	regionFocus lipgloss.Style
	regionOff   lipgloss.Style
	dialCode    lipgloss.Style
	number      lipgloss.Style
	button      lipgloss.Style
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	sender      lipgloss.Style
	avatar      lipgloss.Style
	badge       lipgloss.Style
	toastOK     lipgloss.Style
	toastErr    lipgloss.Style
	overlay     lipgloss.Style
	help        lipgloss.Style
}

func newStyles() styles {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return styles{
		brand:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		title:       lipgloss.NewStyle().Bold(true),
		subtitle:    lipgloss.NewStyle().Foreground(muted),
		muted:       lipgloss.NewStyle().Foreground(muted),
		card:        box.BorderForeground(faint),
		gateway:     box.BorderForeground(accent),
		online:      lipgloss.NewStyle().Bold(true).Foreground(good),
		region:      box.BorderForeground(faint).Width(26),
		regionFocus: box.BorderForeground(accent).Width(26),
		regionOff:   box.BorderForeground(faint).Faint(true).Width(26),
		dialCode:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		number:      lipgloss.NewStyle().Bold(true),
		button:      lipgloss.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.NormalBorder()).BorderForeground(accent),
		tab:         lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 2),
		sender:      lipgloss.NewStyle().Bold(true),
		avatar:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(accent).Padding(0, 1),
		toastOK:     lipgloss.NewStyle().Bold(true).Foreground(good),
		toastErr:    lipgloss.NewStyle().Bold(true).Foreground(bad),
		overlay:     box.BorderForeground(accent).Padding(1, 4),
		help:        lipgloss.NewStyle().Foreground(faint),
	}
}
