package stations

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	station  lipgloss.Style
	detail   lipgloss.Style
	token    lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	quickMix lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	adSlot   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		station:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		token:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		quickMix: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		adSlot:   lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
