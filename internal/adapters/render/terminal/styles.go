package terminal

import (
	"github.com/bnema/netrun/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	lines   map[domain.Style]lipgloss.Style
	link    lipgloss.Style
	prompt  lipgloss.Style
	status  lipgloss.Style
	bar     lipgloss.Style
	barDone lipgloss.Style
	notice  lipgloss.Style
}

func newStyles() styles {
	return styles{
		lines: map[domain.Style]lipgloss.Style{
			domain.StylePrimary: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
			domain.StyleError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			domain.StyleSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
			domain.StyleInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			domain.StyleWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
		link:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("159")),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		bar:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barDone: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		notice:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

func (s styles) line(style domain.Style) lipgloss.Style {
	if st, ok := s.lines[style]; ok {
		return st
	}
	return s.lines[domain.StylePrimary]
}
