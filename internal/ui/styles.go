package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Current lipgloss.Style
	Command lipgloss.Style
	Warning lipgloss.Style
	Faint   lipgloss.Style
}

// DefaultStyles returns the colored styles used on a terminal.
func DefaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:   base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Label:   base.Foreground(lipgloss.Color("#A3A3A3")),
		Value:   base.Foreground(lipgloss.Color("#D1D5DB")),
		Current: base.Bold(true).Foreground(lipgloss.Color("#22C55E")),
		Command: base.Foreground(lipgloss.Color("#D946EF")),
		Warning: base.Foreground(lipgloss.Color("#F59E0B")),
		Faint:   base.Faint(true),
	}
}

// PlainStyles render text unchanged, for pipes and files.
func PlainStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:   base,
		Label:   base,
		Value:   base,
		Current: base,
		Command: base,
		Warning: base,
		Faint:   base,
	}
}

// StylesFor picks DefaultStyles when f is a terminal and PlainStyles otherwise.
func StylesFor(f *os.File) Styles {
	if IsTerminal(f) {
		return DefaultStyles()
	}
	return PlainStyles()
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
