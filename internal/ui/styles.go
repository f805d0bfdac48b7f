package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Row         lipgloss.Style
	Icon        lipgloss.Style
	Invalid     lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	SelectionBg lipgloss.Style
}

// NewStyles creates a new Styles instance. accent is the terminal
// color used for the title and prompt.
func NewStyles(accent string) *Styles {
	if accent == "" {
		accent = "99"
	}
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Invalid:     lipgloss.NewStyle().Faint(true).Italic(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
