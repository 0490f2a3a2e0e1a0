package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Counter     lipgloss.Style
	ModeBadge   lipgloss.Style
	Dim         lipgloss.Style
	Page        lipgloss.Style
	ActivePage  lipgloss.Style
	SlideTitle  lipgloss.Style
	SlideBody   lipgloss.Style
	Control     lipgloss.Style
	ControlOff  lipgloss.Style
	Dot         lipgloss.Style
	ActiveDot   lipgloss.Style
	Prompt      lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ModeBadge: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Page: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ActivePage: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		SlideTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")).MarginBottom(1),
		SlideBody:   lipgloss.NewStyle(),
		Control:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		ControlOff:  lipgloss.NewStyle().Faint(true),
		Dot:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ActiveDot:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Prompt:      lipgloss.NewStyle().Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
