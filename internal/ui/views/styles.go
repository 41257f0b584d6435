package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	CardFront     lipgloss.Style
	CardBack      lipgloss.Style
	CardTitle     lipgloss.Style
	CardBody      lipgloss.Style
	Shadow        lipgloss.Style
	ShadowFaint   lipgloss.Style
	DotActive     lipgloss.Style
	DotInactive   lipgloss.Style
	JumpPrompt    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
		CardFront:   lipgloss.NewStyle().BorderForeground(lipgloss.Color("99")),
		CardBack:    lipgloss.NewStyle().BorderForeground(lipgloss.Color("240")),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		CardBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Shadow:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		ShadowFaint: lipgloss.NewStyle().Foreground(lipgloss.Color("234")),
		DotActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DotInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		JumpPrompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
