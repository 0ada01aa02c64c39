package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Search        lipgloss.Style
	DetailBox     lipgloss.Style
	HelpBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Stars         lipgloss.Style
	Rating        lipgloss.Style
	Label         lipgloss.Style
	PageEnabled   lipgloss.Style
	PageDisabled  lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Stars:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Rating:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Label:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		PageEnabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// GetRatingColor returns the color for a 0-5 star rating
func GetRatingColor(stars float64) string {
	switch {
	case stars >= 4.5:
		return "78" // green
	case stars >= 3.5:
		return "220" // yellow
	case stars > 0:
		return "214" // orange
	default:
		return "241" // gray, unrated
	}
}
