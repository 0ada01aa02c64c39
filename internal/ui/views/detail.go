package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/catalog"
)

// DetailRenderer renders the detail screen of one game
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{styles: styles}
}

// RenderDetail renders the detail card
func (r *DetailRenderer) RenderDetail(d catalog.Detail, width int) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(d.Name))
	b.WriteString("\n")

	stars := d.Stars()
	starStyle := r.styles.Stars.Foreground(lipgloss.Color(GetRatingColor(stars)))
	fmt.Fprintf(&b, "%s %s\n", starStyle.Render(catalog.StarBar(stars)), r.styles.Rating.Render(d.RatingText()))

	fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("Released:"), d.FormattedReleaseDate())
	if len(d.Platforms) > 0 {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("Platforms:"), d.PlatformsText())
	}
	if d.CoverURL != "" {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("Cover:"), r.styles.Dim.Render(d.CoverURL))
	}

	if d.Summary != "" {
		b.WriteString("\n")
		wrap := width - 10
		if wrap < 20 {
			wrap = 60
		}
		b.WriteString(lipgloss.NewStyle().Width(wrap).Render(d.Summary))
	}

	return r.styles.DetailBox.Render(b.String())
}

// PagerContent renders the detail as plain text for the external pager
func PagerContent(d catalog.Detail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", d.Name)
	fmt.Fprintf(&b, "Rating:    %s %s\n", catalog.StarBar(d.Stars()), d.RatingText())
	fmt.Fprintf(&b, "Released:  %s\n", d.FormattedReleaseDate())
	fmt.Fprintf(&b, "Platforms: %s\n", d.PlatformsText())
	if d.CoverURL != "" {
		fmt.Fprintf(&b, "Cover:     %s\n", d.CoverURL)
	}
	fmt.Fprintf(&b, "\n%s\n", d.Summary)
	return b.String()
}
