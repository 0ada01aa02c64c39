package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/catalog"
	"gamehub/internal/domain"
)

// GameRenderer handles rendering of list rows
type GameRenderer struct {
	styles     *Styles
	showCovers bool
}

// NewGameRenderer creates a new game renderer
func NewGameRenderer(styles *Styles, showCovers bool) *GameRenderer {
	return &GameRenderer{
		styles:     styles,
		showCovers: showCovers,
	}
}

// RenderGame renders one list row: position, title, star bar and rating
func (r *GameRenderer) RenderGame(game domain.Game, position int, isSelected bool, searchQuery string, width int) string {
	stars := game.Stars()

	nameStyle := lipgloss.NewStyle()
	starStyle := r.styles.Stars.Foreground(lipgloss.Color(GetRatingColor(stars)))
	ratingStyle := r.styles.Rating
	if isSelected {
		bg := lipgloss.Color("238")
		nameStyle = nameStyle.Background(bg).Bold(true)
		starStyle = starStyle.Background(bg)
		ratingStyle = ratingStyle.Background(bg)
	}

	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	name := r.highlight(game.Name, searchQuery, nameStyle)
	line := fmt.Sprintf("%s%3d. %s  %s %s",
		cursor,
		position,
		name,
		starStyle.Render(catalog.StarBar(stars)),
		ratingStyle.Render(fmt.Sprintf("%.1f", stars)),
	)

	if r.showCovers && game.Cover != nil {
		line += r.styles.Dim.Render("  " + game.CoverURL())
	}

	if width > 0 && lipgloss.Width(line) > width-4 {
		line = truncate(line, width-4)
	}
	return line
}

// highlight marks the first case-insensitive occurrence of query in text
func (r *GameRenderer) highlight(text, query string, base lipgloss.Style) string {
	if query == "" {
		return base.Render(text)
	}
	lowerText := strings.ToLower(text)
	idx := strings.Index(lowerText, strings.ToLower(query))
	if idx < 0 || len(lowerText) != len(text) {
		return base.Render(text)
	}
	end := idx + len(query)
	return base.Render(text[:idx]) +
		r.styles.Highlight.Inherit(base).Render(text[idx:end]) +
		base.Render(text[end:])
}

// truncate shortens a styled line to width visible cells
func truncate(line string, width int) string {
	if width <= 3 {
		return ""
	}
	runes := []rune(line)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-3 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
