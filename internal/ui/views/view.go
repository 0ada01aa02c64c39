package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gamehub/internal/catalog"
	"gamehub/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Games         []domain.Game
	Page          domain.PageState
	SelectedIndex int
	Loading       bool
	Spinner       string
	StatusMessage string
	StatusIsError bool
	SearchQuery   string
	SearchInput   string // rendered text input, "" when not searching
	ShowHelp      bool
	ShowDetail    bool
	Detail        catalog.Detail
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	gameRender   *GameRenderer
	detailRender *DetailRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showCovers bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		gameRender:   NewGameRenderer(styles, showCovers),
		detailRender: NewDetailRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	if state.ShowDetail {
		content.WriteString(r.detailRender.RenderDetail(state.Detail, state.Width))
	} else {
		if state.SearchInput != "" {
			content.WriteString(state.SearchInput)
			content.WriteString("\n\n")
		}
		content.WriteString(r.renderGameList(state))
		content.WriteString("\n\n")
		content.WriteString(r.renderPageControls(state.Page))
	}

	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(style.Render(state.StatusMessage)))
	}

	if !state.ShowHelp && state.KeyMap != nil {
		content.WriteString("\n\n")
		content.WriteString(state.HelpModel.View(state.KeyMap))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp && state.KeyMap != nil {
		return r.renderHelpOverlay(state)
	}
	return finalContent
}

// renderTitleLine renders the logo with right-aligned indicators
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("gamehub")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading", state.Spinner)))
	}
	if state.SearchQuery != "" {
		indicators = append(indicators, r.styles.Search.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderGameList renders the rows of the current window
func (r *Renderer) renderGameList(state ViewState) string {
	if len(state.Games) == 0 {
		switch {
		case state.Loading:
			return r.styles.Dim.Render("Fetching top games...")
		case state.SearchQuery != "":
			return r.styles.Dim.Render("No games match your search.")
		default:
			return r.styles.Dim.Render("No games to show. Press r to reload.")
		}
	}

	lines := make([]string, 0, len(state.Games))
	for i, g := range state.Games {
		position := state.Page.Start + i + 1
		lines = append(lines, r.gameRender.RenderGame(g, position, i == state.SelectedIndex, state.SearchQuery, state.Width))
	}
	return strings.Join(lines, "\n")
}

// renderPageControls renders "◀ Prev  n/m  Next ▶" with disabled controls dimmed
func (r *Renderer) renderPageControls(page domain.PageState) string {
	prevStyle := r.styles.PageDisabled
	if page.PreviousEnabled {
		prevStyle = r.styles.PageEnabled
	}
	nextStyle := r.styles.PageDisabled
	if page.NextEnabled {
		nextStyle = r.styles.PageEnabled
	}
	return fmt.Sprintf("%s  %s  %s",
		prevStyle.Render("◀ Prev"),
		r.styles.Label.Render(page.Label()),
		nextStyle.Render("Next ▶"))
}

// renderHelpOverlay centers the full key help in the terminal
func (r *Renderer) renderHelpOverlay(state ViewState) string {
	h := state.HelpModel
	h.ShowAll = true
	box := r.styles.HelpBox.Render(r.styles.Title.Render("gamehub help") + "\n" + h.View(state.KeyMap))
	width, height := state.Width, state.Height
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
