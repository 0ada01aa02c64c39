package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gamehub/internal/domain"
	"gamehub/internal/ui/adapters"
	"gamehub/internal/ui/input"
	inputtypes "gamehub/internal/ui/input/types"
	"gamehub/internal/ui/state"
	"gamehub/internal/ui/viewmodels"
	"gamehub/internal/ui/views"
)

// statusTimeout is how long an error toast stays visible
const statusTimeout = 4 * time.Second

// Options tune the browser UI
type Options struct {
	ShowCovers bool
}

// Model represents the UI state
type Model struct {
	ctx   context.Context
	list  *viewmodels.ListViewModel
	state *state.AppState

	// UI-specific state not in AppState
	width        int
	height       int
	keys         inputtypes.KeyMap
	help         help.Model
	spinner      spinner.Model
	inputHandler *input.Handler
	inputCtx     *adapters.InputContext

	renderer *views.Renderer
	pager    *Pager
}

// NewModel creates a new UI model around a list view model
func NewModel(ctx context.Context, list *viewmodels.ListViewModel, opts Options) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	appState := state.NewAppState()
	keys := inputtypes.DefaultKeyMap()

	return &Model{
		ctx:          ctx,
		list:         list,
		state:        appState,
		keys:         keys,
		help:         help.New(),
		spinner:      sp,
		inputHandler: input.New(keys),
		inputCtx:     adapters.NewInputContext(appState),
		renderer:     views.NewRenderer(opts.ShowCovers),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// State exposes the UI state (tests)
func (m *Model) State() *state.AppState {
	return m.state
}

// Init starts the first load
func (m *Model) Init() tea.Cmd {
	m.list.LoadTopGames(m.ctx)
	return m.spinner.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dispatchMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg)

	case clearStatusMsg:
		if m.state.StatusMessage == msg.message {
			m.state.ClearStatus()
		}
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setStatus("Pager failed: "+msg.err.Error(), true)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputCtx)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		m.state.Searching = m.inputHandler.CurrentMode() == inputtypes.ModeSearch
		return m, tea.Batch(cmds...)
	}

	// Cursor blink and friends for the search input
	return m, m.inputHandler.Update(msg)
}

// handleEvent applies a list view model event to the UI state. Events
// can arrive after later mutations, so list data is re-read from the view
// model instead of taken from the payload.
func (m *Model) handleEvent(msg EventMsg) tea.Cmd {
	switch e := msg.Event.(type) {
	case domain.GamesChanged, domain.PaginationChanged, domain.LoadingChanged:
		m.syncList()
	case domain.ErrorRaised:
		return m.setStatus(e.Message, true)
	case domain.CatalogLoaded:
		m.syncList()
		if m.state.StatusIsError {
			m.state.ClearStatus()
		}
	}
	return nil
}

// syncList copies the view model's current window, page and loading flag
// into the UI state
func (m *Model) syncList() {
	snap := m.list.Snapshot()
	m.state.Page = snap.Page
	m.state.Loading = snap.Loading
	if ops := m.state.ReplaceGames(snap.Games); len(ops) > 0 {
		log.Printf("Window updated: %d games, %d edits", len(snap.Games), len(ops))
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if a.Direction == "up" {
			m.state.MoveSelection(-1)
		} else {
			m.state.MoveSelection(1)
		}

	case inputtypes.NextPageAction:
		m.list.NextPage()
		m.syncList()

	case inputtypes.PreviousPageAction:
		m.list.PreviousPage()
		m.syncList()

	case inputtypes.OpenDetailAction:
		if d, ok := m.list.Select(a.Index); ok {
			m.state.Detail = d
			m.state.Screen = state.ScreenDetail
		}

	case inputtypes.BackAction:
		m.state.Screen = state.ScreenList

	case inputtypes.OpenPagerAction:
		if m.pager != nil {
			return m.pager.showCmd(views.PagerContent(m.state.Detail))
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.UpdateTextAction:
		if a.Text != m.state.SearchQuery {
			m.applySearch(a.Text)
		}

	case inputtypes.SubmitTextAction:
		log.Printf("Search submitted: %q", a.Text)

	case inputtypes.CancelTextAction, inputtypes.ClearSearchAction:
		if m.state.SearchQuery != "" {
			m.applySearch("")
		}

	case inputtypes.ReloadAction:
		m.state.SearchQuery = ""
		m.list.LoadTopGames(m.ctx)
		m.syncList()

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

func (m *Model) applySearch(term string) {
	m.state.SearchQuery = term
	m.list.Search(term)
	m.syncList()
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.state.SetStatus(message, isError)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{message: message}
	})
}

func (m *Model) quit() tea.Cmd {
	m.list.Close()
	return tea.Quit
}

// View renders the UI
func (m *Model) View() string {
	searchInput := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		searchInput = ti.View()
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Games:         m.state.Games,
		Page:          m.state.Page,
		SelectedIndex: m.state.SelectedIndex,
		Loading:       m.state.Loading,
		Spinner:       m.spinner.View(),
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		SearchQuery:   m.state.SearchQuery,
		SearchInput:   searchInput,
		ShowHelp:      m.state.ShowHelp,
		ShowDetail:    m.state.Screen == state.ScreenDetail,
		Detail:        m.state.Detail,
		HelpModel:     m.help,
		KeyMap:        m.keys,
	})
}
