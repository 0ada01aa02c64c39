package ui

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamehub/internal/domain"
	"gamehub/internal/eventbus"
	"gamehub/internal/igdb"
	"gamehub/internal/ui/state"
	"gamehub/internal/ui/viewmodels"
)

type stubFetcher struct {
	games []domain.Game
	err   error
}

func (f *stubFetcher) TopGames(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	return f.games, f.err
}

func numberedGames(n int) []domain.Game {
	games := make([]domain.Game, n)
	for i := range games {
		games[i] = domain.Game{
			ID:               int64(i + 1),
			Name:             fmt.Sprintf("G%d", i+1),
			Rating:           float64(100 - i),
			FirstReleaseDate: 1488499200,
			Summary:          fmt.Sprintf("About G%d", i+1),
		}
	}
	return games
}

// testApp wires a Model the way the browse command does, with the
// program replaced by a message queue drained on the test goroutine
type testApp struct {
	t       *testing.T
	model   *Model
	queue   []tea.Msg
	pending chan func()
}

func newTestApp(t *testing.T, fetcher igdb.Fetcher) *testApp {
	app := &testApp{t: t, pending: make(chan func(), 4)}
	bus := eventbus.NewImmediate()
	list := viewmodels.NewListViewModel(bus, fetcher,
		viewmodels.WithDispatcher(func(fn func()) { app.pending <- fn }))
	app.model = NewModel(context.Background(), list, Options{})
	unsubscribe := ForwardEvents(bus, func(msg tea.Msg) { app.queue = append(app.queue, msg) })
	t.Cleanup(unsubscribe)

	app.model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func (a *testApp) drain() {
	for len(a.queue) > 0 {
		msg := a.queue[0]
		a.queue = a.queue[1:]
		a.model.Update(msg)
	}
}

// start runs Init and applies the fetch result like the program would
func (a *testApp) start() {
	a.t.Helper()
	a.model.Init()
	a.drain()
	a.finishFetch()
}

func (a *testApp) finishFetch() {
	a.t.Helper()
	select {
	case fn := <-a.pending:
		a.model.Update(Dispatch(fn))
		a.drain()
	case <-time.After(time.Second):
		a.t.Fatal("fetch did not complete")
	}
}

func (a *testApp) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = a.model.Update(msg)
		a.drain()
	}
	return cmd
}

func (a *testApp) state() *state.AppState {
	return a.model.State()
}

func TestModelLoadsFirstPage(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})

	app.model.Init()
	app.drain()
	assert.True(t, app.state().Loading, "loading while the fetch runs")

	app.finishFetch()
	s := app.state()
	assert.False(t, s.Loading)
	assert.Len(t, s.Games, 10)
	assert.Equal(t, "1/3", s.Page.Label())

	view := app.model.View()
	assert.Contains(t, view, "G1")
	assert.Contains(t, view, "G10")
	assert.NotContains(t, view, "G11")
	assert.Contains(t, view, "◀ Prev  1/3  Next ▶")
}

func TestModelPagingIsGated(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()

	app.press("p")
	assert.Equal(t, "1/3", app.state().Page.Label(), "previous is disabled on page 1")

	app.press("n")
	assert.Equal(t, "2/3", app.state().Page.Label())
	assert.Equal(t, "G11", app.state().Games[0].Name)

	app.press("n", "n", "n")
	assert.Equal(t, "3/3", app.state().Page.Label(), "next is disabled on the last page")
	assert.Len(t, app.state().Games, 5)

	app.press("p")
	assert.Equal(t, "2/3", app.state().Page.Label())
}

func TestModelPagingGateSeesUndeliveredPages(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()
	app.press("n")
	require.Equal(t, "2/3", app.state().Page.Label())

	// Both keys arrive before the page events are forwarded
	next := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}
	app.model.Update(next)
	app.model.Update(next)
	app.drain()

	assert.Equal(t, "3/3", app.state().Page.Label())
	assert.Equal(t, "3/3", app.model.list.Snapshot().Page.Label())
	assert.Len(t, app.state().Games, 5)

	prev := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}
	for i := 0; i < 4; i++ {
		app.model.Update(prev)
	}
	app.drain()
	assert.Equal(t, "1/3", app.model.list.Snapshot().Page.Label())
}

func TestModelOpenRightAfterPaging(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()
	app.press("j")

	app.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	app.model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app.drain()

	s := app.state()
	require.Equal(t, state.ScreenDetail, s.Screen)
	assert.Equal(t, "G11", s.Detail.Name, "opens the row under the cursor on the new page")
}

func TestModelSearch(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()
	app.press("n")

	app.press("/")
	require.True(t, app.state().Searching)

	app.press("G", "2")
	s := app.state()
	assert.Equal(t, "G2", s.SearchQuery)
	assert.Equal(t, "1/1", s.Page.Label(), "search returns to page 1")
	assert.Len(t, s.Games, 7)
	assert.Contains(t, app.model.View(), "[Search: G2]")

	// Keys go to the input while searching
	app.press("n")
	assert.Equal(t, "G2n", app.state().SearchQuery)
	assert.Empty(t, app.state().Games)
	assert.Contains(t, app.model.View(), "No games match your search.")

	app.press("enter")
	assert.False(t, app.state().Searching)
	assert.Equal(t, "G2n", app.state().SearchQuery, "enter keeps the filter")

	app.press("esc")
	assert.Equal(t, "", app.state().SearchQuery)
	assert.Equal(t, "1/3", app.state().Page.Label())
}

func TestModelSearchEscClears(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()

	app.press("/", "G", "1", "esc")
	s := app.state()
	assert.False(t, s.Searching)
	assert.Equal(t, "", s.SearchQuery)
	assert.Len(t, s.Games, 10)
}

func TestModelSelectionFollowsGame(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()

	app.press("j", "j", "k")
	assert.Equal(t, 1, app.state().SelectedIndex)

	// G2 stays selected when the search keeps it in the window
	app.press("/", "2", "enter")
	g, ok := app.state().SelectedGame()
	require.True(t, ok)
	assert.Equal(t, "G2", g.Name)
}

func TestModelOpensDetail(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(25)})
	app.start()

	app.press("n", "j", "enter")
	s := app.state()
	require.Equal(t, state.ScreenDetail, s.Screen)
	assert.Equal(t, "G12", s.Detail.Name)

	view := app.model.View()
	assert.Contains(t, view, "About G12")
	assert.Contains(t, view, "Released:")

	// Paging keys do nothing on the detail screen
	app.press("n")
	assert.Equal(t, "2/3", app.state().Page.Label())

	app.press("esc")
	assert.Equal(t, state.ScreenList, app.state().Screen)
}

func TestModelShowsLoadError(t *testing.T) {
	app := newTestApp(t, &stubFetcher{err: &igdb.StatusError{Code: 500}})
	app.model.Init()
	app.drain()

	fn := <-app.pending
	app.model.Update(Dispatch(fn))
	require.NotEmpty(t, app.queue)
	var cmds []tea.Cmd
	for len(app.queue) > 0 {
		msg := app.queue[0]
		app.queue = app.queue[1:]
		_, cmd := app.model.Update(msg)
		cmds = append(cmds, cmd)
	}

	s := app.state()
	assert.Contains(t, cmds, tea.Cmd(nil), "state events need no command")
	assert.False(t, s.Loading)
	assert.True(t, s.StatusIsError)
	assert.Equal(t, "Error loading games: 500", s.StatusMessage)
	assert.Contains(t, app.model.View(), "Error loading games: 500")

	// The toast clears itself
	app.model.Update(clearStatusMsg{message: "Error loading games: 500"})
	assert.Equal(t, "", app.state().StatusMessage)
}

func TestModelReload(t *testing.T) {
	fetcher := &stubFetcher{games: numberedGames(25)}
	app := newTestApp(t, fetcher)
	app.start()
	app.press("/", "G", "2", "enter")

	fetcher.games = numberedGames(3)
	app.press("r")
	assert.True(t, app.state().Loading)
	assert.Equal(t, "", app.state().SearchQuery)

	app.finishFetch()
	assert.Len(t, app.state().Games, 3)
	assert.Equal(t, "1/1", app.state().Page.Label())
}

func TestModelHelpOverlay(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(3)})
	app.start()

	app.press("?")
	require.True(t, app.state().ShowHelp)
	assert.Contains(t, app.model.View(), "gamehub help")

	app.press("n")
	assert.True(t, app.state().ShowHelp, "other keys are swallowed")

	app.press("?")
	assert.False(t, app.state().ShowHelp)
}

// quits reports whether msg is, or batches, a quit
func quits(msg tea.Msg) bool {
	switch m := msg.(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range m {
			if c != nil && quits(c()) {
				return true
			}
		}
	}
	return false
}

func TestModelQuit(t *testing.T) {
	app := newTestApp(t, &stubFetcher{games: numberedGames(3)})
	app.model.Init()

	cmd := app.press("q")
	require.NotNil(t, cmd)
	assert.True(t, quits(cmd()), "q should quit")

	// A result arriving after quit is dropped
	fn := <-app.pending
	app.model.Update(Dispatch(fn))
	app.drain()
	assert.Empty(t, app.state().Games)
}
