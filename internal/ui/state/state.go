package state

import (
	"gamehub/internal/catalog"
	"gamehub/internal/domain"
)

// Screen identifies which screen is shown
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// AppState contains all the UI state. It is only written from the
// Bubble Tea update loop.
type AppState struct {
	// List data, as last published by the list view model
	Games []domain.Game
	Page  domain.PageState

	// Selection state
	SelectedIndex int

	// Operation state
	Loading bool

	// UI state
	Screen        Screen
	Detail        catalog.Detail
	StatusMessage string // transient message, usually an error
	StatusIsError bool
	Searching     bool // search input focused
	SearchQuery   string
	ShowHelp      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Games:  make([]domain.Game, 0),
		Page:   catalog.Recompute(0, domain.PageSize, 1),
		Screen: ScreenList,
	}
}

// SelectedGame returns the highlighted game of the window
func (s *AppState) SelectedGame() (domain.Game, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Games) {
		return domain.Game{}, false
	}
	return s.Games[s.SelectedIndex], true
}

// ReplaceGames swaps in a new window, keeping the cursor on the same game
// when it is still visible
func (s *AppState) ReplaceGames(games []domain.Game) []catalog.Op {
	ops := catalog.Diff(s.Games, games)

	selected, hadSelection := s.SelectedGame()
	s.Games = games
	s.SelectedIndex = 0
	if hadSelection {
		for i, g := range games {
			if g.SameIdentity(selected) {
				s.SelectedIndex = i
				break
			}
		}
	}
	return ops
}

// MoveSelection moves the cursor by delta within the window
func (s *AppState) MoveSelection(delta int) {
	if len(s.Games) == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Games) {
		s.SelectedIndex = len(s.Games) - 1
	}
}

// SetStatus sets the transient status line
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status line
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
