package adapters

import (
	"gamehub/internal/ui/input/types"
	"gamehub/internal/ui/state"
)

// InputContext exposes AppState to the input modes
type InputContext struct {
	appState *state.AppState
}

var _ types.Context = (*InputContext)(nil)

// NewInputContext creates a new adapter
func NewInputContext(appState *state.AppState) *InputContext {
	return &InputContext{appState: appState}
}

func (c *InputContext) CurrentIndex() int   { return c.appState.SelectedIndex }
func (c *InputContext) TotalItems() int     { return len(c.appState.Games) }
func (c *InputContext) OnDetail() bool      { return c.appState.Screen == state.ScreenDetail }
func (c *InputContext) ShowingHelp() bool   { return c.appState.ShowHelp }
func (c *InputContext) IsLoading() bool     { return c.appState.Loading }
func (c *InputContext) SearchQuery() string { return c.appState.SearchQuery }
func (c *InputContext) CanGoNext() bool     { return c.appState.Page.NextEnabled }
func (c *InputContext) CanGoPrevious() bool { return c.appState.Page.PreviousEnabled }
