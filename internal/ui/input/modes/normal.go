package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gamehub/internal/ui/input/types"
)

// NormalMode handles the list and detail screens
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	// The help overlay swallows everything but its own close keys
	if ctx.ShowingHelp() {
		if key.Matches(msg, m.keys.Help, m.keys.Back) || msg.String() == "q" {
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	if ctx.OnDetail() {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg, ctx)
}

func (m *NormalMode) handleDetailKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.BackAction{}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	}
	return nil, false
}

func (m *NormalMode) handleListKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.NextPage):
		// The list moves unconditionally, so paging is gated here
		if !ctx.CanGoNext() {
			return nil, true
		}
		return []types.Action{types.NextPageAction{}}, true

	case key.Matches(msg, m.keys.PrevPage):
		if !ctx.CanGoPrevious() {
			return nil, true
		}
		return []types.Action{types.PreviousPageAction{}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenDetailAction{Index: ctx.CurrentIndex()}}, true

	case key.Matches(msg, m.keys.Back):
		if ctx.SearchQuery() == "" {
			return nil, false
		}
		return []types.Action{types.ClearSearchAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.ReloadAction{}}, true
	}
	return nil, false
}
