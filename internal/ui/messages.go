package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gamehub/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// dispatchMsg carries work that must run on the update loop
type dispatchMsg struct {
	fn func()
}

// Dispatch wraps fn so that it runs inside Model.Update
func Dispatch(fn func()) tea.Msg {
	return dispatchMsg{fn: fn}
}

// clearStatusMsg hides the status line if it still shows the same message
type clearStatusMsg struct {
	message string
}

// pagerDoneMsg contains the result of a pager command
type pagerDoneMsg struct {
	err error
}

// ForwardEvents subscribes to every list event on the bus and hands each
// one to send as an EventMsg. Returns an unsubscribe function.
func ForwardEvents(bus eventbus.EventBus, send func(tea.Msg)) func() {
	types := []eventbus.EventType{
		eventbus.EventGamesChanged,
		eventbus.EventLoadingChanged,
		eventbus.EventErrorRaised,
		eventbus.EventPaginationChanged,
		eventbus.EventCatalogLoaded,
	}
	unsubs := make([]func(), 0, len(types))
	for _, t := range types {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			send(EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
