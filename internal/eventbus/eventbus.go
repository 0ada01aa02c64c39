package eventbus

import (
	"gamehub/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventGamesChanged      = domain.EventGamesChanged
	EventLoadingChanged    = domain.EventLoadingChanged
	EventErrorRaised       = domain.EventErrorRaised
	EventPaginationChanged = domain.EventPaginationChanged
	EventCatalogLoaded     = domain.EventCatalogLoaded
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus.
// Every event type is a single-value channel: the bus keeps the last
// published event per type, and only handlers subscribed before a
// publish receive it.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Last(eventType EventType) (DomainEvent, bool)
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	last      map[EventType]DomainEvent
	nextID    uint64
	immediate bool

	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a queued event bus. Events are delivered in publish order
// by a single dispatcher goroutine.
func New() EventBus {
	b := newBus(false)
	b.eventChan = make(chan DomainEvent, 1000)
	b.quit = make(chan struct{})

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// NewImmediate creates an event bus that runs handlers inline on the
// publishing goroutine
func NewImmediate() EventBus {
	return newBus(true)
}

func newBus(immediate bool) *bus {
	return &bus{
		handlers:  make(map[EventType][]subscription),
		last:      make(map[EventType]DomainEvent),
		immediate: immediate,
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventGamesChanged, EventPaginationChanged:
		// Too frequent while typing a search
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.Lock()
	b.last[event.Type()] = event
	b.mu.Unlock()

	if b.immediate {
		b.deliver(event)
		return
	}

	select {
	case b.eventChan <- event:
	case <-b.quit:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Last returns the most recent event published for the type
func (b *bus) Last(eventType EventType) (DomainEvent, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.last[eventType]
	return e, ok
}

// Close stops the dispatcher. Queued events are discarded.
func (b *bus) Close() {
	if b.immediate {
		return
	}
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers may (un)subscribe while being called
	handlersCopy := make([]subscription, len(subs))
	copy(handlersCopy, subs)
	b.mu.RUnlock()

	for _, s := range handlersCopy {
		b.call(s.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
