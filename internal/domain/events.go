package domain

// EventType represents the type of domain event.
// Each type is one observable channel of the list screen.
type EventType string

// Event types
const (
	EventGamesChanged      EventType = "GamesChanged"
	EventLoadingChanged    EventType = "LoadingChanged"
	EventErrorRaised       EventType = "ErrorRaised"
	EventPaginationChanged EventType = "PaginationChanged"
	EventCatalogLoaded     EventType = "CatalogLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// GamesChanged carries the games of the current page window
type GamesChanged struct {
	Games []Game
}

func (e GamesChanged) Type() EventType { return EventGamesChanged }

// LoadingChanged is emitted when a fetch starts or finishes
type LoadingChanged struct {
	Loading bool
}

func (e LoadingChanged) Type() EventType { return EventLoadingChanged }

// ErrorRaised carries a user-visible error message
type ErrorRaised struct {
	Message string
	Err     error
}

func (e ErrorRaised) Type() EventType { return EventErrorRaised }

// PaginationChanged carries the recomputed page state
type PaginationChanged struct {
	State PageState
}

func (e PaginationChanged) Type() EventType { return EventPaginationChanged }

// CatalogLoaded is emitted after a successful fetch replaced the catalog
type CatalogLoaded struct {
	Count int
}

func (e CatalogLoaded) Type() EventType { return EventCatalogLoaded }
