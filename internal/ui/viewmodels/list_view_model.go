package viewmodels

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"gamehub/internal/catalog"
	"gamehub/internal/domain"
	"gamehub/internal/eventbus"
	"gamehub/internal/igdb"
)

// DefaultBatchSize is the number of games fetched per load
const DefaultBatchSize = 100

// ListState is the state of the list screen
type ListState int

const (
	StateIdle ListState = iota
	StateLoading
	StateReady
	StateError
)

func (s ListState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Dispatcher runs fn on the execution context that owns the view model's
// state. Fetch completions are always funneled through it.
type Dispatcher func(fn func())

// SerialDispatcher returns a dispatcher that runs closures one at a time
// on the calling goroutine
func SerialDispatcher() Dispatcher {
	var mu sync.Mutex
	return func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}

// Snapshot is a synchronous read of the observable outputs
type Snapshot struct {
	State        ListState
	Games        []domain.Game
	Loading      bool
	ErrorMessage string
	Page         domain.PageState
	SearchTerm   string
}

// ListViewModel is the paginated, searchable list state machine
type ListViewModel struct {
	bus       eventbus.EventBus
	fetcher   igdb.Fetcher
	dispatch  Dispatcher
	batchSize int

	store     *catalog.Store
	paginator *catalog.Paginator

	state    ListState
	loading  bool
	errorMsg string
	window   []domain.Game
	page     domain.PageState

	closed atomic.Bool
}

// Option configures a ListViewModel
type Option func(*ListViewModel)

// WithBatchSize sets how many games one load fetches
func WithBatchSize(n int) Option {
	return func(vm *ListViewModel) {
		if n > 0 {
			vm.batchSize = n
		}
	}
}

// WithDispatcher sets the dispatcher for fetch completions
func WithDispatcher(d Dispatcher) Option {
	return func(vm *ListViewModel) {
		if d != nil {
			vm.dispatch = d
		}
	}
}

// NewListViewModel creates an idle list view model
func NewListViewModel(bus eventbus.EventBus, fetcher igdb.Fetcher, opts ...Option) *ListViewModel {
	vm := &ListViewModel{
		bus:       bus,
		fetcher:   fetcher,
		dispatch:  SerialDispatcher(),
		batchSize: DefaultBatchSize,
		store:     catalog.NewStore(),
		paginator: catalog.NewPaginator(domain.PageSize),
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.page = vm.paginator.State(0)
	vm.window = []domain.Game{}
	return vm
}

// LoadTopGames issues one asynchronous fetch of the top rated games.
// The result is applied through the dispatcher.
func (vm *ListViewModel) LoadTopGames(ctx context.Context) {
	vm.state = StateLoading
	vm.setLoading(true)

	limit := vm.batchSize
	log.Printf("Loading top %d games", limit)
	go func() {
		games, err := vm.fetcher.TopGames(ctx, limit, 0)
		vm.dispatch(func() {
			if vm.closed.Load() {
				log.Printf("Discarding fetch result: list closed")
				return
			}
			if err != nil {
				vm.onFetchFailure(err)
				return
			}
			vm.onFetchSuccess(games)
		})
	}()
}

func (vm *ListViewModel) onFetchSuccess(games []domain.Game) {
	log.Printf("Loaded %d games", len(games))
	vm.setLoading(false)
	vm.store.Load(games)
	vm.paginator.Reset()
	vm.state = StateReady
	vm.errorMsg = ""
	vm.updatePagination()
	vm.bus.Publish(domain.CatalogLoaded{Count: len(games)})
}

func (vm *ListViewModel) onFetchFailure(err error) {
	log.Printf("Failed to load games: %v", err)
	vm.setLoading(false)
	vm.state = StateError
	vm.errorMsg = ErrorMessage(err)
	vm.bus.Publish(domain.ErrorRaised{Message: vm.errorMsg, Err: err})
}

// ErrorMessage turns a fetch error into the user-visible message
func ErrorMessage(err error) string {
	var statusErr *igdb.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Error loading games: %d", statusErr.Code)
	}
	if err == nil || err.Error() == "" {
		return "Network error"
	}
	return err.Error()
}

// Search filters the catalog by name and returns to page 1
func (vm *ListViewModel) Search(term string) {
	vm.store.Search(term)
	vm.paginator.Reset()
	log.Printf("Search %q matched %d games", term, vm.store.FilteredLen())
	vm.updatePagination()
}

// NextPage advances the page pointer. It does not check NextEnabled.
func (vm *ListViewModel) NextPage() {
	vm.paginator.Next()
	vm.updatePagination()
}

// PreviousPage moves the page pointer back. It does not check
// PreviousEnabled.
func (vm *ListViewModel) PreviousPage() {
	vm.paginator.Previous()
	vm.updatePagination()
}

// Select returns the detail hand-off for the game at index of the
// current window
func (vm *ListViewModel) Select(index int) (catalog.Detail, bool) {
	if index < 0 || index >= len(vm.window) {
		return catalog.Detail{}, false
	}
	return catalog.NewDetail(vm.window[index]), true
}

// Find returns the detail hand-off for a loaded game by id
func (vm *ListViewModel) Find(id int64) (catalog.Detail, bool) {
	g, ok := vm.store.Get(id)
	if !ok {
		return catalog.Detail{}, false
	}
	return catalog.NewDetail(g), true
}

// Close detaches the view model; fetch results arriving later are dropped
func (vm *ListViewModel) Close() {
	vm.closed.Store(true)
}

// Snapshot returns the current observable values
func (vm *ListViewModel) Snapshot() Snapshot {
	return Snapshot{
		State:        vm.state,
		Games:        append([]domain.Game(nil), vm.window...),
		Loading:      vm.loading,
		ErrorMessage: vm.errorMsg,
		Page:         vm.page,
		SearchTerm:   vm.store.Term(),
	}
}

// Catalog exposes the underlying store for read access
func (vm *ListViewModel) Catalog() *catalog.Store {
	return vm.store
}

func (vm *ListViewModel) setLoading(loading bool) {
	vm.loading = loading
	vm.bus.Publish(domain.LoadingChanged{Loading: loading})
}

// updatePagination recomputes the page state and publishes the window
func (vm *ListViewModel) updatePagination() {
	filtered := vm.store.Filtered()
	vm.page = vm.paginator.State(len(filtered))
	vm.window = catalog.Window(filtered, vm.page)

	vm.bus.Publish(domain.PaginationChanged{State: vm.page})
	vm.bus.Publish(domain.GamesChanged{Games: append([]domain.Game(nil), vm.window...)})
}
