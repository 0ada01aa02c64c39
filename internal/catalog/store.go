package catalog

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"gamehub/internal/domain"
)

// Store holds the unfiltered result set and the search-narrowed subset.
// Filtered is always an order-preserving subset of All.
type Store struct {
	mu       sync.RWMutex
	all      []domain.Game
	filtered []domain.Game
	term     string
}

// NewStore creates an empty catalog store
func NewStore() *Store {
	return &Store{}
}

// Load replaces the catalog and clears the search term
func (s *Store) Load(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = append([]domain.Game(nil), games...)
	s.term = ""
	s.filtered = s.all
}

// Search narrows the catalog to games whose name contains term,
// ignoring case. An empty term restores the full catalog.
func (s *Store) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.term = term
	if term == "" {
		s.filtered = s.all
		return
	}

	fold := cases.Fold()
	needle := fold.String(term)
	filtered := make([]domain.Game, 0, len(s.all))
	for _, g := range s.all {
		if strings.Contains(fold.String(g.Name), needle) {
			filtered = append(filtered, g)
		}
	}
	s.filtered = filtered
}

// All returns a copy of the unfiltered catalog
func (s *Store) All() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Game(nil), s.all...)
}

// Filtered returns a copy of the filtered catalog
func (s *Store) Filtered() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Game(nil), s.filtered...)
}

// FilteredLen returns the size of the filtered catalog
func (s *Store) FilteredLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filtered)
}

// Term returns the active search term
func (s *Store) Term() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// Get returns the game with the given id from the unfiltered catalog
func (s *Store) Get(id int64) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.all {
		if g.ID == id {
			return g, true
		}
	}
	return domain.Game{}, false
}
