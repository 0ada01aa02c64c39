package cmd

import (
	"context"
	"errors"

	"gamehub/internal/domain"
	"gamehub/internal/eventbus"
	"gamehub/internal/igdb"
	"gamehub/internal/ui/viewmodels"
)

// loadCatalog runs one load of the list state machine and waits for it
// to finish
func loadCatalog(ctx context.Context, fetcher igdb.Fetcher, batchSize int) (*viewmodels.ListViewModel, error) {
	bus := eventbus.NewImmediate()
	done := make(chan error, 1)

	// CatalogLoaded and ErrorRaised are the last events of a load
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		done <- nil
	})
	bus.Subscribe(eventbus.EventErrorRaised, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.ErrorRaised); ok {
			done <- errors.New(ev.Message)
		}
	})

	vm := viewmodels.NewListViewModel(bus, fetcher, viewmodels.WithBatchSize(batchSize))
	vm.LoadTopGames(ctx)

	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return vm, nil
	case <-ctx.Done():
		vm.Close()
		return nil, ctx.Err()
	}
}
