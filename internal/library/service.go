package library

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
)

// LoadFunc reads the dataset of one catalog
type LoadFunc[T any] func(ctx context.Context) ([]T, error)

// Service orchestrates loader + store + view for one catalog kind.
// Persisted user state is kept as a difference from the dataset: an item whose
// flags and rating match what the dataset says has no stored entry.
type Service[T any] struct {
	desc   *catalog.Descriptor[T]
	load   LoadFunc[T]
	store  domain.Store
	logger *slog.Logger
	view   *catalog.View[T]

	mu   sync.RWMutex
	base map[string]domain.UserState // Dataset state per id
}

// NewService creates a new library service.
func NewService[T any](
	desc *catalog.Descriptor[T],
	load LoadFunc[T],
	store domain.Store,
	logger *slog.Logger,
	cacheSize int,
) (*Service[T], error) {
	if logger == nil {
		logger = slog.Default()
	}
	view, err := catalog.NewView(desc, nil, cacheSize, logger)
	if err != nil {
		return nil, err
	}
	return &Service[T]{
		desc:   desc,
		load:   load,
		store:  store,
		logger: logger.With("kind", desc.Kind),
		view:   view,
		base:   make(map[string]domain.UserState),
	}, nil
}

// Descriptor returns the descriptor the service applies
func (s *Service[T]) Descriptor() *catalog.Descriptor[T] { return s.desc }

// Kind returns the catalog kind
func (s *Service[T]) Kind() domain.Kind { return s.desc.Kind }

// Load reads the dataset and overlays persisted user state. It returns the
// number of items loaded.
func (s *Service[T]) Load(ctx context.Context) (int, error) {
	items, err := s.load(ctx)
	if err != nil {
		s.logger.Error("failed to load dataset", "error", err)
		return 0, fmt.Errorf("load %s: %w", s.desc.Kind, err)
	}

	states, err := s.store.States(s.desc.Kind)
	if err != nil {
		// Dataset values still stand without persisted state
		s.logger.Error("failed to read user state", "error", err)
		states = nil
	}

	base := make(map[string]domain.UserState, len(items))
	overlaid := 0
	for i, item := range items {
		id := s.desc.ID(item)
		base[id] = catalog.UserState(s.desc, item)
		if st, ok := states[id]; ok {
			items[i] = catalog.WithUserState(s.desc, item, st)
			overlaid++
		}
	}

	s.mu.Lock()
	s.base = base
	s.mu.Unlock()
	s.view.Replace(items)

	s.logger.Debug("loaded catalog", "count", len(items), "overlaid", overlaid)
	return len(items), nil
}

// persist records item's user state, or forgets it when it matches the dataset
func (s *Service[T]) persist(item T) error {
	id := s.desc.ID(item)
	state := catalog.UserState(s.desc, item)

	s.mu.RLock()
	base, known := s.base[id]
	s.mu.RUnlock()

	if known && state.Equal(base) {
		if err := s.store.DeleteState(s.desc.Kind, id); err != nil {
			s.logger.Error("failed to delete user state", "error", err, "id", id)
			return err
		}
		return nil
	}
	if err := s.store.SaveState(s.desc.Kind, id, state); err != nil {
		s.logger.Error("failed to save user state", "error", err, "id", id)
		return err
	}
	return nil
}
