package library

import (
	"fmt"

	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/mmcdole/kiosk/internal/search"
)

// List returns the loaded items matching cfg, sorted by cfg.Sort
func (s *Service[T]) List(cfg catalog.Config) ([]T, error) {
	return s.view.Query(cfg)
}

// Get returns the item with the given id
func (s *Service[T]) Get(id string) (T, bool) {
	return catalog.Find(s.desc, s.view.Items(), id)
}

// Stats summarizes every loaded item
func (s *Service[T]) Stats() catalog.Stats {
	return s.view.Stats()
}

// DefaultConfig returns the configuration a fresh listing starts with
func (s *Service[T]) DefaultConfig() catalog.Config {
	return catalog.DefaultConfig(s.desc)
}

// Suggest ranks item titles against query for type-ahead
func (s *Service[T]) Suggest(query string, limit int) []search.Suggestion {
	items := s.view.Items()
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = s.desc.Title(item)
	}
	return search.Suggest(titles, query, limit)
}

// === Saved views ===

// SaveView stores cfg under name, replacing any view of that name
func (s *Service[T]) SaveView(name string, cfg catalog.Config) error {
	if name == "" {
		return fmt.Errorf("%w: view name is empty", domain.ErrInvalidConfig)
	}
	if err := catalog.Validate(s.desc, cfg); err != nil {
		return err
	}
	if err := s.store.SaveView(s.desc.Kind, name, cfg.Normalize()); err != nil {
		s.logger.Error("failed to save view", "error", err, "view", name)
		return err
	}
	s.logger.Info("saved view", "view", name)
	return nil
}

// View returns the saved view called name
func (s *Service[T]) View(name string) (catalog.Config, error) {
	var cfg catalog.Config
	ok, err := s.store.GetView(s.desc.Kind, name, &cfg)
	if err != nil {
		return catalog.Config{}, fmt.Errorf("read view %q: %w", name, err)
	}
	if !ok {
		return catalog.Config{}, fmt.Errorf("%w: %q", domain.ErrViewNotFound, name)
	}
	// Views saved against an older descriptor may name fields that are gone
	if err := catalog.Validate(s.desc, cfg); err != nil {
		return catalog.Config{}, fmt.Errorf("view %q: %w", name, err)
	}
	return cfg, nil
}

// Views lists saved view names
func (s *Service[T]) Views() ([]string, error) {
	return s.store.Views(s.desc.Kind)
}

// DeleteView removes the saved view called name
func (s *Service[T]) DeleteView(name string) error {
	var discard catalog.Config
	ok, err := s.store.GetView(s.desc.Kind, name, &discard)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrViewNotFound, name)
	}
	return s.store.DeleteView(s.desc.Kind, name)
}
