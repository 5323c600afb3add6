package library

import (
	"context"

	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/mmcdole/kiosk/internal/search"
)

// Catalog is a Service with its item type erased, so callers can pick a
// catalog kind at runtime.
type Catalog interface {
	Kind() domain.Kind
	Schema() catalog.Schema
	DefaultConfig() catalog.Config

	Load(ctx context.Context) (int, error)
	List(cfg catalog.Config) ([]domain.Item, error)
	Get(id string) (domain.Item, bool)
	Stats() catalog.Stats
	UserState(item domain.Item) domain.UserState
	Suggest(query string, limit int) []search.Suggestion

	Toggle(id, flag string) (domain.Item, bool, error)
	Rate(id string, rating int) (domain.Item, bool, error)
	Unrate(id string) (domain.Item, bool, error)

	SaveView(name string, cfg catalog.Config) error
	View(name string) (catalog.Config, error)
	Views() ([]string, error)
	DeleteView(name string) error
}

// Erase wraps s as a Catalog
func Erase[T domain.Item](s *Service[T]) Catalog {
	return erased[T]{s}
}

type erased[T domain.Item] struct {
	*Service[T]
}

func (e erased[T]) Schema() catalog.Schema { return catalog.Describe(e.desc) }

func (e erased[T]) List(cfg catalog.Config) ([]domain.Item, error) {
	items, err := e.Service.List(cfg)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}

// UserState returns the settable flags and rating of item, which must be of
// the catalog's item type
func (e erased[T]) UserState(item domain.Item) domain.UserState {
	t, ok := item.(T)
	if !ok {
		return domain.UserState{}
	}
	return catalog.UserState(e.desc, t)
}

func (e erased[T]) Get(id string) (domain.Item, bool) {
	item, ok := e.Service.Get(id)
	if !ok {
		return nil, false
	}
	return item, true
}

func (e erased[T]) Toggle(id, flag string) (domain.Item, bool, error) {
	return wrap(e.Service.Toggle(id, flag))
}

func (e erased[T]) Rate(id string, rating int) (domain.Item, bool, error) {
	return wrap(e.Service.Rate(id, rating))
}

func (e erased[T]) Unrate(id string) (domain.Item, bool, error) {
	return wrap(e.Service.Unrate(id))
}

func wrap[T domain.Item](item T, ok bool, err error) (domain.Item, bool, error) {
	if !ok {
		return nil, false, err
	}
	return item, true, err
}
