package catalog

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultViewCacheSize = 64

type viewKey struct {
	gen uint64
	fp  uint64
}

// View holds the current snapshot of a collection and the configuration
// applied to it, the way a catalog page does. Results of Apply are memoized
// per (snapshot generation, configuration fingerprint); a miss recomputes.
//
// The snapshot is replaced wholesale on every change, so slices handed out
// earlier stay valid.
type View[T any] struct {
	desc   *Descriptor[T]
	logger *slog.Logger

	mu    sync.RWMutex
	items []T
	gen   uint64
	cfg   Config

	cache *lru.Cache[viewKey, []T]
}

// NewView creates a view over items with the descriptor's default configuration.
// cacheSize <= 0 selects a default.
func NewView[T any](d *Descriptor[T], items []T, cacheSize int, logger *slog.Logger) (*View[T], error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheSize <= 0 {
		cacheSize = defaultViewCacheSize
	}
	cache, err := lru.New[viewKey, []T](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create view cache: %w", err)
	}
	return &View[T]{
		desc:   d,
		logger: logger,
		items:  items,
		gen:    1,
		cfg:    DefaultConfig(d),
		cache:  cache,
	}, nil
}

// Descriptor returns the descriptor the view applies
func (v *View[T]) Descriptor() *Descriptor[T] { return v.desc }

// Items returns the current snapshot
func (v *View[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.items
}

// Replace swaps in a new snapshot, as after a reload
func (v *View[T]) Replace(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.replaceLocked(items)
}

func (v *View[T]) replaceLocked(items []T) {
	v.items = items
	v.gen++
	v.logger.Debug("view snapshot replaced", "kind", v.desc.Kind, "count", len(items), "gen", v.gen)
}

// Config returns a copy of the current configuration
func (v *View[T]) Config() Config {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cfg.Clone()
}

// SetConfig validates and installs cfg
func (v *View[T]) SetConfig(cfg Config) error {
	if err := Validate(v.desc, cfg); err != nil {
		return err
	}
	v.mu.Lock()
	v.cfg = cfg.Clone()
	v.mu.Unlock()
	return nil
}

// Update merges p into the current configuration
func (v *View[T]) Update(p Patch) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	next := v.cfg.Merge(p)
	if err := Validate(v.desc, next); err != nil {
		return err
	}
	v.cfg = next
	return nil
}

// Reset restores the default configuration
func (v *View[T]) Reset() {
	v.mu.Lock()
	v.cfg = DefaultConfig(v.desc)
	v.mu.Unlock()
}

// Visible returns the filtered, sorted snapshot for the current configuration
func (v *View[T]) Visible() ([]T, error) {
	v.mu.RLock()
	items, gen, cfg := v.items, v.gen, v.cfg
	v.mu.RUnlock()
	return v.apply(items, gen, cfg)
}

// Query is Visible for cfg instead of the current configuration, which is
// left untouched
func (v *View[T]) Query(cfg Config) ([]T, error) {
	if err := Validate(v.desc, cfg); err != nil {
		return nil, err
	}
	v.mu.RLock()
	items, gen := v.items, v.gen
	v.mu.RUnlock()
	return v.apply(items, gen, cfg)
}

func (v *View[T]) apply(items []T, gen uint64, cfg Config) ([]T, error) {
	key := viewKey{gen: gen, fp: cfg.Fingerprint()}
	if cached, ok := v.cache.Get(key); ok {
		return slices.Clone(cached), nil
	}

	out, err := Apply(v.desc, items, cfg)
	if err != nil {
		return nil, err
	}
	v.cache.Add(key, out)
	v.logger.Debug("view recomputed", "kind", v.desc.Kind, "visible", len(out), "total", len(items))
	return slices.Clone(out), nil
}

// Stats summarizes the full snapshot, ignoring the configuration
func (v *View[T]) Stats() Stats {
	return DeriveStats(v.desc, v.Items())
}

// Toggle inverts flag on the item with the given id. It returns the updated
// item and false when no item has that id.
func (v *View[T]) Toggle(id, flag string) (T, bool, error) {
	return v.mutate(id, func(items []T) ([]T, error) {
		return ToggleFlag(v.desc, items, id, flag)
	})
}

// Rate sets the user rating of the item with the given id
func (v *View[T]) Rate(id string, rating int) (T, bool, error) {
	return v.mutate(id, func(items []T) ([]T, error) {
		return SetUserRating(v.desc, items, id, rating)
	})
}

// Unrate clears the user rating of the item with the given id
func (v *View[T]) Unrate(id string) (T, bool, error) {
	return v.mutate(id, func(items []T) ([]T, error) {
		return ClearUserRating(v.desc, items, id)
	})
}

func (v *View[T]) mutate(id string, op func([]T) ([]T, error)) (T, bool, error) {
	var zero T

	v.mu.Lock()
	defer v.mu.Unlock()

	next, err := op(v.items)
	if err != nil {
		return zero, false, err
	}
	item, ok := Find(v.desc, next, id)
	if !ok {
		return zero, false, nil
	}
	v.replaceLocked(next)
	return item, true, nil
}
