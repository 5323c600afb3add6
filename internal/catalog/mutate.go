package catalog

import (
	"fmt"

	"github.com/mmcdole/kiosk/internal/domain"
)

// Find returns the item with the given id
func Find[T any](d *Descriptor[T], items []T, id string) (T, bool) {
	if i := indexOf(d, items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func indexOf[T any](d *Descriptor[T], items []T, id string) int {
	for i := range items {
		if d.ID(items[i]) == id {
			return i
		}
	}
	return -1
}

// replaceAt returns a copy of items with position i set to item
func replaceAt[T any](items []T, i int, item T) []T {
	out := make([]T, len(items))
	copy(out, items)
	out[i] = item
	return out
}

// ToggleFlag returns a new collection in which the item with the given id has
// flag inverted. An unknown id is not an error: items is returned as is.
func ToggleFlag[T any](d *Descriptor[T], items []T, id, flag string) ([]T, error) {
	f, ok := d.flag(flag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown flag %q for %s", domain.ErrInvalidConfig, flag, d.Kind)
	}
	if f.ReadOnly() {
		return nil, fmt.Errorf("%w: %s", domain.ErrReadOnlyFlag, flag)
	}

	i := indexOf(d, items, id)
	if i < 0 {
		return items, nil
	}
	return replaceAt(items, i, f.Set(items[i], !f.Get(items[i]))), nil
}

// SetUserRating returns a new collection in which the item with the given id
// carries rating. Ratings off the descriptor's scale are rejected, never clamped.
// An unknown id is not an error: items is returned as is.
func SetUserRating[T any](d *Descriptor[T], items []T, id string, rating int) ([]T, error) {
	if d.Rating == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRatable, d.Kind)
	}
	if !d.Rating.Valid(rating) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", domain.ErrInvalidRating, rating, d.Rating.Min, d.Rating.Max)
	}

	i := indexOf(d, items, id)
	if i < 0 {
		return items, nil
	}
	r := rating
	return replaceAt(items, i, d.Rating.Set(items[i], &r)), nil
}

// ClearUserRating returns a new collection in which the item with the given id
// has no rating. An unknown id is not an error.
func ClearUserRating[T any](d *Descriptor[T], items []T, id string) ([]T, error) {
	if d.Rating == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotRatable, d.Kind)
	}

	i := indexOf(d, items, id)
	if i < 0 {
		return items, nil
	}
	return replaceAt(items, i, d.Rating.Set(items[i], nil)), nil
}

// UserState extracts the user-owned part of item: every settable flag and
// the rating
func UserState[T any](d *Descriptor[T], item T) domain.UserState {
	var s domain.UserState
	for _, f := range d.Flags {
		if f.ReadOnly() {
			continue
		}
		if s.Flags == nil {
			s.Flags = make(map[string]bool)
		}
		s.Flags[f.Name] = f.Get(item)
	}
	if d.Rating != nil {
		if r, ok := d.Rating.Get(item); ok {
			s.Rating = &r
		}
	}
	return s
}

// WithUserState returns item with state applied. A nil rating clears the
// item's rating. Unknown or read-only flags and ratings off the scale are
// skipped.
func WithUserState[T any](d *Descriptor[T], item T, state domain.UserState) T {
	for name, on := range state.Flags {
		f, ok := d.flag(name)
		if !ok || f.ReadOnly() {
			continue
		}
		item = f.Set(item, on)
	}
	if d.Rating == nil {
		return item
	}
	switch {
	case state.Rating == nil:
		item = d.Rating.Set(item, nil)
	case d.Rating.Valid(*state.Rating):
		r := *state.Rating
		item = d.Rating.Set(item, &r)
	}
	return item
}
