package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mmcdole/kiosk/internal/domain"
	"golang.org/x/text/collate"
)

// resolveSort fills an empty key from the descriptor default. An empty
// direction takes the default's direction for the default key, else ascending.
func (d *Descriptor[T]) resolveSort(spec SortSpec) (*SortKey[T], Direction, error) {
	if spec.Key == "" {
		spec.Key = d.DefaultSort.Key
		if spec.Direction == "" {
			spec.Direction = d.DefaultSort.Direction
		}
	}
	if spec.Key == "" {
		return nil, "", nil
	}

	key, ok := d.sortKey(spec.Key)
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown sort key %q for %s", domain.ErrInvalidConfig, spec.Key, d.Kind)
	}

	dir := spec.Direction
	if dir == "" {
		dir = Asc
		if spec.Key == d.DefaultSort.Key && d.DefaultSort.Direction != "" {
			dir = d.DefaultSort.Direction
		}
	}
	if dir != Asc && dir != Desc {
		return nil, "", fmt.Errorf("%w: unknown sort direction %q", domain.ErrInvalidConfig, dir)
	}
	return key, dir, nil
}

// comparator returns the ascending comparison for k.
// Collators hold scratch buffers, so each call builds its own.
func (k *SortKey[T]) comparator(d *Descriptor[T]) func(a, b T) int {
	if k.Text != nil {
		c := collate.New(d.Language)
		return func(a, b T) int {
			return c.CompareString(k.Text(a), k.Text(b))
		}
	}
	return func(a, b T) int {
		return cmp.Compare(k.Number(a), k.Number(b))
	}
}

// Sort returns a stably sorted copy of items. Descending order negates the
// key comparison, so equal items keep their input order in both directions.
func Sort[T any](d *Descriptor[T], items []T, spec SortSpec) ([]T, error) {
	key, dir, err := d.resolveSort(spec)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(items))
	copy(out, items)
	if key == nil {
		return out, nil
	}

	compare := key.comparator(d)
	if dir == Desc {
		asc := compare
		compare = func(a, b T) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, compare)
	return out, nil
}
