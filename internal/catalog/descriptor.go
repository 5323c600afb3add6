package catalog

import (
	"github.com/mmcdole/kiosk/internal/domain"
	"golang.org/x/text/language"
)

// TextField is a free-text searchable field. Values returns every string the
// field holds: one for scalar fields, many for list fields such as cast.
type TextField[T any] struct {
	Name   string
	Values func(T) []string
}

// Facet is a categorical field. Values returns nil when the item has no value
// (for example an absent brand relation).
type Facet[T any] struct {
	Name   string
	Values func(T) []string
}

// RangeField is a numeric field. Value reports false when the item has no value.
type RangeField[T any] struct {
	Name  string
	Value func(T) (float64, bool)
}

// Flag is a boolean field. Set is nil for flags derived from item data.
type Flag[T any] struct {
	Name string
	Get  func(T) bool
	Set  func(T, bool) T
}

// ReadOnly reports whether the flag cannot be toggled
func (f Flag[T]) ReadOnly() bool { return f.Set == nil }

// SortKey orders items by exactly one of Number or Text
type SortKey[T any] struct {
	Name   string
	Number func(T) float64
	Text   func(T) string
}

// RatingField describes the user rating and its closed scale [Min, Max].
// Set receives nil to clear the rating.
type RatingField[T any] struct {
	Min int
	Max int
	Get func(T) (int, bool)
	Set func(T, *int) T
}

// Valid reports whether r lies on the scale
func (r RatingField[T]) Valid(rating int) bool {
	return rating >= r.Min && rating <= r.Max
}

// Descriptor declares which fields of T the engine searches, facets, ranges,
// toggles and sorts on. Field slices are evaluated in declaration order.
type Descriptor[T any] struct {
	Kind     domain.Kind
	ID       func(T) string
	Title    func(T) string
	Text     []TextField[T]
	Facets   []Facet[T]
	Ranges   []RangeField[T]
	Flags    []Flag[T]
	SortKeys []SortKey[T]
	Rating   *RatingField[T]

	// Mean names the range field averaged by DeriveStats
	Mean        string
	DefaultSort SortSpec
	Language    language.Tag
}

// WithLanguage returns a copy of d collating text sort keys for tag
func (d *Descriptor[T]) WithLanguage(tag language.Tag) *Descriptor[T] {
	c := *d
	c.Language = tag
	return &c
}

// WithRatingScale returns a copy of d with the user rating bounded to [lo, hi].
// Descriptors without a rating field are returned unchanged.
func (d *Descriptor[T]) WithRatingScale(lo, hi int) *Descriptor[T] {
	if d.Rating == nil {
		return d
	}
	c := *d
	r := *d.Rating
	r.Min, r.Max = lo, hi
	c.Rating = &r
	return &c
}

// WithDefaultSort returns a copy of d using spec when a config names no sort key
func (d *Descriptor[T]) WithDefaultSort(spec SortSpec) *Descriptor[T] {
	c := *d
	c.DefaultSort = spec
	return &c
}

func (d *Descriptor[T]) facet(name string) (*Facet[T], bool) {
	for i := range d.Facets {
		if d.Facets[i].Name == name {
			return &d.Facets[i], true
		}
	}
	return nil, false
}

func (d *Descriptor[T]) rangeField(name string) (*RangeField[T], bool) {
	for i := range d.Ranges {
		if d.Ranges[i].Name == name {
			return &d.Ranges[i], true
		}
	}
	return nil, false
}

func (d *Descriptor[T]) flag(name string) (*Flag[T], bool) {
	for i := range d.Flags {
		if d.Flags[i].Name == name {
			return &d.Flags[i], true
		}
	}
	return nil, false
}

func (d *Descriptor[T]) sortKey(name string) (*SortKey[T], bool) {
	for i := range d.SortKeys {
		if d.SortKeys[i].Name == name {
			return &d.SortKeys[i], true
		}
	}
	return nil, false
}

// Schema lists a descriptor's field names, for help output and validation
type Schema struct {
	Kind      domain.Kind `json:"kind"`
	Text      []string    `json:"text"`
	Facets    []string    `json:"facets"`
	Ranges    []string    `json:"ranges"`
	Flags     []string    `json:"flags"`
	ReadOnly  []string    `json:"read_only_flags"`
	SortKeys  []string    `json:"sort_keys"`
	Mean      string      `json:"mean,omitempty"`
	RatingMin int         `json:"rating_min,omitempty"`
	RatingMax int         `json:"rating_max,omitempty"`
	Default   SortSpec    `json:"default_sort"`
}

// Describe returns the schema of d
func Describe[T any](d *Descriptor[T]) Schema {
	s := Schema{Kind: d.Kind, Mean: d.Mean, Default: d.DefaultSort}
	for _, f := range d.Text {
		s.Text = append(s.Text, f.Name)
	}
	for _, f := range d.Facets {
		s.Facets = append(s.Facets, f.Name)
	}
	for _, f := range d.Ranges {
		s.Ranges = append(s.Ranges, f.Name)
	}
	for _, f := range d.Flags {
		s.Flags = append(s.Flags, f.Name)
		if f.ReadOnly() {
			s.ReadOnly = append(s.ReadOnly, f.Name)
		}
	}
	for _, k := range d.SortKeys {
		s.SortKeys = append(s.SortKeys, k.Name)
	}
	if d.Rating != nil {
		s.RatingMin, s.RatingMax = d.Rating.Min, d.Rating.Max
	}
	return s
}
