package catalog

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/mmcdole/kiosk/internal/search"
)

// Direction is a sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts asc/desc and their long forms
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Asc, nil
	case "desc", "descending":
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: unknown sort direction %q", domain.ErrInvalidConfig, s)
	}
}

// SortSpec selects a sort key and direction
type SortSpec struct {
	Key       string    `json:"key,omitempty" mapstructure:"key"`
	Direction Direction `json:"direction,omitempty" mapstructure:"direction"`
}

// ParseSortSpec accepts "year", "year:desc" or "price-desc"
func ParseSortSpec(s string) (SortSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortSpec{}, nil
	}
	key, dir, found := strings.Cut(s, ":")
	if !found {
		if i := strings.LastIndex(s, "-"); i > 0 {
			if _, err := ParseDirection(s[i+1:]); err == nil {
				key, dir, found = s[:i], s[i+1:], true
			}
		}
	}
	spec := SortSpec{Key: strings.TrimSpace(key)}
	if found {
		d, err := ParseDirection(dir)
		if err != nil {
			return SortSpec{}, err
		}
		spec.Direction = d
	}
	return spec, nil
}

func (s SortSpec) String() string {
	if s.Direction == "" {
		return s.Key
	}
	return s.Key + ":" + string(s.Direction)
}

// Range is an inclusive numeric interval
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in [Min, Max]
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && r.Min <= r.Max
}

// Config is the filter and sort configuration applied to a collection.
// It is a plain value: absent facets, ranges and toggles impose no constraint.
type Config struct {
	SearchTerm string              `json:"search_term,omitempty"`
	SearchMode search.Mode         `json:"search_mode,omitempty"`
	Facets     map[string][]string `json:"facets,omitempty"`
	Ranges     map[string]Range    `json:"ranges,omitempty"`
	Toggles    map[string]bool     `json:"toggles,omitempty"`
	Sort       SortSpec            `json:"sort"`
}

// DefaultConfig returns the configuration a fresh view starts with
func DefaultConfig[T any](d *Descriptor[T]) Config {
	return Config{SearchMode: search.ModeSubstring, Sort: d.DefaultSort}
}

// Validate checks every name in cfg against d and every range for min <= max
func Validate[T any](d *Descriptor[T], cfg Config) error {
	if err := validateFilter(d, cfg); err != nil {
		return err
	}
	if cfg.Sort.Key != "" || cfg.Sort.Direction != "" {
		if _, _, err := d.resolveSort(cfg.Sort); err != nil {
			return err
		}
	}
	return nil
}

func validateFilter[T any](d *Descriptor[T], cfg Config) error {
	if _, err := search.ParseMode(string(cfg.SearchMode)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	for name := range cfg.Facets {
		if _, ok := d.facet(name); !ok {
			return fmt.Errorf("%w: unknown facet %q for %s", domain.ErrInvalidConfig, name, d.Kind)
		}
	}
	for name, r := range cfg.Ranges {
		if _, ok := d.rangeField(name); !ok {
			return fmt.Errorf("%w: unknown range %q for %s", domain.ErrInvalidConfig, name, d.Kind)
		}
		if !r.valid() {
			return fmt.Errorf("%w: range %q has min %v > max %v", domain.ErrInvalidConfig, name, r.Min, r.Max)
		}
	}
	for name := range cfg.Toggles {
		if _, ok := d.flag(name); !ok {
			return fmt.Errorf("%w: unknown flag %q for %s", domain.ErrInvalidConfig, name, d.Kind)
		}
	}
	return nil
}

// Clone returns a deep copy of c
func (c Config) Clone() Config {
	out := c
	if c.Facets != nil {
		out.Facets = make(map[string][]string, len(c.Facets))
		for k, v := range c.Facets {
			out.Facets[k] = slices.Clone(v)
		}
	}
	out.Ranges = maps.Clone(c.Ranges)
	out.Toggles = maps.Clone(c.Toggles)
	return out
}

// Normalize returns the canonical form of c: trimmed term, canonical search
// mode, deduplicated and sorted facet selections, no empty facet values, no
// false toggles. Filtering always runs on the normalized form, so c and
// c.Normalize() select the same items.
func (c Config) Normalize() Config {
	out := Config{
		SearchTerm: strings.TrimSpace(c.SearchTerm),
		SearchMode: c.SearchMode,
		Ranges:     maps.Clone(c.Ranges),
		Sort:       c.Sort,
	}
	if mode, err := search.ParseMode(string(c.SearchMode)); err == nil {
		out.SearchMode = mode
	}
	for name, values := range c.Facets {
		var kept []string
		for _, v := range values {
			if v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			continue
		}
		slices.Sort(kept)
		if out.Facets == nil {
			out.Facets = make(map[string][]string)
		}
		out.Facets[name] = slices.Compact(kept)
	}
	for name, on := range c.Toggles {
		if !on {
			continue
		}
		if out.Toggles == nil {
			out.Toggles = make(map[string]bool)
		}
		out.Toggles[name] = true
	}
	if len(out.Ranges) == 0 {
		out.Ranges = nil
	}
	return out
}

// Fingerprint hashes the normalized form of c
func (c Config) Fingerprint() uint64 {
	// encoding/json writes map keys in sorted order
	data, err := json.Marshal(c.Normalize())
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// ActiveCount returns the number of active filters: selected facet values,
// configured ranges, true toggles and a non-empty search term
func (c Config) ActiveCount() int {
	n := 0
	for _, values := range c.Facets {
		n += len(values)
	}
	n += len(c.Ranges)
	for _, on := range c.Toggles {
		if on {
			n++
		}
	}
	if strings.TrimSpace(c.SearchTerm) != "" {
		n++
	}
	return n
}

// ToggleFacetValue returns a copy of c with value added to or removed from the facet selection
func (c Config) ToggleFacetValue(facet, value string) Config {
	out := c.Clone()
	if out.Facets == nil {
		out.Facets = make(map[string][]string)
	}
	selected := out.Facets[facet]
	if i := slices.Index(selected, value); i >= 0 {
		selected = slices.Delete(selected, i, i+1)
	} else {
		selected = append(selected, value)
	}
	if len(selected) == 0 {
		delete(out.Facets, facet)
	} else {
		out.Facets[facet] = selected
	}
	return out
}

// Patch is a partial configuration update. Nil fields leave the base untouched;
// a facet mapped to an empty slice clears it, a range mapped to nil removes it.
type Patch struct {
	SearchTerm *string
	SearchMode *search.Mode
	Facets     map[string][]string
	Ranges     map[string]*Range
	Toggles    map[string]bool
	Sort       *SortSpec
}

// Merge returns a copy of c with p applied
func (c Config) Merge(p Patch) Config {
	out := c.Clone()
	if p.SearchTerm != nil {
		out.SearchTerm = *p.SearchTerm
	}
	if p.SearchMode != nil {
		out.SearchMode = *p.SearchMode
	}
	for name, values := range p.Facets {
		if len(values) == 0 {
			delete(out.Facets, name)
			continue
		}
		if out.Facets == nil {
			out.Facets = make(map[string][]string)
		}
		out.Facets[name] = slices.Clone(values)
	}
	for name, r := range p.Ranges {
		if r == nil {
			delete(out.Ranges, name)
			continue
		}
		if out.Ranges == nil {
			out.Ranges = make(map[string]Range)
		}
		out.Ranges[name] = *r
	}
	for name, on := range p.Toggles {
		if out.Toggles == nil {
			out.Toggles = make(map[string]bool)
		}
		out.Toggles[name] = on
	}
	if p.Sort != nil {
		out.Sort = *p.Sort
	}
	return out
}
