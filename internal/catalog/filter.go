// Package catalog filters, sorts and summarizes in-memory item collections.
//
// Every function is pure: collections and configurations go in, new
// collections and values come out, and inputs are never modified. The shape of
// an item type is declared once in a Descriptor and shared by all operations.
package catalog

import (
	"github.com/mmcdole/kiosk/internal/search"
)

// Stage identifies a filter predicate family
type Stage string

const (
	StageSearch Stage = "search"
	StageFacet  Stage = "facet"
	StageRange  Stage = "range"
	StageToggle Stage = "toggle"
)

// Observer is called once per predicate evaluation. field is empty for StageSearch.
type Observer func(stage Stage, field string, passed bool)

type facetPredicate[T any] struct {
	field    *Facet[T]
	selected map[string]struct{}
}

type rangePredicate[T any] struct {
	field *RangeField[T]
	r     Range
}

// predicate is a configuration compiled against a descriptor
type predicate[T any] struct {
	d       *Descriptor[T]
	matcher search.Matcher
	facets  []facetPredicate[T]
	ranges  []rangePredicate[T]
	toggles []*Flag[T]
}

func compile[T any](d *Descriptor[T], cfg Config) (*predicate[T], error) {
	if err := validateFilter(d, cfg); err != nil {
		return nil, err
	}

	cfg = cfg.Normalize()
	p := &predicate[T]{d: d, matcher: search.NewMatcher(cfg.SearchMode, cfg.SearchTerm)}

	for i := range d.Facets {
		f := &d.Facets[i]
		values := cfg.Facets[f.Name]
		if len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		p.facets = append(p.facets, facetPredicate[T]{field: f, selected: set})
	}

	for i := range d.Ranges {
		f := &d.Ranges[i]
		if r, ok := cfg.Ranges[f.Name]; ok {
			p.ranges = append(p.ranges, rangePredicate[T]{field: f, r: r})
		}
	}

	for i := range d.Flags {
		f := &d.Flags[i]
		if cfg.Toggles[f.Name] {
			p.toggles = append(p.toggles, f)
		}
	}

	return p, nil
}

// match evaluates the predicates in order, stopping at the first failure
func (p *predicate[T]) match(item T, obs Observer) bool {
	if !p.matcher.Empty() {
		ok := p.matchSearch(item)
		if obs != nil {
			obs(StageSearch, "", ok)
		}
		if !ok {
			return false
		}
	}

	for _, fp := range p.facets {
		ok := false
		for _, v := range fp.field.Values(item) {
			if _, hit := fp.selected[v]; hit {
				ok = true
				break
			}
		}
		if obs != nil {
			obs(StageFacet, fp.field.Name, ok)
		}
		if !ok {
			return false
		}
	}

	for _, rp := range p.ranges {
		v, present := rp.field.Value(item)
		ok := present && rp.r.Contains(v)
		if obs != nil {
			obs(StageRange, rp.field.Name, ok)
		}
		if !ok {
			return false
		}
	}

	for _, f := range p.toggles {
		ok := f.Get(item)
		if obs != nil {
			obs(StageToggle, f.Name, ok)
		}
		if !ok {
			return false
		}
	}

	return true
}

// matchSearch checks every text field value and every facet value
func (p *predicate[T]) matchSearch(item T) bool {
	for _, f := range p.d.Text {
		if p.matcher.MatchAny(f.Values(item)) {
			return true
		}
	}
	for _, f := range p.d.Facets {
		if p.matcher.MatchAny(f.Values(item)) {
			return true
		}
	}
	return false
}

// Filter returns the items of items that satisfy cfg, in input order.
// Only cfg's filter part is used; its sort spec is ignored.
func Filter[T any](d *Descriptor[T], items []T, cfg Config) ([]T, error) {
	return FilterWith(d, items, cfg, nil)
}

// FilterWith is Filter reporting every predicate evaluation to obs
func FilterWith[T any](d *Descriptor[T], items []T, cfg Config, obs Observer) ([]T, error) {
	p, err := compile(d, cfg)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if p.match(item, obs) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Apply filters items with cfg and sorts the result by cfg.Sort,
// falling back to the descriptor's default sort
func Apply[T any](d *Descriptor[T], items []T, cfg Config) ([]T, error) {
	filtered, err := Filter(d, items, cfg)
	if err != nil {
		return nil, err
	}
	return Sort(d, filtered, cfg.Sort)
}
