package catalog

// Stats summarizes a whole collection. Mean and MeanUserRating are full
// precision; rounding is left to the presentation layer.
type Stats struct {
	Total int            `json:"total"`
	Flags map[string]int `json:"flags"`

	// Mean averages the descriptor's Mean field over items that have a value,
	// 0 when none do
	MeanField string  `json:"mean_field,omitempty"`
	Mean      float64 `json:"mean"`

	Facets map[string]map[string]int `json:"facets"`
	Bounds map[string]Range          `json:"bounds"`

	Rated          int     `json:"rated"`
	MeanUserRating float64 `json:"mean_user_rating"`
}

// DeriveStats computes Stats over items. It is total: an empty collection
// yields zero counts and zero means.
func DeriveStats[T any](d *Descriptor[T], items []T) Stats {
	s := Stats{
		Total:     len(items),
		Flags:     make(map[string]int, len(d.Flags)),
		MeanField: d.Mean,
		Facets:    make(map[string]map[string]int, len(d.Facets)),
		Bounds:    Bounds(d, items),
	}

	for _, f := range d.Flags {
		s.Flags[f.Name] = 0
	}
	for _, f := range d.Facets {
		s.Facets[f.Name] = make(map[string]int)
	}

	meanField, hasMean := d.rangeField(d.Mean)
	var sum float64
	var n int
	var ratingSum int

	for _, item := range items {
		for _, f := range d.Flags {
			if f.Get(item) {
				s.Flags[f.Name]++
			}
		}
		for _, f := range d.Facets {
			for _, v := range f.Values(item) {
				s.Facets[f.Name][v]++
			}
		}
		if hasMean {
			if v, ok := meanField.Value(item); ok {
				sum += v
				n++
			}
		}
		if d.Rating != nil {
			if r, ok := d.Rating.Get(item); ok {
				ratingSum += r
				s.Rated++
			}
		}
	}

	if n > 0 {
		s.Mean = sum / float64(n)
	}
	if s.Rated > 0 {
		s.MeanUserRating = float64(ratingSum) / float64(s.Rated)
	}
	return s
}

// Bounds returns the observed [min, max] of every range field. Fields no item
// has a value for are omitted. The result is the "full width" a range slider
// starts at.
func Bounds[T any](d *Descriptor[T], items []T) map[string]Range {
	out := make(map[string]Range, len(d.Ranges))
	for _, f := range d.Ranges {
		var r Range
		seen := false
		for _, item := range items {
			v, ok := f.Value(item)
			if !ok {
				continue
			}
			if !seen {
				r = Range{Min: v, Max: v}
				seen = true
				continue
			}
			r.Min = min(r.Min, v)
			r.Max = max(r.Max, v)
		}
		if seen {
			out[f.Name] = r
		}
	}
	return out
}
