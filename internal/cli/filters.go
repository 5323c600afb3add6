package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
)

// parseFacets turns repeated name=value flags into facet selections
func parseFacets(flags []string) (map[string][]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string][]string)
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("%w: facet %q, want name=value", domain.ErrInvalidConfig, f)
		}
		out[name] = append(out[name], value)
	}
	return out, nil
}

// parseRanges turns repeated name=min:max flags into ranges. An empty side
// takes the observed bound from bounds.
func parseRanges(flags []string, bounds map[string]catalog.Range) (map[string]*catalog.Range, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string]*catalog.Range)
	for _, f := range flags {
		name, span, ok := strings.Cut(f, "=")
		lo, hi, ok2 := strings.Cut(span, ":")
		name = strings.TrimSpace(name)
		if !ok || !ok2 || name == "" {
			return nil, fmt.Errorf("%w: range %q, want name=min:max", domain.ErrInvalidConfig, f)
		}

		r := catalog.Range{Min: -math.MaxFloat64, Max: math.MaxFloat64}
		if b, ok := bounds[name]; ok {
			r = b
		}
		var err error
		if lo = strings.TrimSpace(lo); lo != "" {
			if r.Min, err = strconv.ParseFloat(lo, 64); err != nil {
				return nil, fmt.Errorf("%w: range %q: %v", domain.ErrInvalidConfig, f, err)
			}
		}
		if hi = strings.TrimSpace(hi); hi != "" {
			if r.Max, err = strconv.ParseFloat(hi, 64); err != nil {
				return nil, fmt.Errorf("%w: range %q: %v", domain.ErrInvalidConfig, f, err)
			}
		}
		out[name] = &r
	}
	return out, nil
}

// parseToggles turns flag names into true toggles
func parseToggles(flags []string) map[string]bool {
	if len(flags) == 0 {
		return nil
	}
	out := make(map[string]bool, len(flags))
	for _, f := range flags {
		out[strings.TrimSpace(f)] = true
	}
	return out
}

// parseSort combines --sort and --order. --order alone applies to the
// configured key.
func parseSort(sortFlag, orderFlag string, current catalog.SortSpec) (*catalog.SortSpec, error) {
	if sortFlag == "" && orderFlag == "" {
		return nil, nil
	}
	spec := current
	if sortFlag != "" {
		parsed, err := catalog.ParseSortSpec(sortFlag)
		if err != nil {
			return nil, err
		}
		spec = parsed
	}
	if orderFlag != "" {
		dir, err := catalog.ParseDirection(orderFlag)
		if err != nil {
			return nil, err
		}
		spec.Direction = dir
	}
	return &spec, nil
}
