package search

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Mode selects how a search term is matched against field values
type Mode string

const (
	// ModeSubstring matches when the lower-cased term occurs in the lower-cased value
	ModeSubstring Mode = "substring"
	// ModeFuzzy matches when the term's characters occur in order in the value,
	// ignoring case and diacritics ("amelie" matches "Amélie")
	ModeFuzzy Mode = "fuzzy"
)

// ParseMode converts a mode name; "" yields ModeSubstring
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	default:
		return "", fmt.Errorf("unknown search mode %q", s)
	}
}

// Matcher tests field values against one search term.
// The zero value matches everything.
type Matcher struct {
	mode Mode
	term string
}

// NewMatcher prepares a matcher for term. Surrounding whitespace is ignored
// and mode names are case-insensitive; an unknown mode matches as substring.
func NewMatcher(mode Mode, term string) Matcher {
	mode, err := ParseMode(string(mode))
	if err != nil {
		mode = ModeSubstring
	}
	term = strings.TrimSpace(term)
	if mode == ModeSubstring {
		term = strings.ToLower(term)
	}
	return Matcher{mode: mode, term: term}
}

// Empty reports whether the term is empty, in which case every item passes
func (m Matcher) Empty() bool { return m.term == "" }

// Match reports whether value satisfies the term
func (m Matcher) Match(value string) bool {
	if m.term == "" {
		return true
	}
	if value == "" {
		return false
	}
	if m.mode == ModeFuzzy {
		return fuzzy.MatchNormalizedFold(m.term, value)
	}
	return strings.Contains(strings.ToLower(value), m.term)
}

// MatchAny reports whether at least one value satisfies the term
func (m Matcher) MatchAny(values []string) bool {
	for _, v := range values {
		if m.Match(v) {
			return true
		}
	}
	return false
}
