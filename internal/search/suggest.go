package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Suggestion is a ranked type-ahead match
type Suggestion struct {
	Index          int    // Index in the titles slice
	Title          string // Original title
	MatchedIndexes []int  // Byte offsets of matched runes in Title, for highlighting
	Score          int    // Higher is better
}

// titleIndex implements sahilm/fuzzy.Source over pre-lowered titles.
// offsets[i] maps a rune's byte offset in lower[i] to its offset in the
// original title; lowering can change a rune's encoded length.
type titleIndex struct {
	lower   []string
	offsets [][]int
}

// fold lowers title rune by rune, recording where each lowered rune came from
func fold(title string) (string, []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(title))
	for i, r := range title {
		lr := unicode.ToLower(r)
		for range utf8.RuneLen(lr) {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	return b.String(), offsets
}

func (t titleIndex) String(i int) string { return t.lower[i] }
func (t titleIndex) Len() int            { return len(t.lower) }

// Suggest ranks titles against query, best first.
// limit <= 0 returns every match.
func Suggest(titles []string, query string, limit int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" || len(titles) == 0 {
		return nil
	}

	idx := titleIndex{lower: make([]string, len(titles)), offsets: make([][]int, len(titles))}
	for i, t := range titles {
		idx.lower[i], idx.offsets[i] = fold(t)
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), idx)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Suggestion, len(matches))
	for i, m := range matches {
		offsets := idx.offsets[m.Index]
		matched := make([]int, len(m.MatchedIndexes))
		for j, k := range m.MatchedIndexes {
			matched[j] = offsets[k]
		}
		out[i] = Suggestion{
			Index:          m.Index,
			Title:          titles[m.Index],
			MatchedIndexes: matched,
			Score:          m.Score,
		}
	}
	return out
}
