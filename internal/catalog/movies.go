package catalog

import (
	"github.com/mmcdole/kiosk/internal/domain"
	"golang.org/x/text/language"
)

// Movies describes domain.Movie for the movie tracker
func Movies() *Descriptor[domain.Movie] {
	return &Descriptor[domain.Movie]{
		Kind:  domain.KindMovies,
		ID:    func(m domain.Movie) string { return m.ID },
		Title: func(m domain.Movie) string { return m.Title },
		Text: []TextField[domain.Movie]{
			{Name: "title", Values: func(m domain.Movie) []string { return nonEmpty(m.Title) }},
			{Name: "original_title", Values: func(m domain.Movie) []string { return nonEmpty(m.OriginalTitle) }},
			{Name: "director", Values: func(m domain.Movie) []string { return nonEmpty(m.Director) }},
			{Name: "cast", Values: func(m domain.Movie) []string { return m.Cast }},
		},
		Facets: []Facet[domain.Movie]{
			{Name: "genre", Values: func(m domain.Movie) []string { return m.Genres }},
			{Name: "language", Values: func(m domain.Movie) []string { return nonEmpty(m.Language) }},
		},
		Ranges: []RangeField[domain.Movie]{
			{Name: "year", Value: func(m domain.Movie) (float64, bool) { return float64(m.Year), m.Year != 0 }},
			{Name: "rating", Value: func(m domain.Movie) (float64, bool) { return m.Rating, true }},
			{Name: "duration", Value: func(m domain.Movie) (float64, bool) { return float64(m.Duration), m.Duration != 0 }},
			{Name: "user_rating", Value: func(m domain.Movie) (float64, bool) {
				if m.UserRating == nil {
					return 0, false
				}
				return float64(*m.UserRating), true
			}},
		},
		Flags: []Flag[domain.Movie]{
			{
				Name: "watchlist",
				Get:  func(m domain.Movie) bool { return m.Watchlist },
				Set:  func(m domain.Movie, v bool) domain.Movie { m.Watchlist = v; return m },
			},
			{
				Name: "watched",
				Get:  func(m domain.Movie) bool { return m.Watched },
				Set:  func(m domain.Movie, v bool) domain.Movie { m.Watched = v; return m },
			},
			{Name: "rated", Get: func(m domain.Movie) bool { return m.UserRating != nil }},
		},
		SortKeys: []SortKey[domain.Movie]{
			{Name: "rating", Number: func(m domain.Movie) float64 { return m.Rating }},
			{Name: "year", Number: func(m domain.Movie) float64 { return float64(m.Year) }},
			{Name: "title", Text: func(m domain.Movie) string { return m.Title }},
			{Name: "duration", Number: func(m domain.Movie) float64 { return float64(m.Duration) }},
			{Name: "user_rating", Number: func(m domain.Movie) float64 {
				if m.UserRating == nil {
					return 0
				}
				return float64(*m.UserRating)
			}},
		},
		Rating: &RatingField[domain.Movie]{
			Min: 1,
			Max: 5,
			Get: func(m domain.Movie) (int, bool) {
				if m.UserRating == nil {
					return 0, false
				}
				return *m.UserRating, true
			},
			Set: func(m domain.Movie, r *int) domain.Movie { m.UserRating = r; return m },
		},
		Mean:        "rating",
		DefaultSort: SortSpec{Key: "rating", Direction: Desc},
		Language:    language.French,
	}
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
