package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStats_Empty(t *testing.T) {
	s := DeriveStats(Movies(), nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.Mean)
	assert.Equal(t, 0.0, s.MeanUserRating)
	assert.Equal(t, 0, s.Flags["watchlist"])
	assert.Empty(t, s.Bounds)
}

func TestDeriveStats_Movies(t *testing.T) {
	s := DeriveStats(Movies(), testMovies())

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, "rating", s.MeanField)
	assert.InDelta(t, (9.2+8.4+8.5+8.8)/4, s.Mean, 1e-9)
	assert.Equal(t, map[string]int{"watchlist": 1, "watched": 1, "rated": 1}, s.Flags)
	assert.Equal(t, 2, s.Facets["genre"]["Thriller"])
	assert.Equal(t, 3, s.Facets["language"]["Anglais"])
	assert.Equal(t, Range{Min: 1972, Max: 2019}, s.Bounds["year"])
	assert.Equal(t, 1, s.Rated)
	assert.Equal(t, 4.0, s.MeanUserRating)
}

func TestDeriveStats_Products(t *testing.T) {
	s := DeriveStats(Products(), testProducts())

	assert.Equal(t, 3, s.Total)
	assert.InDelta(t, (30.0+35+8)/3, s.Mean, 1e-9)
	assert.Equal(t, 2, s.Flags["in_stock"])
	assert.Equal(t, 1, s.Flags["on_sale"])
	assert.Equal(t, 0, s.Flags["favorite"])
	assert.Equal(t, 1, s.Facets["brand"]["Lumière"])
	assert.Equal(t, Range{Min: 4.5, Max: 4.5}, s.Bounds["review_rating"])
	assert.Equal(t, 0, s.Rated)
}

func TestBounds_OmitsFieldsWithoutValues(t *testing.T) {
	b := Bounds(Movies(), testMovies()[:2])

	assert.Contains(t, b, "year")
	assert.NotContains(t, b, "user_rating")
}
