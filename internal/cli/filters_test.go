package cli

import (
	"math"
	"testing"

	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacets(t *testing.T) {
	got, err := parseFacets([]string{"genre=Crime", "genre=Drame", " language = Anglais "})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"genre": {"Crime", "Drame"}, "language": {"Anglais"}}, got)

	got, err = parseFacets(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"genre", "=Crime", "genre="} {
		_, err := parseFacets([]string{bad})
		assert.ErrorIs(t, err, domain.ErrInvalidConfig, bad)
	}
}

func TestParseRanges(t *testing.T) {
	bounds := map[string]catalog.Range{"year": {Min: 1972, Max: 2019}}

	got, err := parseRanges([]string{"year=1990:", "rating=8.5:9", "price=:30"}, bounds)
	require.NoError(t, err)
	assert.Equal(t, catalog.Range{Min: 1990, Max: 2019}, *got["year"])
	assert.Equal(t, catalog.Range{Min: 8.5, Max: 9}, *got["rating"])
	assert.Equal(t, catalog.Range{Min: -math.MaxFloat64, Max: 30}, *got["price"])

	for _, bad := range []string{"year", "year=1990", "year=a:b", "=1:2"} {
		_, err := parseRanges([]string{bad}, bounds)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig, bad)
	}
}

func TestParseSort(t *testing.T) {
	current := catalog.SortSpec{Key: "rating", Direction: catalog.Desc}

	got, err := parseSort("", "", current)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseSort("", "asc", current)
	require.NoError(t, err)
	assert.Equal(t, catalog.SortSpec{Key: "rating", Direction: catalog.Asc}, *got)

	got, err = parseSort("year:desc", "", current)
	require.NoError(t, err)
	assert.Equal(t, catalog.SortSpec{Key: "year", Direction: catalog.Desc}, *got)

	got, err = parseSort("title", "desc", current)
	require.NoError(t, err)
	assert.Equal(t, catalog.SortSpec{Key: "title", Direction: catalog.Desc}, *got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Joker", truncate("Joker", 10))
	assert.Equal(t, "Le Fa…", truncate("Le Fabuleux Destin", 6))
	assert.Equal(t, "", truncate("Joker", 0))
}

func TestTopValues(t *testing.T) {
	got := topValues(map[string]int{"Drame": 6, "Crime": 3, "Action": 3, "Romance": 1}, 3)
	assert.Equal(t, []valueCount{{"Drame", 6}, {"Action", 3}, {"Crime", 3}}, got)
}
