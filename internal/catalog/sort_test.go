package catalog

import (
	"errors"
	"testing"

	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSort_YearBothDirections(t *testing.T) {
	d := Movies()
	items := []domain.Movie{
		{ID: "1", Year: 1972, Rating: 9.2},
		{ID: "2", Year: 2019, Rating: 8.4},
	}

	asc, err := Sort(d, items, SortSpec{Key: "year", Direction: Asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(d, asc))

	desc, err := Sort(d, items, SortSpec{Key: "year", Direction: Desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(d, desc))
}

func TestSort_StableUnderTies(t *testing.T) {
	d := Movies()
	items := []domain.Movie{
		{ID: "a", Year: 2019},
		{ID: "b", Year: 1972},
		{ID: "c", Year: 2019},
		{ID: "d", Year: 2019},
	}

	asc, err := Sort(d, items, SortSpec{Key: "year", Direction: Asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(d, asc))

	// Ties keep input order, not reversed input order
	desc, err := Sort(d, items, SortSpec{Key: "year", Direction: Desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "b"}, ids(d, desc))
}

func TestSort_Idempotent(t *testing.T) {
	d := Movies()
	for _, key := range []string{"rating", "year", "title", "duration", "user_rating"} {
		for _, dir := range []Direction{Asc, Desc} {
			spec := SortSpec{Key: key, Direction: dir}
			once, err := Sort(d, testMovies(), spec)
			require.NoError(t, err)
			twice, err := Sort(d, once, spec)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "%s %s", key, dir)
		}
	}
}

func TestSort_LocaleAwareTitles(t *testing.T) {
	d := Movies()
	items := []domain.Movie{
		{ID: "z", Title: "Zorro"},
		{ID: "e", Title: "Écran noir"},
		{ID: "a", Title: "avion"},
	}

	got, err := Sort(d, items, SortSpec{Key: "title", Direction: Asc})
	require.NoError(t, err)
	// Code-point order would give Zorro, avion, Écran noir
	assert.Equal(t, []string{"a", "e", "z"}, ids(d, got))

	got, err = Sort(d.WithLanguage(language.English), items, SortSpec{Key: "title", Direction: Desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "e", "a"}, ids(d, got))
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	d := Movies()
	items := testMovies()
	before := ids(d, items)

	got, err := Sort(d, items, SortSpec{Key: "year", Direction: Desc})
	require.NoError(t, err)

	assert.Equal(t, before, ids(d, items))
	assert.Len(t, got, len(items))
	assert.ElementsMatch(t, before, ids(d, got))
}

func TestSort_ProductsByFinalPrice(t *testing.T) {
	d := Products()
	got, err := Sort(d, testProducts(), SortSpec{Key: "price", Direction: Asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p1", "p2"}, ids(d, got))
}

func TestSort_DefaultsAndErrors(t *testing.T) {
	d := Movies()

	got, err := Sort(d, testMovies(), SortSpec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "3", "2"}, ids(d, got), "descriptor default is rating desc")

	got, err = Sort(d, testMovies(), SortSpec{Key: "duration"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4", "1"}, ids(d, got), "non-default keys default to ascending")

	_, err = Sort(d, testMovies(), SortSpec{Key: "price"})
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	_, err = Sort(d, testMovies(), SortSpec{Key: "year", Direction: "sideways"})
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	got, err = Sort(d, nil, SortSpec{Key: "year"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
