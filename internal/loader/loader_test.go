package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMovies_JSONAndYAML(t *testing.T) {
	jsonPath := writeFile(t, "movies.json", `{"movies":[
		{"id":"1","title":"Le Parrain","year":1972,"genres":["Crime","Drame"],"rating":9.2},
		{"id":"2","title":"Joker","year":2019,"genres":["Thriller"],"rating":8.4,"user_rating":4}
	]}`)
	yamlPath := writeFile(t, "movies.yml", `
movies:
  - id: "1"
    title: Le Parrain
    year: 1972
    genres: [Crime, Drame]
    rating: 9.2
  - id: "2"
    title: Joker
    year: 2019
    genres: [Thriller]
    rating: 8.4
    user_rating: 4
`)

	fromJSON, err := LoadMovies(context.Background(), jsonPath)
	require.NoError(t, err)
	fromYAML, err := LoadMovies(context.Background(), yamlPath)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	require.Len(t, fromJSON, 2)
	assert.Equal(t, []string{"Crime", "Drame"}, fromJSON[0].Genres)
	assert.Nil(t, fromJSON[0].UserRating)
	require.NotNil(t, fromJSON[1].UserRating)
	assert.Equal(t, 4, *fromJSON[1].UserRating)
}

func TestLoadMovies_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := LoadMovies(ctx, writeFile(t, "movies.csv", "id,title"))
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))

	_, err = LoadMovies(ctx, writeFile(t, "dup.json", `{"movies":[{"id":"1"},{"id":"1"}]}`))
	assert.True(t, errors.Is(err, domain.ErrDuplicateID))

	_, err = LoadMovies(ctx, writeFile(t, "noid.json", `{"movies":[{"title":"x"}]}`))
	assert.Error(t, err)

	_, err = LoadMovies(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = LoadMovies(cancelled, writeFile(t, "ok.json", `{"movies":[]}`))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadProducts_ResolvesRelations(t *testing.T) {
	path := writeFile(t, "shop.json", `{
		"brands": [{"id":"b1","name":"Lumière"}],
		"categories": [{"id":"c1","name":"Sérums","slug":"serums"}],
		"products": [
			{"id":"p1","name":"Sérum","price":30,"brand_id":"b1","category_id":"c1","is_active":true},
			{"id":"p2","name":"Orphelin","price":10,"brand_id":"gone","is_active":true},
			{"id":"p3","name":"Retiré","price":10,"is_active":false}
		]
	}`)

	products, err := LoadProducts(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, products, 2, "inactive products are dropped")

	require.NotNil(t, products[0].Brand)
	assert.Equal(t, "Lumière", products[0].Brand.Name)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "serums", products[0].Category.Slug)

	assert.Nil(t, products[1].Brand, "unknown brand id leaves the relation absent")
	assert.Nil(t, products[1].Category)
}

func TestLoadProducts_DuplicateIncludesInactive(t *testing.T) {
	path := writeFile(t, "shop.yaml", `
products:
  - {id: p1, name: A, is_active: false}
  - {id: p1, name: B, is_active: true}
`)
	_, err := LoadProducts(context.Background(), path)
	assert.True(t, errors.Is(err, domain.ErrDuplicateID))
}

func TestSamples(t *testing.T) {
	movies, err := SampleMovies()
	require.NoError(t, err)
	assert.Len(t, movies, 8)
	assert.Equal(t, "Le Parrain", movies[0].Title)
	assert.Equal(t, "기생충", movies[6].OriginalTitle)

	products, err := SampleProducts()
	require.NoError(t, err)
	assert.Len(t, products, 5)
	for _, p := range products {
		assert.True(t, p.IsActive)
	}
	assert.Nil(t, products[4].Brand)
	assert.Equal(t, "Nuit Blanche", products[1].BrandName())
}

func TestLoadFuncs_FallBackToSamples(t *testing.T) {
	movies, err := Movies("")(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 8)

	products, err := Products("")(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 5)
}
