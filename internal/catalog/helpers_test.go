package catalog

import (
	"github.com/mmcdole/kiosk/internal/domain"
)

func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }

func ids[T any](d *Descriptor[T], items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = d.ID(item)
	}
	return out
}

func testMovies() []domain.Movie {
	return []domain.Movie{
		{ID: "1", Title: "Le Parrain", OriginalTitle: "The Godfather", Year: 1972, Genres: []string{"Crime", "Drame"},
			Director: "Francis Ford Coppola", Cast: []string{"Marlon Brando", "Al Pacino"}, Duration: 175, Rating: 9.2, Language: "Anglais"},
		{ID: "2", Title: "Joker", OriginalTitle: "Joker", Year: 2019, Genres: []string{"Thriller"},
			Director: "Todd Phillips", Cast: []string{"Joaquin Phoenix"}, Duration: 122, Rating: 8.4, Language: "Anglais"},
		{ID: "3", Title: "Parasite", OriginalTitle: "기생충", Year: 2019, Genres: []string{"Thriller", "Drame", "Comédie"},
			Director: "Bong Joon-ho", Cast: []string{"Song Kang-ho"}, Duration: 132, Rating: 8.5, Language: "Coréen", Watched: true},
		{ID: "4", Title: "Inception", OriginalTitle: "Inception", Year: 2010, Genres: []string{"Science-Fiction", "Action"},
			Director: "Christopher Nolan", Cast: []string{"Leonardo DiCaprio", "Marion Cotillard"}, Duration: 148, Rating: 8.8,
			Language: "Anglais", Watchlist: true, UserRating: intPtr(4)},
	}
}

func testProducts() []domain.Product {
	serum := &domain.Category{ID: "c1", Name: "Sérums", Slug: "serums"}
	creme := &domain.Category{ID: "c2", Name: "Crèmes", Slug: "cremes"}
	lumi := &domain.Brand{ID: "b1", Name: "Lumière"}
	return []domain.Product{
		{ID: "p1", Name: "Sérum éclat", Description: "Vitamine C", Price: 30, Category: serum, Brand: lumi, StockQuantity: 3, IsActive: true},
		{ID: "p2", Name: "Crème de nuit", Description: "Hydratation intense", Price: 45, DiscountPrice: floatPtr(35), Category: creme,
			StockQuantity: 0, IsActive: true, Reviews: []domain.Review{{Rating: 4}, {Rating: 5}}},
		{ID: "p3", Name: "Baume à lèvres", Price: 8, StockQuantity: 12, IsActive: true},
	}
}
