package catalog

import (
	"github.com/mmcdole/kiosk/internal/domain"
	"golang.org/x/text/language"
)

// Products describes domain.Product for the shop
func Products() *Descriptor[domain.Product] {
	return &Descriptor[domain.Product]{
		Kind:  domain.KindProducts,
		ID:    func(p domain.Product) string { return p.ID },
		Title: func(p domain.Product) string { return p.Name },
		Text: []TextField[domain.Product]{
			{Name: "name", Values: func(p domain.Product) []string { return nonEmpty(p.Name) }},
			{Name: "description", Values: func(p domain.Product) []string { return nonEmpty(p.Description) }},
		},
		Facets: []Facet[domain.Product]{
			{Name: "category", Values: func(p domain.Product) []string { return nonEmpty(p.CategoryName()) }},
			{Name: "brand", Values: func(p domain.Product) []string { return nonEmpty(p.BrandName()) }},
			{Name: "skin_type", Values: func(p domain.Product) []string { return p.SkinTypes }},
		},
		Ranges: []RangeField[domain.Product]{
			{Name: "price", Value: func(p domain.Product) (float64, bool) { return p.FinalPrice(), true }},
			{Name: "stock", Value: func(p domain.Product) (float64, bool) { return float64(p.StockQuantity), true }},
			{Name: "review_rating", Value: func(p domain.Product) (float64, bool) {
				return p.AverageRating(), len(p.Reviews) > 0
			}},
		},
		Flags: []Flag[domain.Product]{
			{Name: "in_stock", Get: domain.Product.InStock},
			{Name: "on_sale", Get: domain.Product.OnSale},
			{
				Name: "favorite",
				Get:  func(p domain.Product) bool { return p.Favorite },
				Set:  func(p domain.Product, v bool) domain.Product { p.Favorite = v; return p },
			},
		},
		SortKeys: []SortKey[domain.Product]{
			{Name: "name", Text: func(p domain.Product) string { return p.Name }},
			{Name: "price", Number: domain.Product.FinalPrice},
			{Name: "review_rating", Number: domain.Product.AverageRating},
			{Name: "discount", Number: func(p domain.Product) float64 { return float64(p.DiscountPercent()) }},
		},
		Mean:        "price",
		DefaultSort: SortSpec{Key: "name", Direction: Asc},
		Language:    language.French,
	}
}
