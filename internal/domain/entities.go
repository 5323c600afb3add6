package domain

import (
	"fmt"
	"strconv"
)

// Item is implemented by every record the catalog can list
type Item interface {
	GetID() string
	GetTitle() string
	GetDescription() string
}

// Movie is an entry of the movie tracker catalog
type Movie struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	OriginalTitle string   `json:"original_title" yaml:"original_title"`
	Year          int      `json:"year" yaml:"year"`
	Genres        []string `json:"genres" yaml:"genres"`
	Director      string   `json:"director" yaml:"director"`
	Cast          []string `json:"cast" yaml:"cast"`
	Duration      int      `json:"duration" yaml:"duration"` // Minutes
	Rating        float64  `json:"rating" yaml:"rating"`     // Community rating, 0-10
	Overview      string   `json:"overview" yaml:"overview"`
	ReleaseDate   string   `json:"release_date" yaml:"release_date"`
	Language      string   `json:"language" yaml:"language"`
	Budget        int64    `json:"budget" yaml:"budget"`
	Revenue       int64    `json:"revenue" yaml:"revenue"`

	// User state
	UserRating *int `json:"user_rating,omitempty" yaml:"user_rating,omitempty"`
	Watchlist  bool `json:"watchlist" yaml:"watchlist"`
	Watched    bool `json:"watched" yaml:"watched"`
}

// FormattedDuration returns the runtime as "2h 55min"
func (m Movie) FormattedDuration() string {
	h := m.Duration / 60
	mins := m.Duration % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dmin", h, mins)
	}
	return fmt.Sprintf("%dmin", mins)
}

func (m Movie) GetID() string    { return m.ID }
func (m Movie) GetTitle() string { return m.Title }

func (m Movie) GetDescription() string {
	if m.Year > 0 {
		return strconv.Itoa(m.Year) + " · " + m.FormattedDuration()
	}
	return m.FormattedDuration()
}

// Brand is an optional relation of a product
type Brand struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`
}

// Category is an optional relation of a product
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Review is a customer review attached to a product
type Review struct {
	ID      string `json:"id" yaml:"id"`
	UserID  string `json:"user_id" yaml:"user_id"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Product is an entry of the shop catalog.
// Brand and Category are nil when the relation is absent.
type Product struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Description   string    `json:"description" yaml:"description"`
	Price         float64   `json:"price" yaml:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty" yaml:"discount_price,omitempty"`
	BrandID       string    `json:"brand_id" yaml:"brand_id"`
	CategoryID    string    `json:"category_id" yaml:"category_id"`
	SKU           string    `json:"sku,omitempty" yaml:"sku,omitempty"`
	StockQuantity int       `json:"stock_quantity" yaml:"stock_quantity"`
	SkinTypes     []string  `json:"skin_type,omitempty" yaml:"skin_type,omitempty"`
	Ingredients   string    `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	IsActive      bool      `json:"is_active" yaml:"is_active"`
	Brand         *Brand    `json:"brand,omitempty" yaml:"brand,omitempty"`
	Category      *Category `json:"category,omitempty" yaml:"category,omitempty"`
	Reviews       []Review  `json:"reviews,omitempty" yaml:"reviews,omitempty"`

	// User state
	Favorite bool `json:"favorite" yaml:"favorite"`
}

// FinalPrice returns the discount price when one is set, otherwise the list price
func (p Product) FinalPrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice != 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

// OnSale reports whether the discount price undercuts the list price
func (p Product) OnSale() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice != 0 && *p.DiscountPrice < p.Price
}

// InStock reports whether at least one unit is available
func (p Product) InStock() bool { return p.StockQuantity > 0 }

// DiscountPercent returns the rounded discount percentage, 0 when not on sale
func (p Product) DiscountPercent() int {
	if !p.OnSale() || p.Price == 0 {
		return 0
	}
	return int((p.Price-*p.DiscountPrice)/p.Price*100 + 0.5)
}

// AverageRating returns the mean review rating, 0 without reviews
func (p Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}

// BrandName returns the brand name or "" when the relation is absent
func (p Product) BrandName() string {
	if p.Brand == nil {
		return ""
	}
	return p.Brand.Name
}

// CategoryName returns the category name or "" when the relation is absent
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func (p Product) GetID() string    { return p.ID }
func (p Product) GetTitle() string { return p.Name }

func (p Product) GetDescription() string {
	price := fmt.Sprintf("%.2f€", p.FinalPrice())
	if p.Brand != nil {
		return p.Brand.Name + " · " + price
	}
	return price
}

// UserState is the per-item state owned by the user rather than the dataset
type UserState struct {
	Flags  map[string]bool `json:"flags,omitempty"`
	Rating *int            `json:"rating,omitempty"`
}

// Equal reports whether s and o record the same flags and rating
func (s UserState) Equal(o UserState) bool {
	if len(s.Flags) != len(o.Flags) {
		return false
	}
	for k, v := range s.Flags {
		if ov, ok := o.Flags[k]; !ok || ov != v {
			return false
		}
	}
	switch {
	case s.Rating == nil || o.Rating == nil:
		return s.Rating == nil && o.Rating == nil
	default:
		return *s.Rating == *o.Rating
	}
}
