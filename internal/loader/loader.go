// Package loader reads catalog datasets from JSON or YAML files.
package loader

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/kiosk/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/movies.yaml data/products.yaml
var samples embed.FS

type movieDataset struct {
	Movies []domain.Movie `json:"movies" yaml:"movies"`
}

type productDataset struct {
	Products   []domain.Product  `json:"products" yaml:"products"`
	Brands     []domain.Brand    `json:"brands" yaml:"brands"`
	Categories []domain.Category `json:"categories" yaml:"categories"`
}

// LoadMovies reads a movie dataset from path
func LoadMovies(ctx context.Context, path string) ([]domain.Movie, error) {
	var ds movieDataset
	if err := readFile(ctx, path, &ds); err != nil {
		return nil, err
	}
	return checkMovies(ds.Movies)
}

// LoadProducts reads a product dataset from path, resolving brand and
// category relations and dropping inactive products
func LoadProducts(ctx context.Context, path string) ([]domain.Product, error) {
	var ds productDataset
	if err := readFile(ctx, path, &ds); err != nil {
		return nil, err
	}
	return resolveProducts(ds)
}

// SampleMovies returns the embedded movie dataset
func SampleMovies() ([]domain.Movie, error) {
	var ds movieDataset
	if err := readEmbedded("data/movies.yaml", &ds); err != nil {
		return nil, err
	}
	return checkMovies(ds.Movies)
}

// SampleProducts returns the embedded product dataset
func SampleProducts() ([]domain.Product, error) {
	var ds productDataset
	if err := readEmbedded("data/products.yaml", &ds); err != nil {
		return nil, err
	}
	return resolveProducts(ds)
}

// Movies returns a load function for path, falling back to the embedded
// sample when path is empty
func Movies(path string) func(context.Context) ([]domain.Movie, error) {
	return func(ctx context.Context) ([]domain.Movie, error) {
		if path == "" {
			return SampleMovies()
		}
		return LoadMovies(ctx, path)
	}
}

// Products is Movies for the shop catalog
func Products(path string) func(context.Context) ([]domain.Product, error) {
	return func(ctx context.Context) ([]domain.Product, error) {
		if path == "" {
			return SampleProducts()
		}
		return LoadProducts(ctx, path)
	}
}

func readFile(ctx context.Context, path string, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}
	if err := decode(path, data, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readEmbedded(name string, dest any) error {
	data, err := samples.ReadFile(name)
	if err != nil {
		return err
	}
	return decode(name, data, dest)
}

// decode picks the format from the file extension
func decode(path string, data []byte, dest any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal(data, dest)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, dest)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func checkMovies(movies []domain.Movie) ([]domain.Movie, error) {
	seen := make(map[string]struct{}, len(movies))
	for i, m := range movies {
		if m.ID == "" {
			return nil, fmt.Errorf("movie at index %d has no id", i)
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: movie %q", domain.ErrDuplicateID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return movies, nil
}

func resolveProducts(ds productDataset) ([]domain.Product, error) {
	brands := make(map[string]*domain.Brand, len(ds.Brands))
	for i := range ds.Brands {
		brands[ds.Brands[i].ID] = &ds.Brands[i]
	}
	categories := make(map[string]*domain.Category, len(ds.Categories))
	for i := range ds.Categories {
		categories[ds.Categories[i].ID] = &ds.Categories[i]
	}

	seen := make(map[string]struct{}, len(ds.Products))
	out := make([]domain.Product, 0, len(ds.Products))
	for i, p := range ds.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has no id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: product %q", domain.ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if !p.IsActive {
			continue
		}
		// Unknown ids leave the relation absent
		if p.Brand == nil && p.BrandID != "" {
			p.Brand = brands[p.BrandID]
		}
		if p.Category == nil && p.CategoryID != "" {
			p.Category = categories[p.CategoryID]
		}
		out = append(out, p)
	}
	return out, nil
}
