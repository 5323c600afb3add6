package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/mmcdole/kiosk/internal/search"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds dataset and engine settings
type CatalogConfig struct {
	MoviesFile   string       `mapstructure:"movies_file"`   // Empty uses the built-in sample
	ProductsFile string       `mapstructure:"products_file"` // Empty uses the built-in sample
	Locale       string       `mapstructure:"locale"`        // BCP 47 tag used to collate titles
	SearchMode   string       `mapstructure:"search_mode"`   // "substring" or "fuzzy"
	CacheSize    int          `mapstructure:"cache_size"`
	Rating       RatingConfig `mapstructure:"rating"`
	MoviesSort   string       `mapstructure:"movies_sort"`   // e.g. "rating:desc"
	ProductsSort string       `mapstructure:"products_sort"` // e.g. "name:asc"
}

// RatingConfig is the closed user rating scale
type RatingConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// StoreConfig holds user state persistence settings
type StoreConfig struct {
	Path string `mapstructure:"path"` // Empty keeps state in memory
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Locale:       "fr",
			SearchMode:   string(search.ModeSubstring),
			CacheSize:    64,
			Rating:       RatingConfig{Min: 1, Max: 5},
			MoviesSort:   "rating:desc",
			ProductsSort: "name:asc",
		},
		Store: StoreConfig{
			Path: defaultStatePath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultDataDir returns the per-user data directory for the current OS
func defaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "kiosk")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "kiosk")
	}
}

func defaultLogPath() string   { return filepath.Join(defaultDataDir(), "kiosk.log") }
func defaultStatePath() string { return filepath.Join(defaultDataDir(), "state.db") }

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "kiosk")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "kiosk")
	}
}

// LoadConfig loads configuration from file and environment. An empty path
// searches the default config directory and the working directory; a missing
// file there is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newViper returns a viper instance seeded with cfg's values as defaults, so
// every key is known to environment lookup (KIOSK_STORE_PATH, ...)
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range cfg.settings() {
		v.SetDefault(key, value)
	}
	return v
}

// settings flattens cfg into viper keys (snake_case)
func (c *Config) settings() map[string]any {
	return map[string]any{
		"catalog.movies_file":   c.Catalog.MoviesFile,
		"catalog.products_file": c.Catalog.ProductsFile,
		"catalog.locale":        c.Catalog.Locale,
		"catalog.search_mode":   c.Catalog.SearchMode,
		"catalog.cache_size":    c.Catalog.CacheSize,
		"catalog.rating.min":    c.Catalog.Rating.Min,
		"catalog.rating.max":    c.Catalog.Rating.Max,
		"catalog.movies_sort":   c.Catalog.MoviesSort,
		"catalog.products_sort": c.Catalog.ProductsSort,
		"store.path":            c.Store.Path,
		"logging.file":          c.Logging.File,
		"logging.level":         c.Logging.Level,
	}
}

// SaveConfig writes cfg as YAML to path, creating its directory
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	for key, value := range cfg.settings() {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values the engine would otherwise reject later
func (c *Config) Validate() error {
	if _, err := c.Catalog.Language(); err != nil {
		return err
	}
	if _, err := search.ParseMode(c.Catalog.SearchMode); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if c.Catalog.Rating.Min > c.Catalog.Rating.Max {
		return fmt.Errorf("%w: rating scale [%d, %d] is empty", domain.ErrInvalidConfig, c.Catalog.Rating.Min, c.Catalog.Rating.Max)
	}
	if err := validateSort(catalog.Movies(), c.Catalog.MoviesSort); err != nil {
		return fmt.Errorf("movies_sort: %w", err)
	}
	if err := validateSort(catalog.Products(), c.Catalog.ProductsSort); err != nil {
		return fmt.Errorf("products_sort: %w", err)
	}
	return nil
}

// validateSort checks that s parses and names one of d's sort keys
func validateSort[T any](d *catalog.Descriptor[T], s string) error {
	spec, err := catalog.ParseSortSpec(s)
	if err != nil {
		return err
	}
	return catalog.Validate(d, catalog.Config{Sort: spec})
}

// Language parses the collation locale
func (c CatalogConfig) Language() (language.Tag, error) {
	if c.Locale == "" {
		return language.French, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q: %v", domain.ErrInvalidConfig, c.Locale, err)
	}
	return tag, nil
}

func (c *Config) expandPaths() {
	c.Catalog.MoviesFile = expandHome(c.Catalog.MoviesFile)
	c.Catalog.ProductsFile = expandHome(c.Catalog.ProductsFile)
	c.Store.Path = expandHome(c.Store.Path)
	c.Logging.File = expandHome(c.Logging.File)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
