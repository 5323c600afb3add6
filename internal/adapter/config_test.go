package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  movies_file: /data/films.yaml
  locale: en
  search_mode: fuzzy
  rating:
    max: 10
store:
  path: ""
logging:
  level: debug
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/films.yaml", cfg.Catalog.MoviesFile)
	assert.Equal(t, "fuzzy", cfg.Catalog.SearchMode)
	assert.Equal(t, RatingConfig{Min: 1, Max: 10}, cfg.Catalog.Rating, "unset keys keep defaults")
	assert.Equal(t, "rating:desc", cfg.Catalog.MoviesSort)
	assert.Equal(t, "", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)

	tag, err := cfg.Catalog.Language()
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog:\n  cache_size: 8\n"), 0o644))
	t.Setenv("KIOSK_CATALOG_CACHE_SIZE", "128")
	t.Setenv("KIOSK_STORE_PATH", "/tmp/kiosk-state.db")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Catalog.CacheSize)
	assert.Equal(t, "/tmp/kiosk-state.db", cfg.Store.Path)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  path: ~/kiosk/state.db\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "kiosk", "state.db"), cfg.Store.Path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad locale", func(c *Config) { c.Catalog.Locale = "not a locale!" }},
		{"bad search mode", func(c *Config) { c.Catalog.SearchMode = "regex" }},
		{"empty rating scale", func(c *Config) { c.Catalog.Rating = RatingConfig{Min: 5, Max: 1} }},
		{"bad sort direction", func(c *Config) { c.Catalog.MoviesSort = "year:sideways" }},
		{"unknown movies sort key", func(c *Config) { c.Catalog.MoviesSort = "price" }},
		{"unknown products sort key", func(c *Config) { c.Catalog.ProductsSort = "year:desc" }},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := DefaultConfig()
	want.Catalog.ProductsFile = "/data/shop.json"
	want.Catalog.Rating.Max = 10
	want.Logging.Level = "WARN"

	require.NoError(t, SaveConfig(want, path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
