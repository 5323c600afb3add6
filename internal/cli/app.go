package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/kiosk/internal/adapter"
	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/mmcdole/kiosk/internal/library"
	"github.com/mmcdole/kiosk/internal/loader"
	"github.com/mmcdole/kiosk/internal/search"
	"github.com/mmcdole/kiosk/internal/store"
)

// App holds the catalogs commands operate on. Catalogs are loaded on first use.
type App struct {
	logger     *slog.Logger
	searchMode search.Mode
	catalogs   map[domain.Kind]library.Catalog
	loaded     map[domain.Kind]bool
	closers    []io.Closer
}

// NewApp creates an App over prebuilt catalogs
func NewApp(logger *slog.Logger, catalogs ...library.Catalog) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		logger:     logger,
		searchMode: search.ModeSubstring,
		catalogs:   make(map[domain.Kind]library.Catalog, len(catalogs)),
		loaded:     make(map[domain.Kind]bool),
	}
	for _, c := range catalogs {
		a.catalogs[c.Kind()] = c
	}
	return a
}

func (a *App) ready() bool { return len(a.catalogs) > 0 }

// setup builds catalogs, store and logger from the configuration file
func (a *App) setup(configPath string, verbose bool, stderr io.Writer) error {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, closer = adapter.NullLogger(), nil
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	if verbose {
		logger = adapter.VerboseLogger(stderr)
	}
	slog.SetDefault(logger)
	a.logger = logger

	st, err := store.NewStateStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	a.closers = append(a.closers, st)

	movies, products, err := descriptors(cfg)
	if err != nil {
		return err
	}
	mode, _ := search.ParseMode(cfg.Catalog.SearchMode)
	a.searchMode = mode

	movieSvc, err := library.NewService(movies, loader.Movies(cfg.Catalog.MoviesFile), st, logger, cfg.Catalog.CacheSize)
	if err != nil {
		return err
	}
	productSvc, err := library.NewService(products, loader.Products(cfg.Catalog.ProductsFile), st, logger, cfg.Catalog.CacheSize)
	if err != nil {
		return err
	}

	a.catalogs = map[domain.Kind]library.Catalog{
		domain.KindMovies:   library.Erase(movieSvc),
		domain.KindProducts: library.Erase(productSvc),
	}
	a.loaded = make(map[domain.Kind]bool)
	logger.Debug("catalogs configured", "store", cfg.Store.Path, "locale", cfg.Catalog.Locale)
	return nil
}

// descriptors applies the catalog settings to the built-in descriptors
func descriptors(cfg *adapter.Config) (*catalog.Descriptor[domain.Movie], *catalog.Descriptor[domain.Product], error) {
	tag, err := cfg.Catalog.Language()
	if err != nil {
		return nil, nil, err
	}
	movieSort, err := catalog.ParseSortSpec(cfg.Catalog.MoviesSort)
	if err != nil {
		return nil, nil, err
	}
	productSort, err := catalog.ParseSortSpec(cfg.Catalog.ProductsSort)
	if err != nil {
		return nil, nil, err
	}

	movies := catalog.Movies().
		WithLanguage(tag).
		WithRatingScale(cfg.Catalog.Rating.Min, cfg.Catalog.Rating.Max)
	if movieSort.Key != "" {
		movies = movies.WithDefaultSort(movieSort)
	}
	products := catalog.Products().WithLanguage(tag)
	if productSort.Key != "" {
		products = products.WithDefaultSort(productSort)
	}
	return movies, products, nil
}

// Catalog resolves a kind argument ("movies", "shop", ...) and loads the
// catalog on first use
func (a *App) Catalog(ctx context.Context, arg string) (library.Catalog, error) {
	kind, err := domain.ParseKind(arg)
	if err != nil {
		return nil, err
	}
	c, ok := a.catalogs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not configured", domain.ErrUnknownKind, kind)
	}
	if !a.loaded[kind] {
		if _, err := c.Load(ctx); err != nil {
			return nil, err
		}
		a.loaded[kind] = true
	}
	return c, nil
}

// Close releases the store and log file
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
