package cli

import (
	"github.com/mmcdole/kiosk/internal/catalog"
	"github.com/mmcdole/kiosk/internal/library"
	"github.com/mmcdole/kiosk/internal/search"
	"github.com/spf13/cobra"
)

type listOptions struct {
	search   string
	fuzzy    bool
	facets   []string
	ranges   []string
	only     []string
	sort     string
	order    string
	view     string
	saveView string
	limit    int
	json     bool
}

func newListCmd(app *App) *cobra.Command {
	opts := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List catalog items matching filters",
		Long: `Lists items of a catalog (movies or products) after applying the search
term, facet selections, numeric ranges and flag toggles, sorted by the chosen key.

Facet values selected for the same facet are alternatives; everything else
must hold at once. A saved view supplies the starting filters, which other
flags then adjust.`,
		Example: `  kiosk list movies --facet genre=Crime --range year=1970:2000
  kiosk list movies --only watchlist --sort title
  kiosk list products --range price=:30 --only in_stock --sort price:asc
  kiosk list movies --search nolan --save-view nolan`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.search, "search", "s", "", "search term matched against text fields and facet values")
	f.BoolVar(&opts.fuzzy, "fuzzy", false, "accent-insensitive fuzzy matching for --search")
	f.StringArrayVarP(&opts.facets, "facet", "f", nil, "facet selection name=value (repeatable)")
	f.StringArrayVarP(&opts.ranges, "range", "r", nil, "numeric range name=min:max, either side optional (repeatable)")
	f.StringArrayVar(&opts.only, "only", nil, "only items with this flag set (repeatable)")
	f.StringVar(&opts.sort, "sort", "", "sort key, optionally key:asc or key:desc")
	f.StringVar(&opts.order, "order", "", "sort direction, asc or desc")
	f.StringVar(&opts.view, "view", "", "start from a saved view")
	f.StringVar(&opts.saveView, "save-view", "", "save the resulting filters under this name")
	f.IntVarP(&opts.limit, "limit", "n", 0, "maximum number of items to show (0 for all)")
	f.BoolVar(&opts.json, "json", false, "output items as JSON")
	return cmd
}

func runList(cmd *cobra.Command, app *App, kind string, opts *listOptions) error {
	c, err := app.Catalog(cmd.Context(), kind)
	if err != nil {
		return err
	}

	cfg, err := listConfig(cmd, app, c, opts)
	if err != nil {
		return err
	}

	if opts.saveView != "" {
		if err := c.SaveView(opts.saveView, cfg); err != nil {
			return err
		}
	}

	items, err := c.List(cfg)
	if err != nil {
		return err
	}
	total := c.Stats().Total
	shown := items
	if opts.limit > 0 && len(shown) > opts.limit {
		shown = shown[:opts.limit]
	}

	if opts.json {
		return printJSON(cmd, shown)
	}

	out := cmd.OutOrStdout()
	renderSummary(out, len(items), total, cfg)
	if len(items) == 0 {
		cmd.Println(DimStyle.Render("No items match."))
		return nil
	}
	renderItems(out, shown, terminalWidth(out))
	if opts.saveView != "" {
		cmd.Println(SuccessStyle.Render("Saved view " + opts.saveView))
	}
	return nil
}

// listConfig starts from the saved view or the catalog default and overlays flags
func listConfig(cmd *cobra.Command, app *App, c library.Catalog, opts *listOptions) (catalog.Config, error) {
	cfg := c.DefaultConfig()
	cfg.SearchMode = app.searchMode
	if opts.view != "" {
		v, err := c.View(opts.view)
		if err != nil {
			return catalog.Config{}, err
		}
		cfg = v
	}

	var p catalog.Patch
	if cmd.Flags().Changed("search") {
		p.SearchTerm = &opts.search
	}
	if opts.fuzzy {
		mode := search.ModeFuzzy
		p.SearchMode = &mode
	}

	var err error
	if p.Facets, err = parseFacets(opts.facets); err != nil {
		return catalog.Config{}, err
	}
	if len(opts.ranges) > 0 {
		if p.Ranges, err = parseRanges(opts.ranges, c.Stats().Bounds); err != nil {
			return catalog.Config{}, err
		}
	}
	p.Toggles = parseToggles(opts.only)
	if p.Sort, err = parseSort(opts.sort, opts.order, cfg.Sort); err != nil {
		return catalog.Config{}, err
	}

	return cfg.Merge(p), nil
}
