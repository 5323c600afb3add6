package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var (
		asJSON bool
		top    int
	)
	cmd := &cobra.Command{
		Use:   "stats <kind>",
		Short: "Summarize a catalog",
		Long: `Shows the item count, how many items carry each flag, the mean of the
catalog's headline number (community rating for movies, price for products),
user rating totals and the most common facet values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s := c.Stats()
			if asJSON {
				return printJSON(cmd, s)
			}

			cmd.Println(HeaderStyle.Render(fmt.Sprintf("%s · %d items", c.Kind(), s.Total)))
			if s.MeanField != "" {
				cmd.Printf("  %-14s %.1f\n", "mean "+s.MeanField, s.Mean)
			}
			if schema := c.Schema(); schema.RatingMax > 0 {
				cmd.Printf("  %-14s %d (mean %.1f / %d)\n", "rated", s.Rated, s.MeanUserRating, schema.RatingMax)
			}

			cmd.Println()
			cmd.Println(SubtitleStyle.Render("Flags"))
			for _, name := range sortedKeys(s.Flags) {
				cmd.Printf("  %-14s %d\n", name, s.Flags[name])
			}

			cmd.Println()
			cmd.Println(SubtitleStyle.Render("Ranges"))
			for _, name := range sortedKeys(s.Bounds) {
				b := s.Bounds[name]
				cmd.Printf("  %-14s %s – %s\n", name, formatNumber(b.Min), formatNumber(b.Max))
			}

			for _, name := range sortedKeys(s.Facets) {
				cmd.Println()
				cmd.Println(SubtitleStyle.Render("Top " + name))
				for _, vc := range topValues(s.Facets[name], top) {
					cmd.Printf("  %-24s %d\n", vc.Value, vc.Count)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output statistics as JSON")
	cmd.Flags().IntVar(&top, "top", 5, "facet values to show per facet (0 for all)")
	return cmd
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
