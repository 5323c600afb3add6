package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Show every detail of one item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			item, ok := c.Get(args[1])
			if !ok {
				return fmt.Errorf("%w: %s %q", domain.ErrItemNotFound, c.Kind(), args[1])
			}
			if asJSON {
				return printJSON(cmd, item)
			}
			cmd.Println(HeaderStyle.Render(item.GetTitle()) + " " + badges(item))
			for _, row := range details(item) {
				if row[1] == "" {
					continue
				}
				cmd.Printf("  %-12s %s\n", row[0], row[1])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the item as JSON")
	return cmd
}

// details lists label/value pairs for the item's detail card
func details(item domain.Item) [][2]string {
	switch v := item.(type) {
	case domain.Movie:
		rating := ""
		if v.UserRating != nil {
			rating = strings.Repeat(StarChar, *v.UserRating)
		}
		return [][2]string{
			{"original", v.OriginalTitle},
			{"year", strconv.Itoa(v.Year)},
			{"runtime", v.FormattedDuration()},
			{"rating", fmt.Sprintf("%.1f/10", v.Rating)},
			{"genres", strings.Join(v.Genres, ", ")},
			{"director", v.Director},
			{"cast", strings.Join(v.Cast, ", ")},
			{"language", v.Language},
			{"released", v.ReleaseDate},
			{"your rating", rating},
			{"overview", v.Overview},
		}
	case domain.Product:
		price := fmt.Sprintf("%.2f€", v.FinalPrice())
		if v.OnSale() {
			price += DimStyle.Render(fmt.Sprintf(" (%.2f€)", v.Price))
		}
		reviews := ""
		if n := len(v.Reviews); n > 0 {
			reviews = fmt.Sprintf("%.1f/5 from %d", v.AverageRating(), n)
		}
		return [][2]string{
			{"brand", v.BrandName()},
			{"category", v.CategoryName()},
			{"price", price},
			{"stock", strconv.Itoa(v.StockQuantity)},
			{"sku", v.SKU},
			{"skin types", strings.Join(v.SkinTypes, ", ")},
			{"ingredients", v.Ingredients},
			{"reviews", reviews},
			{"description", v.Description},
		}
	}
	return nil
}
