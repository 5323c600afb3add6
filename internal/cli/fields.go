package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newFieldsCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "fields <kind>",
		Short: "Show the fields a catalog filters and sorts on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s := c.Schema()
			if asJSON {
				return printJSON(cmd, s)
			}

			row := func(label string, names []string) {
				if len(names) == 0 {
					return
				}
				cmd.Printf("  %-12s %s\n", label, strings.Join(names, ", "))
			}
			cmd.Println(HeaderStyle.Render(string(s.Kind)))
			row("search", s.Text)
			row("facets", s.Facets)
			row("ranges", s.Ranges)
			row("flags", s.Flags)
			row("read-only", s.ReadOnly)
			row("sort keys", s.SortKeys)
			cmd.Printf("  %-12s %s\n", "default", s.Default.String())
			if s.RatingMax > 0 {
				cmd.Printf("  %-12s %d to %d\n", "rating", s.RatingMin, s.RatingMax)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the schema as JSON")
	return cmd
}
