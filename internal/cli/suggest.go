package cli

import (
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "suggest <kind> <query>",
		Short: "Suggest titles for a partial query",
		Long: `Ranks item titles whose characters contain the query in order, best
match first, for type-ahead completion.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			suggestions := c.Suggest(args[1], limit)
			if asJSON {
				return printJSON(cmd, suggestions)
			}
			if len(suggestions) == 0 {
				cmd.Println(DimStyle.Render("No suggestions."))
				return nil
			}
			for _, s := range suggestions {
				cmd.Println("  " + highlight(s))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of suggestions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output suggestions as JSON")
	return cmd
}
