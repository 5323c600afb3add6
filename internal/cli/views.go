package cli

import (
	"github.com/spf13/cobra"
)

func newViewsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views <kind>",
		Short: "List saved views",
		Long: `Lists the filter combinations saved with "list --save-view".
Use "list --view <name>" to apply one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			names, err := c.Views()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				cmd.Println(DimStyle.Render("No saved views."))
				return nil
			}
			for _, name := range names {
				cmd.Println("  " + name)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <kind> <name>",
		Short: "Print a saved view as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cfg, err := c.View(args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, cfg)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <kind> <name>",
		Short: "Delete a saved view",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := c.DeleteView(args[1]); err != nil {
				return err
			}
			cmd.Println(SuccessStyle.Render("Deleted view " + args[1]))
			return nil
		},
	}

	cmd.AddCommand(showCmd, deleteCmd)
	return cmd
}
