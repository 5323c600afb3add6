// Package cli implements the kiosk command line.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const skipSetup = "skip-setup"

// Execute runs the kiosk command line
func Execute(version string) error {
	return NewRootCmd(version, nil).Execute()
}

// NewRootCmd builds the command tree. A nil app is configured from the config
// file before any command that needs catalogs runs.
func NewRootCmd(version string, app *App) *cobra.Command {
	if app == nil {
		app = NewApp(nil)
	}
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "kiosk",
		Short: "Browse, filter and rate local catalogs",
		Long: `kiosk lists the movie and product catalogs with search, facet, range
and flag filters, keeps watchlist, favorites and ratings across runs, and
saves filter combinations as named views.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.ready() || cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return app.setup(configPath, verbose, cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.Close()
		},
	}

	root.SetOut(os.Stdout)
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/kiosk/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newListCmd(app),
		newShowCmd(app),
		newStatsCmd(app),
		newToggleCmd(app),
		newRateCmd(app),
		newUnrateCmd(app),
		newSuggestCmd(app),
		newViewsCmd(app),
		newFieldsCmd(app),
		newConfigCmd(),
		newVersionCmd(version),
	)
	return root
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
