package cli

import (
	"fmt"
	"strconv"

	"github.com/mmcdole/kiosk/internal/domain"
	"github.com/spf13/cobra"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <kind> <id> <flag>",
		Short:   "Flip a flag on one item",
		Long:    `Flips a settable flag (watchlist and watched for movies, favorite for products) and remembers it across runs.`,
		Example: "  kiosk toggle movies 3 watchlist",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			item, ok, err := c.Toggle(args[1], args[2])
			if err != nil {
				return err
			}
			if !ok {
				printMissing(cmd, args[1])
				return nil
			}
			cmd.Println(flagStatus(args[2], c.UserState(item).Flags[args[2]]) + " " +
				TitleStyle.Render(item.GetTitle()) + " " + badges(item))
			return nil
		},
	}
}

func newRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rate <kind> <id> <rating>",
		Short:   "Set your rating of one item",
		Example: "  kiosk rate movies 7 5",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidRating, args[2])
			}
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			item, ok, err := c.Rate(args[1], rating)
			if err != nil {
				return err
			}
			if !ok {
				printMissing(cmd, args[1])
				return nil
			}
			cmd.Println(TitleStyle.Render(item.GetTitle()) + " " + badges(item))
			return nil
		},
	}
}

func newUnrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unrate <kind> <id>",
		Short: "Clear your rating of one item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			item, ok, err := c.Unrate(args[1])
			if err != nil {
				return err
			}
			if !ok {
				printMissing(cmd, args[1])
				return nil
			}
			cmd.Println(TitleStyle.Render(item.GetTitle()) + DimStyle.Render(" · not rated"))
			return nil
		},
	}
}

// flagStatus renders a flag's new value, "watchlist on" or "watchlist off"
func flagStatus(flag string, on bool) string {
	if on {
		return SuccessStyle.Render(fmt.Sprintf("%s %s on", WatchedChar, flag))
	}
	return DimStyle.Render(flag + " off")
}

// printMissing reports an unknown id. Nothing changed, so it is not an error.
func printMissing(cmd *cobra.Command, id string) {
	cmd.Println(DimStyle.Render(fmt.Sprintf("No item with id %q, nothing changed.", id)))
}
