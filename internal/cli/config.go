package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmcdole/kiosk/internal/adapter"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage the configuration file",
		Annotations: map[string]string{skipSetup: "true"},
	}

	var (
		path  string
		force bool
	)
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a configuration file with default values",
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := adapter.SaveConfig(adapter.DefaultConfig(), path); err != nil {
				return err
			}
			cmd.Println(SuccessStyle.Render("Wrote " + path))
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "file to write (default ~/.config/kiosk/config.yaml)")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
