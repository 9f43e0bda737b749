package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command: drop and recreate the shop
// database with its seed data.
func NewInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create (or reset) the shop database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := os.Remove(app.cfg.DatabasePath); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("remove existing database: %w", err)
				}
			} else {
				app.log.Warn(ctx, "deleted existing database", "path", app.cfg.DatabasePath)
			}

			rt, err := app.open(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized shop database at %s.\n", app.cfg.DatabasePath)
			return nil
		},
	}
}
