package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/shopctl/internal/config"
	"github.com/dmitrijs2005/shopctl/internal/logging"
)

// RootOptions holds the global flags shared by all commands.
type RootOptions struct {
	ConfigPath  string
	Database    string
	SessionFile string
	Verbose     bool
}

// NewRootCommand creates the root command for the shopctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	app := &App{}

	cmd := &cobra.Command{
		Use:          "shopctl",
		Short:        "Shop CLI",
		Long:         "Command-line shop: log in, browse products and manage your cart.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			// flags override whatever the JSON file said
			if cmd.Flags().Changed("database") {
				cfg.DatabasePath = opts.Database
			}
			if cmd.Flags().Changed("session-file") {
				cfg.SessionFilePath = opts.SessionFile
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = opts.Verbose
			}

			app.cfg = cfg
			app.log = logging.NewTextLogger(cmd.ErrOrStderr(), cfg.Verbose).
				With("invocation_id", uuid.NewString())
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Database, "database", "d", "", "path to the shop database")
	cmd.PersistentFlags().StringVar(&opts.SessionFile, "session-file", "", "path to the local session token file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewAuthCommand(app))
	cmd.AddCommand(NewProductsCommand(app))
	cmd.AddCommand(NewCartCommand(app))
	cmd.AddCommand(NewInitCommand(app))

	return cmd
}
