package cli

import (
	"github.com/spf13/cobra"

	"github.com/pmakowski/twinsight/internal/config"
	"github.com/pmakowski/twinsight/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Monitor   service.MonitorService
	Import    service.ImportService
	Lifecycle service.LifecycleService

	Config config.Config

	// IsInteractive reports whether stdin is attached to a terminal;
	// non-interactive invocations skip confirmation prompts.
	IsInteractive func() bool

	// Connect opens the store at the given path and wires the services.
	// Called once before any subcommand runs, after flags are parsed so
	// --db can override the configured path.
	Connect func(dbPath string) error
}

// NewRootCmd creates the top-level "twinsight" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var dbPath string

	root := &cobra.Command{
		Use:   "twinsight",
		Short: "Construction progress monitoring against a digital-twin graph",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Connect == nil {
				return nil
			}
			path := app.Config.DBPath
			if dbPath != "" {
				path = dbPath
			}
			return app.Connect(path)
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the twinsight database (default from config)")

	root.AddCommand(
		newProgressCmd(app),
		newWatchCmd(app),
		newImportCmd(app),
		newIngestCmd(app),
		newPruneCmd(app),
	)

	return root
}
