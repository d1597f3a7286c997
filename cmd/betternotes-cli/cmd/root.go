package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"betternotes/internal/bootstrap"
	"betternotes/internal/config"
	"betternotes/internal/logging"
)

var (
	cfg       = config.Load()
	dataDir   string
	storeKind string
	app       *bootstrap.App
)

var rootCmd = &cobra.Command{
	Use:   "betternotes-cli",
	Short: "CLI for managing BetterNotes sections and notes",
	Long: `betternotes-cli is a command-line interface for a BetterNotes notebook:
notes organized into named, collapsible sections with optional icons.

It shares its store with the betternotes TUI and the betternotes-mcp server.
Sections and notes can be referred to by ID or by name; "unassigned" names
the unassigned notes section.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg.SetDataDir(dataDir)
		cfg.Store = storeKind

		logger := logging.New(logging.Options{
			FilePath: cfg.LogFile,
			Console:  cfg.IsDevelopment(),
			Debug:    cfg.IsDevelopment(),
		}).Named("cli")

		var err error
		app, err = bootstrap.Open(cfg, logger)
		if err != nil {
			return err
		}
		if warning := bootstrap.LoadWarning(app.Report); warning != "" {
			fmt.Fprintln(os.Stderr, "warning: "+warning)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command and closes the app afterwards. Cobra skips
// post-run hooks when a command fails, so closing happens here.
func run() error {
	err := rootCmd.Execute()
	if app != nil {
		err = errors.Join(err, app.Close())
		app = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", cfg.DataDir, "directory holding the notebook store")
	rootCmd.PersistentFlags().StringVarP(&storeKind, "store", "s", cfg.Store, "store backend: sqlite, file or memory")
}

// GetApp returns the wired application
func GetApp() *bootstrap.App {
	return app
}
