package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"betternotes/internal/adapters/editor"
	"betternotes/internal/adapters/tui"
	"betternotes/internal/bootstrap"
	"betternotes/internal/config"
	"betternotes/internal/logging"
)

func main() {
	cfg := config.Load()
	dataDirFlag := flag.String("data-dir", cfg.DataDir, "directory holding the notebook store")
	storeFlag := flag.String("store", cfg.Store, "store backend: sqlite, file or memory")
	flag.Parse()

	cfg.SetDataDir(*dataDirFlag)
	cfg.Store = *storeFlag

	// the alternate screen owns the terminal, so logs only go to the file
	logger := logging.NewIsolated(cfg.LogFile).Named("tui")

	app, err := bootstrap.Open(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewApp(app.Notebook, app.Icons, editor.NewEditor(), logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	app.Notebook.SetRedrawer(tui.Redrawer(p.Send))

	_, runErr := p.Run()

	if err := app.Close(); err != nil {
		logger.Error("failed to close notebook", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	if warning := bootstrap.LoadWarning(app.Report); warning != "" {
		fmt.Fprintln(os.Stderr, "warning: "+warning)
	}
}
