package bootstrap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"betternotes/internal/adapters/filesystem"
	"betternotes/internal/adapters/icons"
	"betternotes/internal/adapters/memory"
	"betternotes/internal/adapters/sqlite"
	"betternotes/internal/application"
	"betternotes/internal/config"
	"betternotes/internal/ports"
)

// App bundles the wired notebook and everything that must be closed with it
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    ports.ConfigStore
	Notebook *application.Notebook
	Icons    *icons.Catalog
	Report   application.LoadReport

	closeStore func() error
}

// OpenStore opens the backend selected by cfg.Store
func OpenStore(cfg *config.Config) (ports.ConfigStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreSQLite, "":
		s := sqlite.NewStore()
		if err := s.Open(cfg.DataDir); err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.StoreFile:
		return filesystem.NewStore(cfg.DataDir), noop, nil
	case config.StoreMemory:
		return memory.NewStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (expected %s, %s or %s)",
			cfg.Store, config.StoreSQLite, config.StoreFile, config.StoreMemory)
	}
}

// Open wires the store, icon catalog and notebook, and loads the notebook
func Open(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}

	catalog, err := icons.NewCatalog(cfg.IconCatalog, logger)
	if err != nil {
		// a broken custom catalog should not lock the user out of their notes
		logger.Warn("falling back to the built-in icon catalog", zap.Error(err))
		catalog, _ = icons.NewCatalog("", logger)
	}

	nb := application.NewNotebook(store, application.Options{
		Group:    config.Group,
		Debounce: cfg.Debounce,
		Logger:   logger,
	})
	report := nb.Load()

	logger.Info("notebook opened",
		zap.String("store", cfg.Store),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("clean_load", report.OK()),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Store:      store,
		Notebook:   nb,
		Icons:      catalog,
		Report:     report,
		closeStore: closeStore,
	}, nil
}

// Close flushes pending edits and closes the store
func (a *App) Close() error {
	err := a.Notebook.Close()
	if cerr := a.closeStore(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	_ = a.Logger.Sync()
	return err
}

// LoadWarning describes what a load had to give up on, or "" for a clean load
func LoadWarning(r application.LoadReport) string {
	switch {
	case r.ReadErr != nil:
		return "the stored notebook could not be read; changes will not be saved until it can (see the log)"
	case !r.OK():
		return "some stored notes could not be read and were reset (see the log)"
	}
	return ""
}
