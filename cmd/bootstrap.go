package cmd

import (
	"context"
	"fmt"

	"potion-stacker/core/config"
	"potion-stacker/core/database"
	"potion-stacker/core/loader"
	"potion-stacker/core/logger"
	"potion-stacker/core/metrics"
	"potion-stacker/core/settings"
	"potion-stacker/core/storage"
	"potion-stacker/feature/stacker"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles what every subcommand needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   settings.Store
	db      *gorm.DB
	feature *stacker.Feature
}

// openStore builds the settings store selected by cfg.Settings.Backend.
// db is only set for the database backend.
func openStore(ctx context.Context, cfg *config.Config) (settings.Store, *gorm.DB, error) {
	switch cfg.Settings.Backend {
	case settings.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection required: %w", err)
		}
		store := settings.NewDBStore(db, cfg.Settings.Table)
		if err := store.Migrate(ctx); err != nil {
			return nil, nil, err
		}
		return store, db, nil

	case settings.BackendObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return settings.NewObjectStore(client, cfg.Storage.Bucket, cfg.Settings.Object), nil, nil

	default:
		return settings.NewFileStore(cfg.Settings.File), nil, nil
	}
}

// bootstrap loads configuration, opens the settings store and enables the stacker.
// With override set, the stacker runs on an in-memory store seeded with it.
func bootstrap(ctx context.Context, override *settings.Values) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logg}
	if override != nil {
		a.store = settings.NewMemoryStore(*override)
		logg = logg.With(zap.String("backend", "memory"))
	} else {
		a.store, a.db, err = openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logg = logg.With(zap.String("backend", cfg.Settings.Backend))
	}

	a.feature = stacker.NewFeature(a.store, logg, metrics.NewRecorder())

	mgr := loader.NewManager()
	mgr.Register(a.feature)
	if err := mgr.LoadAll(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
