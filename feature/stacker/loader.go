package stacker

import (
	"context"

	"potion-stacker/core/metrics"
	"potion-stacker/core/settings"

	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service  *Service
	commands *Commands
	logger   *zap.Logger
}

// NewFeature creates the stacker feature over store.
func NewFeature(store settings.Store, logger *zap.Logger, recorder *metrics.Recorder) *Feature {
	svc := NewService(store, logger, recorder)
	return &Feature{
		service:  svc,
		commands: NewCommands(svc, logger),
		logger:   logger,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "stacker"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load reads the settings (creating defaults on first run) and activates them.
func (f *Feature) Load(ctx context.Context) error {
	if err := f.service.Reload(ctx); err != nil {
		return err
	}
	f.logger.Info("PotionStacker enabled!")
	return nil
}

// Service returns the event-handling service.
func (f *Feature) Service() *Service {
	return f.service
}

// Commands returns the command surface.
func (f *Feature) Commands() *Commands {
	return f.commands
}
