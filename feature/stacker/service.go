package stacker

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"potion-stacker/core/logger"
	"potion-stacker/core/metrics"
	"potion-stacker/core/settings"
	"potion-stacker/core/stacking"

	"go.uber.org/zap"
)

// Service applies stacking decisions to host events and manages settings.
type Service struct {
	store   settings.Store
	holder  *stacking.Holder
	logger  *zap.Logger
	metrics *metrics.Recorder

	// mu serializes read-modify-write cycles on the store.
	mu sync.Mutex
}

// NewService creates a stacker service. Call Reload before handling events.
func NewService(store settings.Store, logger *zap.Logger, recorder *metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	return &Service{
		store:   store,
		holder:  &stacking.Holder{},
		logger:  logger,
		metrics: recorder,
	}
}

// Snapshot returns the active settings snapshot.
func (s *Service) Snapshot() *stacking.Snapshot {
	return s.holder.Load()
}

// Metrics returns the outcome recorder.
func (s *Service) Metrics() *metrics.Recorder {
	return s.metrics
}

// Reload reads the store and swaps in a new snapshot.
// On error the previous snapshot stays active.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

func (s *Service) reloadLocked(ctx context.Context) error {
	values, err := s.store.Load(ctx)
	s.metrics.Reload(err)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	snap := stacking.NewSnapshot(values.StackSize, values.EnabledPotions, values.UseCustomEffects, values.AllowedEffects)
	s.holder.Store(snap)

	s.logger.Info("Settings applied",
		zap.Int("max_stack_size", snap.MaxStackSize()),
		zap.Strings("enabled_potions", snap.EnabledKinds()),
		zap.Bool("use_custom_effects", snap.UseEffectFilter()),
		zap.Strings("allowed_effects", snap.AllowedEffects()),
	)
	return nil
}

// update runs mutate over the stored values, saves them and reloads.
// mutate returns false to leave the store untouched.
func (s *Service) update(ctx context.Context, mutate func(*settings.Values) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	if !mutate(&values) {
		return false, nil
	}
	if err := s.store.Save(ctx, values); err != nil {
		return false, fmt.Errorf("failed to save settings: %w", err)
	}
	return true, s.reloadLocked(ctx)
}

// SetStack stores a new per-stack capacity. size must be positive.
func (s *Service) SetStack(ctx context.Context, size int) error {
	if size <= 0 {
		return fmt.Errorf("stack size must be positive, got %d", size)
	}
	_, err := s.update(ctx, func(v *settings.Values) bool {
		v.StackSize = size
		return true
	})
	return err
}

// AddEffect whitelists effect. It reports false if the effect was already allowed.
func (s *Service) AddEffect(ctx context.Context, effect string) (bool, error) {
	effect = strings.ToUpper(effect)
	return s.update(ctx, func(v *settings.Values) bool {
		if v.HasEffect(effect) {
			return false
		}
		v.AllowedEffects = append(v.AllowedEffects, effect)
		return true
	})
}

// RemoveEffect drops effect from the whitelist. It reports false if it was not allowed.
func (s *Service) RemoveEffect(ctx context.Context, effect string) (bool, error) {
	effect = strings.ToUpper(effect)
	return s.update(ctx, func(v *settings.Values) bool {
		kept := v.AllowedEffects[:0:0]
		for _, e := range v.AllowedEffects {
			if strings.ToUpper(e) != effect {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(v.AllowedEffects) {
			return false
		}
		v.AllowedEffects = kept
		return true
	})
}

// HandleClick plans the drag-merge described by ev and applies it to ev.
func (s *Service) HandleClick(ev *ClickEvent) stacking.ClickOutcome {
	log := logger.WithEventID(s.logger, logger.NewEventID())

	out := stacking.PlanClick(s.holder.Load(), ev.Current, ev.Cursor)
	s.metrics.Click(string(out.Result))

	switch out.Result {
	case stacking.ClickFullMerge, stacking.ClickPartialMerge:
		ev.Current = out.Target
		ev.Cursor = out.Source
	case stacking.ClickBlocked:
		log.Debug("Merge blocked by effect filter",
			zap.Stringer("current", ev.Current),
			zap.Stringer("cursor", ev.Cursor),
		)
	}
	if out.SuppressDefault() {
		ev.Cancelled = true
	}

	log.Debug("Click handled",
		zap.String("result", string(out.Result)),
		zap.Stringer("current", ev.Current),
		zap.Stringer("cursor", ev.Cursor),
	)
	return out
}

// HandlePickup consolidates the picked up stack into the player's inventory.
//
// When everything was absorbed the event is cancelled and the world item
// removed. When only part was absorbed, ev.Item is replaced by a copy holding
// the residual so the host's normal pickup adds just what is left.
func (s *Service) HandlePickup(ev *PickupEvent) stacking.PickupOutcome {
	if !ev.IsPlayer || ev.Inventory == nil {
		return stacking.PickupOutcome{Result: stacking.PickupDecline}
	}
	log := logger.WithEventID(s.logger, logger.NewEventID())

	out := stacking.Consolidate(s.holder.Load(), ev.Item, ev.Inventory.Slots)
	s.metrics.Pickup(string(out.Result), out.Absorbed())

	switch out.Result {
	case stacking.PickupFullyConsumed:
		ev.Cancelled = true
		if ev.RemoveItem != nil {
			ev.RemoveItem()
		}
	case stacking.PickupPartialResidual:
		if out.Absorbed() > 0 {
			ev.Item = ev.Item.WithQuantity(out.Residual)
		}
	}

	log.Debug("Pickup handled",
		zap.String("result", string(out.Result)),
		zap.Int("absorbed", out.Absorbed()),
		zap.Int("residual", out.Residual),
	)
	return out
}
