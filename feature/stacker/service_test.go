package stacker

import (
	"context"
	"errors"
	"testing"

	"potion-stacker/core/metrics"
	"potion-stacker/core/settings"
	"potion-stacker/core/settings/mocks"
	"potion-stacker/core/stacking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService(t *testing.T, values settings.Values) (*Service, *settings.MemoryStore, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	store := settings.NewMemoryStore(values)
	svc := NewService(store, zap.New(core), metrics.NewRecorder())
	require.NoError(t, svc.Reload(context.Background()))
	return svc, store, logs
}

func stored(t *testing.T, store settings.Store) settings.Values {
	t.Helper()
	v, err := store.Load(context.Background())
	require.NoError(t, err)
	return v
}

func potion(qty int, effects ...string) *stacking.ItemStack {
	return &stacking.ItemStack{Kind: "POTION", Quantity: qty, Effects: effects}
}

func TestService_Reload(t *testing.T) {
	svc, _, logs := newTestService(t, settings.Values{
		StackSize:      24,
		EnabledPotions: []string{"POTION"},
		AllowedEffects: []string{"speed"},
	})

	snap := svc.Snapshot()
	assert.Equal(t, 24, snap.MaxStackSize())
	assert.True(t, snap.IsKindEnabled("POTION"))
	assert.Equal(t, []string{"SPEED"}, snap.AllowedEffects())
	assert.Equal(t, 1, logs.FilterMessage("Settings applied").Len())

	failing := new(mocks.Store)
	failing.On("Load", mock.Anything).Return(nil, errors.New("disk gone"))
	svc.store = failing

	err := svc.Reload(context.Background())
	assert.ErrorContains(t, err, "disk gone")
	assert.Same(t, snap, svc.Snapshot(), "failed reload keeps the previous snapshot")
	failing.AssertExpectations(t)
}

func TestService_SetStack(t *testing.T) {
	svc, store, _ := newTestService(t, settings.Defaults())

	require.NoError(t, svc.SetStack(context.Background(), 64))
	assert.Equal(t, 64, stored(t, store).StackSize)
	assert.Equal(t, 64, svc.Snapshot().MaxStackSize())

	assert.Error(t, svc.SetStack(context.Background(), 0))
	assert.Equal(t, 64, stored(t, store).StackSize)
}

func TestService_AddRemoveEffect(t *testing.T) {
	svc, store, _ := newTestService(t, settings.Defaults())
	ctx := context.Background()

	added, err := svc.AddEffect(ctx, "regeneration")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"REGENERATION"}, svc.Snapshot().AllowedEffects())
	assert.Equal(t, []string{"REGENERATION"}, stored(t, store).AllowedEffects)

	removed, err := svc.RemoveEffect(ctx, "haste")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = svc.RemoveEffect(ctx, "REGENERATION")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, svc.Snapshot().AllowedEffects())
	assert.Empty(t, stored(t, store).AllowedEffects)
}

func TestService_UnchangedEffectsSkipSave(t *testing.T) {
	values := settings.Defaults()
	values.AllowedEffects = []string{"REGENERATION"}

	store := new(mocks.Store)
	store.On("Load", mock.Anything).Return(values, nil)
	svc := NewService(store, zap.NewNop(), metrics.NewRecorder())
	ctx := context.Background()

	added, err := svc.AddEffect(ctx, "Regeneration")
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := svc.RemoveEffect(ctx, "haste")
	require.NoError(t, err)
	assert.False(t, removed)

	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_SaveError(t *testing.T) {
	svc, _, _ := newTestService(t, settings.Defaults())
	store := new(mocks.Store)
	store.On("Load", mock.Anything).Return(settings.Defaults(), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("read-only"))
	svc.store = store

	err := svc.SetStack(context.Background(), 32)
	assert.ErrorContains(t, err, "read-only")
	assert.Equal(t, settings.DefaultStackSize, svc.Snapshot().MaxStackSize())
	store.AssertExpectations(t)
}

func TestService_HandleClick(t *testing.T) {
	svc, _, _ := newTestService(t, settings.Values{
		StackSize:        16,
		EnabledPotions:   []string{"POTION"},
		UseCustomEffects: true,
		AllowedEffects:   []string{"REGENERATION"},
	})

	t.Run("PartialMerge", func(t *testing.T) {
		ev := &ClickEvent{Current: potion(10, "REGENERATION"), Cursor: potion(10, "REGENERATION")}
		out := svc.HandleClick(ev)

		assert.Equal(t, stacking.ClickPartialMerge, out.Result)
		assert.True(t, ev.Cancelled)
		assert.Equal(t, 16, ev.Current.Quantity)
		assert.Equal(t, 4, ev.Cursor.Quantity)
	})

	t.Run("FullMerge", func(t *testing.T) {
		ev := &ClickEvent{Current: potion(3), Cursor: potion(5)}
		svc.HandleClick(ev)

		assert.True(t, ev.Cancelled)
		assert.Equal(t, 8, ev.Current.Quantity)
		assert.Nil(t, ev.Cursor)
	})

	t.Run("Blocked", func(t *testing.T) {
		ev := &ClickEvent{Current: potion(1, "REGENERATION", "HASTE"), Cursor: potion(1, "HASTE", "REGENERATION")}
		out := svc.HandleClick(ev)

		assert.Equal(t, stacking.ClickBlocked, out.Result)
		assert.True(t, ev.Cancelled)
		assert.Equal(t, 1, ev.Current.Quantity)
		assert.Equal(t, 1, ev.Cursor.Quantity)
	})

	t.Run("NoOp", func(t *testing.T) {
		ev := &ClickEvent{Current: potion(16), Cursor: potion(2)}
		svc.HandleClick(ev)

		assert.False(t, ev.Cancelled)
		assert.Equal(t, 16, ev.Current.Quantity)
		assert.Equal(t, 2, ev.Cursor.Quantity)
	})
}

func TestService_HandlePickup(t *testing.T) {
	svc, _, _ := newTestService(t, settings.Values{StackSize: 64, EnabledPotions: []string{"POTION"}})

	t.Run("PartialResidual", func(t *testing.T) {
		inv := &Inventory{Slots: []*stacking.ItemStack{potion(60), nil, potion(10)}}
		removed := false
		ev := &PickupEvent{Item: potion(100), Inventory: inv, IsPlayer: true, RemoveItem: func() { removed = true }}

		out := svc.HandlePickup(ev)

		assert.Equal(t, stacking.PickupPartialResidual, out.Result)
		assert.Equal(t, 42, out.Residual)
		assert.False(t, ev.Cancelled)
		assert.False(t, removed)
		assert.Equal(t, 42, ev.Item.Quantity, "host picks up only the residual")
		assert.Equal(t, 64, inv.Slots[0].Quantity)
		assert.Nil(t, inv.Slots[1], "empty slots are left to the host")
		assert.Equal(t, 64, inv.Slots[2].Quantity)
	})

	t.Run("FullyConsumed", func(t *testing.T) {
		inv := &Inventory{Slots: []*stacking.ItemStack{potion(10)}}
		removed := false
		ev := &PickupEvent{Item: potion(5), Inventory: inv, IsPlayer: true, RemoveItem: func() { removed = true }}

		out := svc.HandlePickup(ev)

		assert.Equal(t, stacking.PickupFullyConsumed, out.Result)
		assert.True(t, ev.Cancelled)
		assert.True(t, removed)
		assert.Equal(t, 15, inv.Slots[0].Quantity)
	})

	t.Run("NothingAbsorbed", func(t *testing.T) {
		item := potion(5)
		ev := &PickupEvent{Item: item, Inventory: &Inventory{Slots: []*stacking.ItemStack{nil}}, IsPlayer: true}

		out := svc.HandlePickup(ev)

		assert.Equal(t, stacking.PickupPartialResidual, out.Result)
		assert.Same(t, item, ev.Item)
	})

	t.Run("NonPlayer", func(t *testing.T) {
		inv := &Inventory{Slots: []*stacking.ItemStack{potion(10)}}
		ev := &PickupEvent{Item: potion(5), Inventory: inv}

		out := svc.HandlePickup(ev)

		assert.Equal(t, stacking.PickupDecline, out.Result)
		assert.Equal(t, 10, inv.Slots[0].Quantity)
	})

	t.Run("DisabledKind", func(t *testing.T) {
		inv := &Inventory{Slots: []*stacking.ItemStack{{Kind: "ARROW", Quantity: 10}}}
		ev := &PickupEvent{Item: &stacking.ItemStack{Kind: "ARROW", Quantity: 5}, Inventory: inv, IsPlayer: true}

		out := svc.HandlePickup(ev)

		assert.Equal(t, stacking.PickupDecline, out.Result)
		assert.False(t, ev.Cancelled)
		assert.Equal(t, 10, inv.Slots[0].Quantity)
	})
}
