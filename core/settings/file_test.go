package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins", "config.yml")
	store := NewFileStore(path)

	values, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Defaults().Normalize(), values)

	_, err = os.Stat(path)
	assert.NoError(t, err, "defaults should be written on first load")
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.yml"))
	ctx := context.Background()

	err := store.Save(ctx, Values{
		StackSize:        64,
		EnabledPotions:   []string{"POTION"},
		UseCustomEffects: true,
		AllowedEffects:   []string{"regeneration", "SPEED", "speed"},
	})
	require.NoError(t, err)

	values, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 64, values.StackSize)
	assert.Equal(t, []string{"POTION"}, values.EnabledPotions)
	assert.True(t, values.UseCustomEffects)
	assert.Equal(t, []string{"REGENERATION", "SPEED"}, values.AllowedEffects)
}

func TestFileStore_MissingKeysUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("use-custom-effects: true\n"), 0o644))

	values, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultStackSize, values.StackSize)
	assert.True(t, values.UseCustomEffects)
	assert.Equal(t, DefaultEnabledPotions, values.EnabledPotions)
	assert.Empty(t, values.AllowedEffects)
}

func TestFileStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("stack-size: [oops\n"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}
