package settings

import (
	"context"
	"path/filepath"
	"testing"

	"potion-stacker/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLiteStore(t *testing.T) *DBStore {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   filepath.Join(t.TempDir(), "settings.db"),
	})
	require.NoError(t, err)

	store := NewDBStore(db, "")
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestDBStore_EmptyTableUsesDefaults(t *testing.T) {
	store := setupSQLiteStore(t)

	values, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Defaults().Normalize(), values)
}

func TestDBStore_SaveAndLoad(t *testing.T) {
	store := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Values{
		StackSize:        32,
		EnabledPotions:   []string{"POTION", "SPLASH_POTION"},
		UseCustomEffects: true,
		AllowedEffects:   []string{"speed"},
	}))

	// Second save exercises the upsert path.
	require.NoError(t, store.Save(ctx, Values{
		StackSize:        48,
		EnabledPotions:   []string{"POTION", "SPLASH_POTION"},
		UseCustomEffects: true,
		AllowedEffects:   []string{"speed", "haste"},
	}))

	values, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 48, values.StackSize)
	assert.Equal(t, []string{"POTION", "SPLASH_POTION"}, values.EnabledPotions)
	assert.True(t, values.UseCustomEffects)
	assert.Equal(t, []string{"SPEED", "HASTE"}, values.AllowedEffects)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDBStore_LoadFromMySQL(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"setting_key", "setting_value"}).
		AddRow("stack-size", "24").
		AddRow("enabled-potions", "POTION").
		AddRow("use-custom-effects", "1").
		AddRow("allowed-effects", "regeneration,haste")
	mock.ExpectQuery("SELECT \\* FROM `stacker_settings`").WillReturnRows(rows)

	values, err := NewDBStore(db, "").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 24, values.StackSize)
	assert.Equal(t, []string{"POTION"}, values.EnabledPotions)
	assert.True(t, values.UseCustomEffects)
	assert.Equal(t, []string{"REGENERATION", "HASTE"}, values.AllowedEffects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_InvalidStackSize(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"setting_key", "setting_value"}).
		AddRow("stack-size", "lots")
	mock.ExpectQuery("SELECT \\* FROM `stacker_settings`").WillReturnRows(rows)

	_, err := NewDBStore(db, "").Load(context.Background())
	assert.ErrorContains(t, err, "invalid stack-size")
}
