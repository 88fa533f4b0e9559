package settings

import (
	"context"
	"fmt"
	"strconv"

	"potion-stacker/core/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRow is one key/value pair of the settings table.
type settingRow struct {
	Key   string `gorm:"column:setting_key;primaryKey;size:64"`
	Value string `gorm:"column:setting_value;type:text"`
}

// DBStore keeps settings as key/value rows in a database table.
type DBStore struct {
	db    *gorm.DB
	table string
}

// NewDBStore creates a store over table. An empty table name uses "stacker_settings".
func NewDBStore(db *gorm.DB, table string) *DBStore {
	if table == "" {
		table = "stacker_settings"
	}
	return &DBStore{db: db, table: table}
}

// Migrate creates the settings table if needed.
func (s *DBStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Table(s.table).AutoMigrate(&settingRow{}); err != nil {
		return fmt.Errorf("failed to migrate settings table: %w", err)
	}
	return nil
}

// Load reads every row; absent keys fall back to Defaults.
func (s *DBStore) Load(ctx context.Context) (Values, error) {
	var rows []settingRow
	if err := s.db.WithContext(ctx).Table(s.table).Find(&rows).Error; err != nil {
		return Values{}, fmt.Errorf("failed to load settings: %w", err)
	}

	values := Defaults()
	for _, row := range rows {
		switch row.Key {
		case KeyStackSize:
			n, err := utils.ToInt(row.Value)
			if err != nil {
				return Values{}, fmt.Errorf("invalid %s %q: %w", KeyStackSize, row.Value, err)
			}
			values.StackSize = n
		case KeyEnabledPotions:
			values.EnabledPotions = utils.ToStringList(row.Value)
		case KeyUseCustomEffects:
			values.UseCustomEffects = utils.ToBool(row.Value)
		case KeyAllowedEffects:
			values.AllowedEffects = utils.ToStringList(row.Value)
		}
	}
	return values.Normalize(), nil
}

// Save upserts all four keys in a single transaction.
func (s *DBStore) Save(ctx context.Context, values Values) error {
	values = values.Normalize()
	rows := []settingRow{
		{Key: KeyStackSize, Value: strconv.Itoa(values.StackSize)},
		{Key: KeyEnabledPotions, Value: utils.JoinList(values.EnabledPotions)},
		{Key: KeyUseCustomEffects, Value: strconv.FormatBool(values.UseCustomEffects)},
		{Key: KeyAllowedEffects, Value: utils.JoinList(values.AllowedEffects)},
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Table(s.table).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
