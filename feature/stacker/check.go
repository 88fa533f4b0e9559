package stacker

import (
	"context"

	"potion-stacker/core/database"
	"potion-stacker/core/settings"

	"gorm.io/gorm"
)

// SettingsColumns are the columns the database backend requires.
var SettingsColumns = []string{"setting_key", "setting_value"}

// CheckReport describes the health of the settings store.
type CheckReport struct {
	Backend        string           `json:"backend"`
	Readable       bool             `json:"readable"`
	Values         *settings.Values `json:"values,omitempty"`
	MissingColumns []string         `json:"missing_columns,omitempty"`
	Errors         []string         `json:"errors,omitempty"`
}

// Healthy reports whether the store can be used as is.
func (r CheckReport) Healthy() bool {
	return r.Readable && len(r.MissingColumns) == 0 && len(r.Errors) == 0
}

// CheckStore verifies that store can be read. When db is set the settings
// table schema is inspected as well.
func CheckStore(ctx context.Context, backend string, store settings.Store, db *gorm.DB, table string) CheckReport {
	report := CheckReport{Backend: backend}

	if db != nil {
		missing, err := database.MissingColumns(db, table, SettingsColumns)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
		}
		report.MissingColumns = missing
		if len(missing) > 0 {
			// Loading would fail on the missing columns anyway.
			return report
		}
	}

	values, err := store.Load(ctx)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report
	}
	report.Readable = true
	report.Values = &values
	return report
}
