// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application
// configuration, used by the database settings backend.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the check command verify that the
// settings table carries the expected key/value columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "stacker_settings", []string{"setting_key", "setting_value"})
package database
