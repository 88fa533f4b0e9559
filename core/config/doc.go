// Package config provides configuration management for the potion stacker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each section.
//
// This is the application configuration (where settings live, how to log). The
// stacker settings themselves (stack size, enabled potions, effect whitelist)
// are kept in the store selected here; see core/settings.
//
// # Configuration Structure
//
//   - Settings: store backend (file, database, object) and its location
//   - Log: logging level and format
//   - Database: MySQL/SQLite connection details for the database backend
//   - Storage: S3/MinIO credentials and bucket for the object backend
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Settings.Backend)
package config
