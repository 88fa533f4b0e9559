// Package settings provides the flat key/value store behind the stacker configuration.
//
// Four keys are persisted:
//   - stack-size: maximum quantity per stack (default 16)
//   - enabled-potions: item kinds that take part in stacking
//   - use-custom-effects: whether the effect whitelist is applied
//   - allowed-effects: whitelisted effect names, stored uppercase
//
// # Backends
//
//   - FileStore: a YAML file read and written through Viper (default: config.yml).
//   - DBStore: a two column table managed with GORM (MySQL or SQLite).
//   - ObjectStore: a YAML object kept in an S3/MinIO bucket.
//
// Stores only read and write whole Values; building the stacking snapshot
// from them is up to the caller.
package settings
