package settings

// Backend names accepted in Config.Backend.
const (
	BackendFile     = "file"
	BackendDatabase = "database"
	BackendObject   = "object"
)

// Config selects and locates the settings store.
type Config struct {
	// Backend is one of file, database or object.
	Backend string `mapstructure:"backend" default:"file"`
	// File is the YAML file used by the file backend.
	File string `mapstructure:"file" default:"config.yml"`
	// Object is the object name used by the object backend.
	Object string `mapstructure:"object" default:"potion-stacker/config.yml"`
	// Table is the table used by the database backend.
	Table string `mapstructure:"table" default:"stacker_settings"`
}

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendFile, BackendDatabase, BackendObject:
		return true
	default:
		return false
	}
}
