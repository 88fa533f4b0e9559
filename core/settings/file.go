package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileStore keeps settings in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the YAML file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file, writing Defaults first when it does not exist yet.
func (s *FileStore) Load(ctx context.Context) (Values, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		if err := s.Save(ctx, Defaults()); err != nil {
			return Values{}, err
		}
	}

	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		return Values{}, fmt.Errorf("failed to read settings file %s: %w", s.path, err)
	}

	values := Values{
		StackSize:        v.GetInt(KeyStackSize),
		EnabledPotions:   v.GetStringSlice(KeyEnabledPotions),
		UseCustomEffects: v.GetBool(KeyUseCustomEffects),
		AllowedEffects:   v.GetStringSlice(KeyAllowedEffects),
	}
	return values.Normalize(), nil
}

// Save writes every value to the file, creating parent directories as needed.
func (s *FileStore) Save(_ context.Context, values Values) error {
	values = values.Normalize()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set(KeyStackSize, values.StackSize)
	v.Set(KeyEnabledPotions, values.EnabledPotions)
	v.Set(KeyUseCustomEffects, values.UseCustomEffects)
	v.Set(KeyAllowedEffects, values.AllowedEffects)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	d := Defaults()
	v.SetDefault(KeyStackSize, d.StackSize)
	v.SetDefault(KeyEnabledPotions, d.EnabledPotions)
	v.SetDefault(KeyUseCustomEffects, d.UseCustomEffects)
	v.SetDefault(KeyAllowedEffects, d.AllowedEffects)
	return v
}
