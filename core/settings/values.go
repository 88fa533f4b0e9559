package settings

import (
	"context"
	"strings"
)

// Setting keys as they appear in every backend.
const (
	KeyStackSize        = "stack-size"
	KeyEnabledPotions   = "enabled-potions"
	KeyUseCustomEffects = "use-custom-effects"
	KeyAllowedEffects   = "allowed-effects"
)

// DefaultStackSize is used when stack-size is missing or not positive.
const DefaultStackSize = 16

// DefaultEnabledPotions are written to a freshly created store.
var DefaultEnabledPotions = []string{"POTION", "SPLASH_POTION", "LINGERING_POTION"}

// Values is a fully materialized copy of the four settings.
type Values struct {
	StackSize        int      `yaml:"stack-size" mapstructure:"stack-size"`
	EnabledPotions   []string `yaml:"enabled-potions" mapstructure:"enabled-potions"`
	UseCustomEffects bool     `yaml:"use-custom-effects" mapstructure:"use-custom-effects"`
	AllowedEffects   []string `yaml:"allowed-effects" mapstructure:"allowed-effects"`
}

// Defaults returns the values of a fresh store.
func Defaults() Values {
	return Values{
		StackSize:      DefaultStackSize,
		EnabledPotions: append([]string(nil), DefaultEnabledPotions...),
		AllowedEffects: []string{},
	}
}

// Normalize uppercases and de-duplicates allowed effects and repairs the stack size.
func (v Values) Normalize() Values {
	if v.StackSize <= 0 {
		v.StackSize = DefaultStackSize
	}
	v.EnabledPotions = dedupe(v.EnabledPotions, false)
	v.AllowedEffects = dedupe(v.AllowedEffects, true)
	return v
}

// HasEffect reports whether effect (any case) is whitelisted.
func (v Values) HasEffect(effect string) bool {
	effect = strings.ToUpper(effect)
	for _, e := range v.AllowedEffects {
		if strings.ToUpper(e) == effect {
			return true
		}
	}
	return false
}

func dedupe(list []string, upper bool) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if upper {
			s = strings.ToUpper(s)
		}
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Store persists settings Values.
type Store interface {
	// Load reads the current values. Missing keys fall back to Defaults.
	Load(ctx context.Context) (Values, error)
	// Save replaces every stored value.
	Save(ctx context.Context, v Values) error
}
