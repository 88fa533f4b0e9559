package stacking

import (
	"sort"
	"strings"
	"sync/atomic"
)

// DefaultMaxStackSize is the capacity used when none (or a non-positive one) is configured.
const DefaultMaxStackSize = 16

// Snapshot is an immutable view of the stacking settings.
// A new Snapshot is built on every reload; existing ones are never mutated.
type Snapshot struct {
	maxStackSize    int
	enabledKinds    map[string]struct{}
	useEffectFilter bool
	allowedEffects  map[string]struct{}
}

// NewSnapshot builds a snapshot. Allowed effects are normalized to uppercase.
func NewSnapshot(maxStackSize int, enabledKinds []string, useEffectFilter bool, allowedEffects []string) *Snapshot {
	if maxStackSize <= 0 {
		maxStackSize = DefaultMaxStackSize
	}
	s := &Snapshot{
		maxStackSize:    maxStackSize,
		enabledKinds:    make(map[string]struct{}, len(enabledKinds)),
		useEffectFilter: useEffectFilter,
		allowedEffects:  make(map[string]struct{}, len(allowedEffects)),
	}
	for _, k := range enabledKinds {
		s.enabledKinds[k] = struct{}{}
	}
	for _, e := range allowedEffects {
		s.allowedEffects[strings.ToUpper(e)] = struct{}{}
	}
	return s
}

// MaxStackSize returns the per-stack capacity.
func (s *Snapshot) MaxStackSize() int { return s.maxStackSize }

// UseEffectFilter reports whether the effect whitelist is active.
func (s *Snapshot) UseEffectFilter() bool { return s.useEffectFilter }

// EnabledKinds returns the enabled kinds, sorted.
func (s *Snapshot) EnabledKinds() []string { return sortedKeys(s.enabledKinds) }

// AllowedEffects returns the whitelisted effects, sorted and uppercase.
func (s *Snapshot) AllowedEffects() []string { return sortedKeys(s.allowedEffects) }

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Holder keeps the active snapshot and swaps it atomically on reload.
// The zero value holds a default snapshot with no enabled kinds.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder returns a holder primed with snap.
func NewHolder(snap *Snapshot) *Holder {
	h := &Holder{}
	h.Store(snap)
	return h
}

// Load returns the active snapshot.
func (h *Holder) Load() *Snapshot {
	if snap := h.current.Load(); snap != nil {
		return snap
	}
	return NewSnapshot(DefaultMaxStackSize, nil, false, nil)
}

// Store replaces the active snapshot.
func (h *Holder) Store(snap *Snapshot) {
	h.current.Store(snap)
}
