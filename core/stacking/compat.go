package stacking

import "strings"

// IsKindEnabled reports whether kind takes part in consolidation.
func (s *Snapshot) IsKindEnabled(kind string) bool {
	_, ok := s.enabledKinds[kind]
	return ok
}

// PassesEffectFilter reports whether every effect on the stack is whitelisted.
// It always passes while the filter is disabled; an empty effect set passes.
func (s *Snapshot) PassesEffectFilter(stack *ItemStack) bool {
	if !s.useEffectFilter {
		return true
	}
	if stack == nil {
		return true
	}
	for _, effect := range stack.Effects {
		if _, ok := s.allowedEffects[strings.ToUpper(effect)]; !ok {
			return false
		}
	}
	return true
}
