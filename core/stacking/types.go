package stacking

import (
	"sort"
	"strconv"
	"strings"
)

// ItemStack is a quantity-bearing item of a given kind and effect set.
// A nil *ItemStack represents an absent stack.
type ItemStack struct {
	// Kind identifies the item variant (e.g. POTION, SPLASH_POTION).
	Kind string `yaml:"kind" json:"kind"`
	// Quantity is the number of items held by the stack.
	Quantity int `yaml:"quantity" json:"quantity"`
	// Effects are the named effects attached to the instance.
	Effects []string `yaml:"effects,omitempty" json:"effects,omitempty"`
}

// Clone returns a deep copy of the stack.
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	c := *s
	if s.Effects != nil {
		c.Effects = append([]string(nil), s.Effects...)
	}
	return &c
}

// WithQuantity returns a copy of the stack holding n items.
func (s *ItemStack) WithQuantity(n int) *ItemStack {
	c := s.Clone()
	c.Quantity = n
	return c
}

// IsSimilar reports whether both stacks share kind and effect set.
// Quantity is ignored and effect order does not matter.
func (s *ItemStack) IsSimilar(other *ItemStack) bool {
	if s == nil || other == nil {
		return false
	}
	if s.Kind != other.Kind {
		return false
	}
	a, b := effectKey(s.Effects), effectKey(other.Effects)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// effectKey returns the sorted, de-duplicated effect names.
func effectKey(effects []string) []string {
	if len(effects) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(effects))
	out := make([]string, 0, len(effects))
	for _, e := range effects {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// String renders the stack for logs, e.g. "POTION x4 [REGENERATION]".
func (s *ItemStack) String() string {
	if s == nil {
		return "<empty>"
	}
	var b strings.Builder
	b.WriteString(s.Kind)
	b.WriteString(" x")
	b.WriteString(strconv.Itoa(s.Quantity))
	if len(s.Effects) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(s.Effects, ","))
		b.WriteString("]")
	}
	return b.String()
}
