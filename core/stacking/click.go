package stacking

// ClickResult tags the outcome of a drag-merge.
type ClickResult string

const (
	// ClickNoOp leaves both stacks and the host's default handling alone.
	ClickNoOp ClickResult = "noop"
	// ClickBlocked suppresses the interaction without changing any stack.
	ClickBlocked ClickResult = "blocked"
	// ClickFullMerge moves the whole dragged stack into the target slot.
	ClickFullMerge ClickResult = "full_merge"
	// ClickPartialMerge fills the target slot and leaves a remainder on the dragged stack.
	ClickPartialMerge ClickResult = "partial_merge"
)

// ClickOutcome is the planned result of dragging Source onto Target.
type ClickOutcome struct {
	// Result tags the outcome.
	Result ClickResult `json:"result"`

	// Target is the new content of the target slot.
	// Only set for FullMerge and PartialMerge.
	Target *ItemStack `json:"target,omitempty"`

	// Source is what remains of the dragged stack; nil when fully consumed.
	// Only meaningful for FullMerge and PartialMerge.
	Source *ItemStack `json:"source,omitempty"`
}

// SuppressDefault reports whether the host must cancel its own merge handling.
func (o ClickOutcome) SuppressDefault() bool {
	return o.Result != ClickNoOp
}

// Changed reports whether the outcome rewrites the stacks.
func (o ClickOutcome) Changed() bool {
	return o.Result == ClickFullMerge || o.Result == ClickPartialMerge
}

// PlanClick plans dragging source onto target under snap.
// Neither input is modified.
func PlanClick(snap *Snapshot, target, source *ItemStack) ClickOutcome {
	if target == nil || source == nil {
		return ClickOutcome{Result: ClickNoOp}
	}
	if !snap.IsKindEnabled(target.Kind) || !snap.IsKindEnabled(source.Kind) {
		return ClickOutcome{Result: ClickNoOp}
	}
	if !target.IsSimilar(source) {
		return ClickOutcome{Result: ClickNoOp}
	}
	if snap.UseEffectFilter() && (!snap.PassesEffectFilter(target) || !snap.PassesEffectFilter(source)) {
		return ClickOutcome{Result: ClickBlocked}
	}

	capacity := snap.MaxStackSize()
	combined := target.Quantity + source.Quantity
	if combined <= capacity {
		return ClickOutcome{
			Result: ClickFullMerge,
			Target: source.WithQuantity(combined),
		}
	}

	spaceLeft := capacity - target.Quantity
	if spaceLeft <= 0 {
		return ClickOutcome{Result: ClickNoOp}
	}
	return ClickOutcome{
		Result: ClickPartialMerge,
		Target: target.WithQuantity(capacity),
		Source: source.WithQuantity(source.Quantity - spaceLeft),
	}
}
