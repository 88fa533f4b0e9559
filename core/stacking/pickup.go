package stacking

// PickupResult tags the outcome of a pickup consolidation.
type PickupResult string

const (
	// PickupDecline leaves the pickup entirely to the host.
	PickupDecline PickupResult = "decline"
	// PickupFullyConsumed means every picked up item was absorbed by existing stacks.
	PickupFullyConsumed PickupResult = "fully_consumed"
	// PickupPartialResidual means Residual items are left for the host's normal pickup.
	PickupPartialResidual PickupResult = "partial_residual"
)

// SlotFill records quantity added to one slot.
type SlotFill struct {
	// Index is the slot position in the given slot sequence.
	Index int `json:"index"`
	// Added is the quantity moved into the slot.
	Added int `json:"added"`
}

// PickupOutcome is the result of consolidating a picked up stack.
type PickupOutcome struct {
	Result PickupResult `json:"result"`

	// Residual is the quantity not absorbed. Zero unless Result is PartialResidual.
	Residual int `json:"residual"`

	// Fills lists the slots that received items, in slot order.
	Fills []SlotFill `json:"fills,omitempty"`
}

// Absorbed returns the total quantity moved into existing slots.
func (o PickupOutcome) Absorbed() int {
	total := 0
	for _, f := range o.Fills {
		total += f.Added
	}
	return total
}

// Consolidate spreads pickedUp over the similar stacks in slots, first-fit in
// slot order, up to the snapshot capacity. Matching slot stacks are grown in
// place; slots are never reordered, emptied or filled. pickedUp is not modified.
//
// Leftover quantity is reported, never placed: choosing a destination for it
// is the host's job.
func Consolidate(snap *Snapshot, pickedUp *ItemStack, slots []*ItemStack) PickupOutcome {
	if pickedUp == nil || pickedUp.Quantity <= 0 {
		return PickupOutcome{Result: PickupDecline}
	}
	if !snap.IsKindEnabled(pickedUp.Kind) {
		return PickupOutcome{Result: PickupDecline}
	}
	if snap.UseEffectFilter() && !snap.PassesEffectFilter(pickedUp) {
		return PickupOutcome{Result: PickupDecline}
	}

	capacity := snap.MaxStackSize()
	remaining := pickedUp.Quantity
	var fills []SlotFill

	for i, stack := range slots {
		if stack == nil || !stack.IsSimilar(pickedUp) {
			continue
		}
		if stack.Quantity >= capacity {
			continue
		}
		add := min(capacity-stack.Quantity, remaining)
		stack.Quantity += add
		remaining -= add
		fills = append(fills, SlotFill{Index: i, Added: add})

		if remaining == 0 {
			return PickupOutcome{Result: PickupFullyConsumed, Fills: fills}
		}
	}

	return PickupOutcome{Result: PickupPartialResidual, Residual: remaining, Fills: fills}
}
