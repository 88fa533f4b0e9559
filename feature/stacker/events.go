package stacker

import "potion-stacker/core/stacking"

// ClickEvent is a drag of the cursor stack onto the current slot stack.
// The handler rewrites Current and Cursor in place and sets Cancelled when
// the host must skip its built-in merge.
type ClickEvent struct {
	Current   *stacking.ItemStack
	Cursor    *stacking.ItemStack
	Cancelled bool
}

// Inventory is the slot sequence of the acting player, in slot order.
type Inventory struct {
	Slots []*stacking.ItemStack `yaml:"slots" json:"slots"`
}

// PickupEvent is an entity picking up a stack from the world.
type PickupEvent struct {
	// Item is the stack lying in the world.
	Item *stacking.ItemStack
	// Inventory is the picker's inventory.
	Inventory *Inventory
	// IsPlayer is false for mobs and other entities, which are ignored.
	IsPlayer bool
	// Cancelled tells the host not to run its default pickup.
	Cancelled bool
	// RemoveItem despawns the world item. Called when the pickup was fully absorbed.
	RemoveItem func()
}
