// Package stacking implements the stack consolidation engine.
//
// It decides how two similar item stacks combine when one is dragged onto the
// other, and how a freshly picked up stack is spread across the existing
// stacks of an inventory. Every decision is a pure function of one
// configuration Snapshot and its inputs; the host applies the returned outcome.
//
// # Components
//
//   - Snapshot: immutable view of the settings (capacity, enabled kinds, effect whitelist).
//     IsKindEnabled and PassesEffectFilter are the compatibility checks.
//   - PlanClick: drag-merge planner returning NoOp, Blocked, FullMerge or PartialMerge.
//   - Consolidate: greedy first-fit pickup consolidation returning Decline,
//     FullyConsumed or PartialResidual.
//   - Holder: copy-on-reload container swapping snapshots atomically.
//
// # Usage
//
//	snap := stacking.NewSnapshot(v.StackSize, v.EnabledPotions, v.UseCustomEffects, v.AllowedEffects)
//	out := stacking.PlanClick(snap, current, cursor)
//	if out.SuppressDefault() {
//	    // apply out.Target / out.Source, cancel the host's default handling
//	}
package stacking
