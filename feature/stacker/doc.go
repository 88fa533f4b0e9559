// Package stacker wires the stacking engine to its host.
//
// The host (a game server or the simulate command) forwards two kinds of
// interaction events here and applies whatever the engine decided:
//
//   - ClickEvent: a stack dragged onto another one in an inventory.
//   - PickupEvent: a player picking up a stack from the world.
//
// The Service owns the active settings snapshot and the settings store. The
// Commands type implements the text command surface:
//
//   - reload: re-read the store.
//   - setstack <size>: change the per-stack capacity.
//   - addeffect <effect>: whitelist an effect.
//   - removeeffect <effect>: remove an effect from the whitelist.
//
// Every mutating command saves to the store and then reloads the snapshot as a
// whole, so an interaction never observes a half-updated configuration.
package stacker
