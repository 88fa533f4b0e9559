package stacker

import (
	"fmt"
	"io"

	"potion-stacker/core/settings"
	"potion-stacker/core/stacking"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of interactions over one inventory.
type Scenario struct {
	// Settings, when present, replace the configured store for the run.
	Settings *settings.Values `yaml:"settings"`
	// Inventory is the starting inventory.
	Inventory Inventory `yaml:"inventory"`
	// Steps run in order against the inventory.
	Steps []Step `yaml:"steps"`
}

// Step is either a click on an inventory slot or a pickup.
type Step struct {
	Click  *ClickStep  `yaml:"click,omitempty"`
	Pickup *PickupStep `yaml:"pickup,omitempty"`
}

// ClickStep drags Cursor onto inventory slot Slot.
type ClickStep struct {
	Slot   int                 `yaml:"slot"`
	Cursor *stacking.ItemStack `yaml:"cursor"`
}

// PickupStep picks up Item. Player defaults to true.
type PickupStep struct {
	Item   *stacking.ItemStack `yaml:"item"`
	Player *bool               `yaml:"player"`
}

// StepResult reports what one step did.
type StepResult struct {
	Index     int                 `json:"index"`
	Kind      string              `json:"kind"`
	Result    string              `json:"result"`
	Cancelled bool                `json:"cancelled"`
	Cursor    *stacking.ItemStack `json:"cursor,omitempty"`
	Residual  int                 `json:"residual,omitempty"`
	Removed   bool                `json:"removed,omitempty"`
	Fills     []stacking.SlotFill `json:"fills,omitempty"`
}

// LoadScenario decodes a YAML scenario.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	for i, step := range sc.Steps {
		if (step.Click == nil) == (step.Pickup == nil) {
			return nil, fmt.Errorf("step %d: exactly one of click or pickup is required", i)
		}
		if step.Click != nil && (step.Click.Slot < 0 || step.Click.Slot >= len(sc.Inventory.Slots)) {
			return nil, fmt.Errorf("step %d: slot %d out of range", i, step.Click.Slot)
		}
	}
	return &sc, nil
}

// Run plays the scenario against the active snapshot, mutating sc.Inventory.
func (s *Service) Run(sc *Scenario) []StepResult {
	results := make([]StepResult, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		switch {
		case step.Click != nil:
			ev := &ClickEvent{
				Current: sc.Inventory.Slots[step.Click.Slot],
				Cursor:  step.Click.Cursor.Clone(),
			}
			out := s.HandleClick(ev)
			sc.Inventory.Slots[step.Click.Slot] = ev.Current
			results = append(results, StepResult{
				Index:     i,
				Kind:      "click",
				Result:    string(out.Result),
				Cancelled: ev.Cancelled,
				Cursor:    ev.Cursor,
			})

		case step.Pickup != nil:
			removed := false
			ev := &PickupEvent{
				Item:       step.Pickup.Item.Clone(),
				Inventory:  &sc.Inventory,
				IsPlayer:   step.Pickup.Player == nil || *step.Pickup.Player,
				RemoveItem: func() { removed = true },
			}
			out := s.HandlePickup(ev)
			results = append(results, StepResult{
				Index:     i,
				Kind:      "pickup",
				Result:    string(out.Result),
				Cancelled: ev.Cancelled,
				Residual:  out.Residual,
				Removed:   removed,
				Fills:     out.Fills,
			})
		}
	}
	return results
}
