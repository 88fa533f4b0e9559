package stacker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CommandName is the label the command surface answers to.
const CommandName = "potionstacker"

// Subcommand names, in completion order.
var Subcommands = []string{"reload", "setstack", "addeffect", "removeeffect"}

// Commands implements the text command surface over a Service.
type Commands struct {
	svc    *Service
	logger *zap.Logger
}

// NewCommands creates the command surface.
func NewCommands(svc *Service, logger *zap.Logger) *Commands {
	return &Commands{svc: svc, logger: logger}
}

// Execute runs args[0] as a subcommand and returns the messages for the sender.
// User errors are reported as messages; they never change settings.
func (c *Commands) Execute(ctx context.Context, args []string) []string {
	if len(args) == 0 {
		return []string{fmt.Sprintf("Usage: /%s <%s>", CommandName, strings.Join(Subcommands, "|"))}
	}

	switch strings.ToLower(args[0]) {
	case "reload":
		if err := c.svc.Reload(ctx); err != nil {
			return c.failure("reload", err)
		}
		return []string{"PotionStacker config reloaded."}

	case "setstack":
		if len(args) < 2 {
			return []string{fmt.Sprintf("Usage: /%s setstack <size>", CommandName)}
		}
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return []string{"Invalid number: " + args[1]}
		}
		if size <= 0 {
			return []string{"Stack size must be positive: " + args[1]}
		}
		if err := c.svc.SetStack(ctx, size); err != nil {
			return c.failure("setstack", err)
		}
		return []string{fmt.Sprintf("Stack size set to %d", size)}

	case "addeffect":
		if len(args) < 2 {
			return []string{fmt.Sprintf("Usage: /%s addeffect <effect>", CommandName)}
		}
		effect := strings.ToUpper(args[1])
		added, err := c.svc.AddEffect(ctx, effect)
		if err != nil {
			return c.failure("addeffect", err)
		}
		if !added {
			return []string{effect + " is already allowed."}
		}
		return []string{"Added allowed effect: " + effect}

	case "removeeffect":
		if len(args) < 2 {
			return []string{fmt.Sprintf("Usage: /%s removeeffect <effect>", CommandName)}
		}
		effect := strings.ToUpper(args[1])
		removed, err := c.svc.RemoveEffect(ctx, effect)
		if err != nil {
			return c.failure("removeeffect", err)
		}
		if !removed {
			return []string{effect + " was not in the allowed list."}
		}
		return []string{"Removed allowed effect: " + effect}

	default:
		return []string{"Unknown subcommand. Use reload, setstack, addeffect, or removeeffect."}
	}
}

func (c *Commands) failure(subcommand string, err error) []string {
	c.logger.Error("Command failed", zap.String("subcommand", subcommand), zap.Error(err))
	return []string{fmt.Sprintf("Command %s failed: %v", subcommand, err)}
}

// Complete returns tab-completion candidates for args.
// Subcommand names are offered at depth one only.
func (c *Commands) Complete(args []string) []string {
	if len(args) != 1 {
		return []string{}
	}
	out := make([]string, len(Subcommands))
	copy(out, Subcommands)
	return out
}
