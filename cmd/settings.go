package cmd

import (
	"fmt"
	"strings"

	"potion-stacker/feature/stacker"

	"github.com/spf13/cobra"
)

// runSubcommand forwards the invocation to the stacker command surface.
func runSubcommand(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	for _, msg := range a.feature.Commands().Execute(cmd.Context(), append([]string{cmd.Name()}, args...)) {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Re-read the stored settings",
	Args:  cobra.NoArgs,
	RunE:  runSubcommand,
}

var setStackCmd = &cobra.Command{
	Use:   "setstack <size>",
	Short: "Set the maximum stack size",
	// Negative sizes must reach the size check instead of the flag parser.
	DisableFlagParsing: true,
	Args:               cobra.MaximumNArgs(1),
	RunE:               runSubcommand,
}

var addEffectCmd = &cobra.Command{
	Use:   "addeffect <effect>",
	Short: "Allow an effect when custom effect filtering is on",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubcommand,
}

var removeEffectCmd = &cobra.Command{
	Use:   "removeeffect <effect>",
	Short: "Remove an effect from the allowed list",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubcommand,
}

// completeCmd prints what the in-game tab completion would offer.
var completeCmd = &cobra.Command{
	Use:   "complete [args...]",
	Short: "Print tab-completion candidates for the potionstacker command",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{""}
		}
		cmds := stacker.NewCommands(nil, nil)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cmds.Complete(args), "\n"))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reloadCmd, setStackCmd, addEffectCmd, removeEffectCmd, completeCmd)
	RootCmd.ValidArgs = stacker.Subcommands
}
