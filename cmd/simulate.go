package cmd

import (
	"fmt"
	"os"

	"potion-stacker/feature/stacker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// simulateCmd replays a YAML scenario through the stacker.
var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay click and pickup interactions from a scenario file",
	Long: `Replays a scripted sequence of drag-merges and pickups over an inventory and
prints each outcome and the final inventory.

If the scenario has a settings block it is used instead of the configured
store, which is then left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open scenario: %w", err)
		}
		defer f.Close()

		sc, err := stacker.LoadScenario(f)
		if err != nil {
			return err
		}

		a, err := bootstrap(cmd.Context(), sc.Settings)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		svc := a.feature.Service()
		out := cmd.OutOrStdout()
		for _, r := range svc.Run(sc) {
			switch r.Kind {
			case "click":
				fmt.Fprintf(out, "#%d click: %s cancelled=%t cursor=%s\n", r.Index, r.Result, r.Cancelled, r.Cursor)
			default:
				fmt.Fprintf(out, "#%d pickup: %s cancelled=%t residual=%d removed=%t\n", r.Index, r.Result, r.Cancelled, r.Residual, r.Removed)
			}
		}

		fmt.Fprintln(out, "\n=== Final Inventory ===")
		for i, slot := range sc.Inventory.Slots {
			fmt.Fprintf(out, "%2d: %s\n", i, slot)
		}

		families, err := svc.Metrics().Gather()
		if err != nil {
			a.logger.Warn("Failed to gather metrics", zap.Error(err))
			return nil
		}
		fmt.Fprintln(out, "\n=== Metrics ===")
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				labels := ""
				for _, lp := range m.GetLabel() {
					labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
				}
				fmt.Fprintf(out, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(simulateCmd)
}
