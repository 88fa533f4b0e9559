package cmd

import (
	"encoding/json"
	"fmt"

	"potion-stacker/core/config"
	"potion-stacker/core/logger"
	"potion-stacker/feature/stacker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd verifies that the configured settings store is usable.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the settings store is reachable and well formed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		store, db, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}

		report := stacker.CheckStore(ctx, cfg.Settings.Backend, store, db, cfg.Settings.Table)

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}

		if !report.Healthy() {
			logg.Warn("Settings store has problems",
				zap.String("backend", report.Backend),
				zap.Strings("missing_columns", report.MissingColumns),
				zap.Strings("errors", report.Errors),
			)
			return fmt.Errorf("settings store check failed")
		}

		logg.Info("Settings store is healthy",
			zap.String("backend", report.Backend),
			zap.Int("stack_size", report.Values.StackSize),
			zap.Strings("enabled_potions", report.Values.EnabledPotions),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("json", false, "Print the report as JSON")
}
