package cmd

import (
	"fmt"
	"os"

	"potion-stacker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "potion-stacker",
	Short: "Potion stacking rules for inventories",
	Long: `Potion Stacker lets potions stack up to a configurable size when dragged
onto each other or picked up, optionally restricted to whitelisted effects.

The subcommands manage the stored settings and replay interaction scenarios.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// CLI errors always go to a console logger, whatever LOG_FORMAT says.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
