package cmd

import (
	"fmt"
	"os"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "NFT Marketplace Service",
	Long: `Marketplace is the backend for minting, listing, and purchasing
collectible assets on a shared ledger. It reconciles raw ledger state into
one consistent view and serves it over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// Console format matches CLI expectations, debug level gives
		// ISO8601 timestamps instead of epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
