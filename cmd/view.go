package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/config"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/logger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market"
	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the view command
	viewJSON    bool
	viewRefresh bool
	viewRetries int
)

// viewCmd performs a one-shot reconciliation for an address and prints
// the resulting view.
var viewCmd = &cobra.Command{
	Use:   "view <address>",
	Short: "Build and print the reconciled marketplace view for an address",
	Long: `Build the reconciled marketplace view for an address: network-wide
listings, the address's unlisted assets, and the address's own listings.

Transient ledger faults are retried with backoff.

Examples:
  # Human-readable view
  view 0x3df3...

  # Machine-readable view
  view 0x3df3... --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := args[0]

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logCfg := logger.Config{Level: "info", Format: "console"}
		if viewJSON {
			// Keep stdout clean for the JSON document
			logCfg.Level = "error"
		}
		logg, err := logger.New(&logCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		gateway := ledger.NewClient(cfg.Ledger)
		interval := time.Duration(cfg.Market.MinQueryIntervalSeconds) * time.Second
		engine := market.NewEngine(gateway, cfg.Ledger, interval, logg)

		ctx := context.Background()

		// Transient faults are the caller's problem; a one-shot CLI retries
		// a few times before giving up.
		var view *models.View
		backoff := time.Second
		for attempt := 0; ; attempt++ {
			if viewRefresh {
				engine.Invalidate(address)
			}
			view, err = engine.BuildView(ctx, address)
			if err == nil {
				break
			}
			if attempt >= viewRetries {
				return fmt.Errorf("reconciliation failed after %d attempts: %w", attempt+1, err)
			}
			logg.Warn("reconciliation failed, retrying",
				zap.Int("attempt", attempt+1), zap.Error(err))
			time.Sleep(backoff)
			backoff *= 2
		}

		if viewJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		}

		printView(view)
		return nil
	},
}

func printView(view *models.View) {
	if view.Degraded {
		fmt.Println("warning: view is degraded (a transient ledger fault left it possibly stale)")
	}

	fmt.Printf("Listings (%d):\n", len(view.Listings))
	for _, l := range view.Listings {
		fmt.Printf("  %-66s  %12d  %s\n", l.ItemID, l.Price, l.Name)
	}

	fmt.Printf("\nOwned assets (%d):\n", len(view.OwnedAssets))
	for _, a := range view.OwnedAssets {
		note := ""
		if !a.ListingEligible {
			note = "  (legacy, not listable)"
		}
		fmt.Printf("  %-66s  %s%s\n", a.ID, a.Name, note)
	}

	fmt.Printf("\nListed by you (%d):\n", len(view.ListedByUser))
	for _, l := range view.ListedByUser {
		fmt.Printf("  %-66s  %12d  %s\n", l.ItemID, l.Price, l.Name)
	}
}

func init() {
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "Print the view as JSON")
	viewCmd.Flags().BoolVar(&viewRefresh, "refresh", false, "Bypass the throttle window")
	viewCmd.Flags().IntVar(&viewRetries, "retries", 3, "Retry attempts for transient ledger faults")
	RootCmd.AddCommand(viewCmd)
}
