package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/config"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/faucet"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/loader"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/logger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/middleware/auth"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/middleware/rayid"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/storage"

	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/matt0757/Alt-F4-NFTMarketplace/docs/swagger"
)

// @title NFT Marketplace API
// @version 1.0
// @description API for minting, listing, and purchasing collectible assets on a shared ledger.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the marketplace server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidNetwork() {
			logg.Fatal("Invalid network", zap.String("network", cfg.Server.Network))
		}
		logg = logg.With(zap.String("network", cfg.Server.Network))

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Initialize Ledger Gateway
		gateway := ledger.NewClient(cfg.Ledger)
		signer := ledger.NewGatewaySigner(gateway)

		// 5. Initialize Media Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.EnsureBucket(ensureCtx, store, cfg.Storage); err != nil {
			cancel()
			logg.Fatal("Failed to ensure media bucket", zap.Error(err))
		}
		cancel()

		// 6. Initialize Reconciliation Engine + Feature Loader
		interval := time.Duration(cfg.Market.MinQueryIntervalSeconds) * time.Second
		engine := market.NewEngine(gateway, cfg.Ledger, interval, logg)
		faucetClient := faucet.NewClient(cfg.Faucet)

		mgr := loader.NewManager()
		mgr.Register(market.NewFeature(engine, signer, store, cfg.Storage, faucetClient, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
