// Package config provides configuration management for the marketplace
// application.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, network)
//   - Ledger: fullnode endpoint and marketplace contract ids
//   - Faucet: test fund faucet endpoint
//   - Storage: S3/MinIO credentials for mint-image media
//   - Log: Logging level and format
//   - Market: reconciliation engine tuning (query throttle interval)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
