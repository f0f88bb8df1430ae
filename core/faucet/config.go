package faucet

// Config holds configuration for the network faucet.
type Config struct {
	// Endpoint is the faucet URL.
	Endpoint string `mapstructure:"endpoint" default:"https://faucet.testnet.sui.io/gas"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
