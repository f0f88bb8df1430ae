package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Network selects the target ledger network (testnet, devnet, mainnet).
	Network string `mapstructure:"network" default:"testnet"`
}

const (
	NetworkTestnet = "testnet"
	NetworkDevnet  = "devnet"
	NetworkMainnet = "mainnet"
)

// IsValidNetwork checks if the configured network is valid.
func (c Config) IsValidNetwork() bool {
	switch c.Network {
	case NetworkTestnet, NetworkDevnet, NetworkMainnet:
		return true
	default:
		return false
	}
}
