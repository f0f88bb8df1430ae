package server_test

import (
	"testing"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidNetwork(t *testing.T) {
	tests := []struct {
		name    string
		network string
		want    bool
	}{
		{"Testnet", server.NetworkTestnet, true},
		{"Devnet", server.NetworkDevnet, true},
		{"Mainnet", server.NetworkMainnet, true},
		{"Invalid", "localnet", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Network: tt.network}
			assert.Equal(t, tt.want, c.IsValidNetwork())
		})
	}
}
