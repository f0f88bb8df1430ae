package ledger

// Config holds configuration for the ledger RPC connection and the
// marketplace contract addresses.
type Config struct {
	// Endpoint is the fullnode JSON-RPC URL.
	Endpoint string `mapstructure:"endpoint" default:"https://fullnode.testnet.sui.io:443"`
	// Network is the target network name (testnet, devnet, mainnet).
	Network string `mapstructure:"network" default:"testnet"`
	// PackageID is the current marketplace contract package.
	PackageID string `mapstructure:"package_id" default:"0x05fbfd41840cf36971756bc6831d8af3ec8fdbf40e1202989b32f61391bc89db"`
	// LegacyPackageID is the retired contract package. Objects minted under it
	// are still displayed but can no longer be listed.
	LegacyPackageID string `mapstructure:"legacy_package_id" default:""`
	// MarketplaceID is the shared marketplace object id.
	MarketplaceID string `mapstructure:"marketplace_id" default:"0xb3388dcfdf7d14faf94bec7b75e20d74dac9faf9bc81a4760f54582c8b2d93c4"`
	// EventPageSize bounds event query pages.
	EventPageSize int `mapstructure:"event_page_size" default:"50"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// NFTType returns the full move type tag of the current NFT struct.
func (c Config) NFTType() string {
	return c.PackageID + "::nft::NFT"
}

// LegacyNFTType returns the NFT type tag of the retired package, or "" if
// no legacy package is configured.
func (c Config) LegacyNFTType() string {
	if c.LegacyPackageID == "" {
		return ""
	}
	return c.LegacyPackageID + "::nft::NFT"
}

// ListedItemType returns the type tag of the marketplace holder object that
// wraps an NFT while it is listed.
func (c Config) ListedItemType() string {
	return c.PackageID + "::marketplace::ListedItem"
}

// LegacyListedItemType returns the holder type tag of the retired package,
// or "" if no legacy package is configured.
func (c Config) LegacyListedItemType() string {
	if c.LegacyPackageID == "" {
		return ""
	}
	return c.LegacyPackageID + "::marketplace::Listing"
}

// ItemListedEvent returns the event type emitted when an item is listed.
func (c Config) ItemListedEvent() string {
	return c.PackageID + "::marketplace::ItemListed"
}

// LegacyItemListedEvent returns the listing event type of the retired
// package, or "" if no legacy package is configured.
func (c Config) LegacyItemListedEvent() string {
	if c.LegacyPackageID == "" {
		return ""
	}
	return c.LegacyPackageID + "::marketplace::ItemListed"
}

// NFTMintedEvent returns the event type emitted when an NFT is minted.
func (c Config) NFTMintedEvent() string {
	return c.PackageID + "::nft::NFTMinted"
}

// LegacyNFTMintedEvent returns the mint event type of the retired package,
// or "" if no legacy package is configured.
func (c Config) LegacyNFTMintedEvent() string {
	if c.LegacyPackageID == "" {
		return ""
	}
	return c.LegacyPackageID + "::nft::NFTMinted"
}
