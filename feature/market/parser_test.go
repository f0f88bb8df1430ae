package market

import (
	"testing"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedgerConfig() ledger.Config {
	return ledger.Config{
		PackageID:       "0xaaa",
		LegacyPackageID: "0xbbb",
		MarketplaceID:   "0xmarket",
		EventPageSize:   50,
	}
}

func TestParser_Classify(t *testing.T) {
	p := NewParser(testLedgerConfig())

	tests := []struct {
		name       string
		typeTag    string
		wantKind   RecordKind
		wantLegacy bool
	}{
		{"CurrentNFT", "0xaaa::nft::NFT", RecordDirect, false},
		{"LegacyNFT", "0xbbb::nft::NFT", RecordDirect, true},
		{"CurrentHolder", "0xaaa::marketplace::ListedItem<0xaaa::nft::NFT>", RecordWrapped, false},
		{"LegacyHolder", "0xbbb::marketplace::Listing<0xbbb::nft::NFT>", RecordWrapped, true},
		{"ForeignType", "0xccc::coin::Coin", RecordUnrecognized, false},
		{"Empty", "", RecordUnrecognized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, legacy := p.Classify(tt.typeTag)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantLegacy, legacy)
		})
	}
}

func TestParser_ParseAsset_Direct(t *testing.T) {
	p := NewParser(testLedgerConfig())

	asset, ok := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x123",
		Type:     "0xaaa::nft::NFT",
		Owner:    "0xowner",
		Content: map[string]any{
			"name":        "Blue Cat",
			"description": "a cat",
			"image_url":   "https://img/cat.png",
		},
	})
	require.True(t, ok)
	assert.Equal(t, "0x123", asset.ID)
	assert.Equal(t, "Blue Cat", asset.Name)
	assert.Equal(t, "a cat", asset.Description)
	assert.Equal(t, "https://img/cat.png", asset.ImageRef)
	assert.Equal(t, "0xowner", asset.Owner)
	assert.False(t, asset.IsWrapped)
	assert.True(t, asset.ListingEligible)
}

func TestParser_ParseAsset_FieldVariants(t *testing.T) {
	p := NewParser(testLedgerConfig())

	tests := []struct {
		name      string
		content   map[string]any
		wantName  string
		wantDesc  string
		wantImage string
	}{
		{
			name:      "TitleInsteadOfName",
			content:   map[string]any{"title": "Old Style", "desc": "legacy fields", "url": "https://img/x.png"},
			wantName:  "Old Style",
			wantDesc:  "legacy fields",
			wantImage: "https://img/x.png",
		},
		{
			name:      "FirstCandidateWins",
			content:   map[string]any{"name": "New", "title": "Old"},
			wantName:  "New",
			wantDesc:  "",
			wantImage: "",
		},
		{
			name:      "ImageKeyFallsThrough",
			content:   map[string]any{"name": "X", "image": "https://img/last.png"},
			wantName:  "X",
			wantImage: "https://img/last.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, ok := p.ParseAsset(ledger.RawObject{
				ObjectID: "0x1",
				Type:     "0xaaa::nft::NFT",
				Content:  tt.content,
			})
			require.True(t, ok)
			assert.Equal(t, tt.wantName, asset.Name)
			assert.Equal(t, tt.wantDesc, asset.Description)
			assert.Equal(t, tt.wantImage, asset.ImageRef)
		})
	}
}

func TestParser_ParseAsset_Wrapped(t *testing.T) {
	p := NewParser(testLedgerConfig())

	t.Run("InnerKey", func(t *testing.T) {
		asset, ok := p.ParseAsset(ledger.RawObject{
			ObjectID: "0xholder",
			Type:     "0xaaa::marketplace::ListedItem<0xaaa::nft::NFT>",
			Owner:    "0xmarket",
			Content: map[string]any{
				"inner": map[string]any{"name": "Wrapped Cat", "description": "inside"},
			},
		})
		require.True(t, ok)
		assert.True(t, asset.IsWrapped)
		assert.False(t, asset.ListingEligible)
		assert.Equal(t, "Wrapped Cat", asset.Name)
		assert.Equal(t, "inside", asset.Description)
	})

	t.Run("FieldsEnvelope", func(t *testing.T) {
		// Nodes wrap nested move structs in a {type, fields} envelope.
		asset, ok := p.ParseAsset(ledger.RawObject{
			ObjectID: "0xholder",
			Type:     "0xaaa::marketplace::ListedItem<0xaaa::nft::NFT>",
			Content: map[string]any{
				"item": map[string]any{
					"type":   "0xaaa::nft::NFT",
					"fields": map[string]any{"name": "Enveloped"},
				},
			},
		})
		require.True(t, ok)
		assert.Equal(t, "Enveloped", asset.Name)
	})

	t.Run("MissingInner", func(t *testing.T) {
		_, ok := p.ParseAsset(ledger.RawObject{
			ObjectID: "0xholder",
			Type:     "0xaaa::marketplace::ListedItem<0xaaa::nft::NFT>",
			Content:  map[string]any{"price": "100"},
		})
		assert.False(t, ok)
	})

	t.Run("InactiveHolder", func(t *testing.T) {
		_, ok := p.ParseAsset(ledger.RawObject{
			ObjectID: "0xholder",
			Type:     "0xbbb::marketplace::Listing<0xbbb::nft::NFT>",
			Content: map[string]any{
				"active": "0",
				"inner":  map[string]any{"name": "Stale"},
			},
		})
		assert.False(t, ok)
	})
}

// A wrapped holder whose inner fields encode asset X must resolve to the
// same display metadata as X parsed directly.
func TestParser_WrappedCorrelation(t *testing.T) {
	p := NewParser(testLedgerConfig())

	content := map[string]any{
		"name":        "Correlated",
		"description": "same either way",
		"image_url":   "https://img/c.png",
	}

	direct, ok := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x1", Type: "0xaaa::nft::NFT", Content: content,
	})
	require.True(t, ok)

	wrapped, ok := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x2",
		Type:     "0xaaa::marketplace::ListedItem<0xaaa::nft::NFT>",
		Content:  map[string]any{"inner": content},
	})
	require.True(t, ok)

	assert.Equal(t, direct.Name, wrapped.Name)
	assert.Equal(t, direct.Description, wrapped.Description)
	assert.Equal(t, direct.ImageRef, wrapped.ImageRef)
}

func TestParser_ParseAsset_DisplayFallback(t *testing.T) {
	p := NewParser(testLedgerConfig())

	asset, ok := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x1",
		Type:     "0xaaa::nft::NFT",
		Content:  map[string]any{},
		Display: map[string]string{
			"name":        "From Display",
			"description": "display desc",
			"image_url":   "https://img/d.png",
		},
	})
	require.True(t, ok)
	assert.Equal(t, "From Display", asset.Name)
	assert.Equal(t, "display desc", asset.Description)
	assert.Equal(t, "https://img/d.png", asset.ImageRef)
}

func TestParser_ParseAsset_PlaceholderName(t *testing.T) {
	p := NewParser(testLedgerConfig())

	asset, ok := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x9f2c41b7e5d8a3f6",
		Type:     "0xaaa::nft::NFT",
	})
	require.True(t, ok)
	assert.Equal(t, "Asset 0x9f2c41b7", asset.Name)

	// Deterministic: parsing twice yields the same name.
	again, _ := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x9f2c41b7e5d8a3f6",
		Type:     "0xaaa::nft::NFT",
	})
	assert.Equal(t, asset.Name, again.Name)
}

func TestParser_ParseAsset_LegacyEligibility(t *testing.T) {
	p := NewParser(testLedgerConfig())

	asset, ok := p.ParseAsset(ledger.RawObject{
		ObjectID: "0x1",
		Type:     "0xbbb::nft::NFT",
		Content:  map[string]any{"name": "Old Mint"},
	})
	require.True(t, ok)
	assert.Equal(t, "Old Mint", asset.Name)
	assert.False(t, asset.ListingEligible)
}

func TestParser_ParseMintEvent(t *testing.T) {
	p := NewParser(testLedgerConfig())

	t.Run("Complete", func(t *testing.T) {
		rec, ok := p.ParseMintEvent(ledger.RawEvent{
			TxDigest: "digest-1",
			ParsedJSON: map[string]any{
				"object_id":   "0x1",
				"name":        "Minted",
				"description": "fresh",
				"image_url":   "https://img/m.png",
			},
		})
		require.True(t, ok)
		assert.Equal(t, "0x1", rec.ObjectID)
		assert.Equal(t, "Minted", rec.Name)
		assert.Equal(t, "digest-1", rec.TxDigest)
	})

	t.Run("AlternateIDKey", func(t *testing.T) {
		rec, ok := p.ParseMintEvent(ledger.RawEvent{
			ParsedJSON: map[string]any{"nft_id": "0x2", "name": "Alt"},
		})
		require.True(t, ok)
		assert.Equal(t, "0x2", rec.ObjectID)
	})

	t.Run("NoID", func(t *testing.T) {
		_, ok := p.ParseMintEvent(ledger.RawEvent{
			ParsedJSON: map[string]any{"name": "Orphan"},
		})
		assert.False(t, ok)
	})
}

func TestParser_ParseListingEvent(t *testing.T) {
	p := NewParser(testLedgerConfig())

	t.Run("PriceAsString", func(t *testing.T) {
		l, ok := p.ParseListingEvent(ledger.RawEvent{
			TimestampMs: 1700000000000,
			ParsedJSON: map[string]any{
				"item_id": "0x1",
				"seller":  "0xseller",
				"price":   "1000000000",
			},
		})
		require.True(t, ok)
		assert.Equal(t, "0x1", l.ItemID)
		assert.Equal(t, "0xseller", l.Seller)
		assert.Equal(t, uint64(1000000000), l.Price)
		assert.Equal(t, int64(1700000000000), l.TimestampMs)
	})

	t.Run("PriceAsNumber", func(t *testing.T) {
		l, ok := p.ParseListingEvent(ledger.RawEvent{
			ParsedJSON: map[string]any{"item_id": "0x1", "price": float64(500)},
		})
		require.True(t, ok)
		assert.Equal(t, uint64(500), l.Price)
	})

	t.Run("NoItemID", func(t *testing.T) {
		_, ok := p.ParseListingEvent(ledger.RawEvent{
			ParsedJSON: map[string]any{"seller": "0xseller"},
		})
		assert.False(t, ok)
	})
}
