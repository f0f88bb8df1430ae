package market

import (
	"strconv"
	"strings"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"
)

// IntentBuilder constructs unsigned transaction intents for the three
// marketplace actions. All constructors are pure: they validate their
// inputs and return data, nothing else.
type IntentBuilder struct {
	cfg ledger.Config
}

// NewIntentBuilder creates a builder bound to the configured contracts.
func NewIntentBuilder(cfg ledger.Config) *IntentBuilder {
	return &IntentBuilder{cfg: cfg}
}

// MintIntent builds the intent for minting a new asset with the given
// display metadata. The name is required; description and image are not.
func (b *IntentBuilder) MintIntent(sender, name, description, imageRef string) (*ledger.TransactionIntent, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &ledger.TransactionIntent{
		Target: b.cfg.PackageID + "::nft::mint_nft",
		Sender: sender,
		Arguments: []ledger.Argument{
			{Kind: ledger.ArgPureString, Value: name},
			{Kind: ledger.ArgPureString, Value: description},
			{Kind: ledger.ArgPureString, Value: imageRef},
		},
	}, nil
}

// ListIntent builds the intent for listing an owned asset at the given
// price. Assets minted under a retired contract fail here, before any
// intent exists, with ErrIncompatibleVersion; attempting the call
// on-ledger would only fail later and less clearly.
func (b *IntentBuilder) ListIntent(sender string, asset *models.Asset, price uint64) (*ledger.TransactionIntent, error) {
	if asset == nil {
		return nil, ErrAssetNotFound
	}
	if !asset.ListingEligible {
		return nil, ErrIncompatibleVersion
	}
	if price == 0 {
		return nil, ErrInvalidPrice
	}
	return &ledger.TransactionIntent{
		Target: b.cfg.PackageID + "::marketplace::list_item",
		Sender: sender,
		Arguments: []ledger.Argument{
			{Kind: ledger.ArgObject, Value: b.cfg.MarketplaceID},
			{Kind: ledger.ArgObject, Value: asset.ID},
			{Kind: ledger.ArgPureU64, Value: formatU64(price)},
		},
		TypeArguments: []string{b.cfg.NFTType()},
	}, nil
}

// PurchaseIntent builds the intent for buying a listed item. The exact
// payment is split from the buyer's gas coin so no change handling is
// needed on-ledger.
func (b *IntentBuilder) PurchaseIntent(sender, itemID string, price uint64) (*ledger.TransactionIntent, error) {
	if price == 0 {
		return nil, ErrInvalidPrice
	}
	return &ledger.TransactionIntent{
		Target: b.cfg.PackageID + "::marketplace::purchase_item",
		Sender: sender,
		Arguments: []ledger.Argument{
			{Kind: ledger.ArgObject, Value: b.cfg.MarketplaceID},
			{Kind: ledger.ArgPureID, Value: itemID},
			{Kind: ledger.ArgPayment},
		},
		TypeArguments: []string{b.cfg.NFTType()},
		PaymentAmount: price,
	}, nil
}

// formatU64 renders a u64 argument in the decimal form the node expects.
func formatU64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
