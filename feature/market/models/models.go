package models

import "time"

// Asset is one mintable, ownable collectible in its canonical form.
// All raw ledger shapes (direct NFT, wrapped listing holder, legacy
// contract variants) normalize into this record.
type Asset struct {
	// ID is the ledger object id. Globally unique, immutable.
	ID string `json:"id"`

	// Name is the display name. Never empty: when the ledger carries no
	// metadata a deterministic placeholder derived from ID is used.
	Name string `json:"name"`

	// Description is the display description. May be empty.
	Description string `json:"description"`

	// ImageRef is the display image URL. May be empty.
	ImageRef string `json:"imageRef"`

	// Owner is the current holder address. Mutated only by confirmed
	// ledger transactions, never locally.
	Owner string `json:"owner"`

	// IsWrapped is true when the raw object was a marketplace holder
	// wrapping the asset rather than the asset itself.
	IsWrapped bool `json:"isWrapped"`

	// ListingEligible is false for assets minted under a retired contract
	// package. Such assets are displayed but cannot be listed.
	ListingEligible bool `json:"listingEligible"`

	// Provenance is the digest of the mint transaction, when known.
	// Used only for metadata correlation, never for ownership authority.
	Provenance string `json:"provenance,omitempty"`
}

// Listing is one asset currently offered for sale.
type Listing struct {
	// ItemID is the ledger object id being sold. For wrapped listings this
	// is the holder's id, not the inner asset's.
	ItemID string `json:"itemId"`

	// Seller is the address that created the listing.
	Seller string `json:"seller"`

	// Price is the asking price in the ledger's smallest unit (MIST).
	// No layer converts units silently.
	Price uint64 `json:"price"`

	// TimestampMs is the ledger-assigned event time. Ordering only; the
	// ledger stays authoritative on whether the listing still exists.
	TimestampMs int64 `json:"timestampMs"`

	// Display enrichment, best effort.
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageRef    string `json:"imageRef,omitempty"`
}

// View is one internally consistent snapshot of marketplace state for a
// single owner: what is for sale network-wide, what the owner holds
// privately, and what the owner has listed.
type View struct {
	// Listings are all active listings network-wide, newest first.
	Listings []Listing `json:"listings"`

	// OwnedAssets are the owner's unlisted assets, newest first.
	OwnedAssets []Asset `json:"ownedAssets"`

	// ListedByUser are the owner's own active listings, newest first.
	ListedByUser []Listing `json:"listedByUser"`

	// Owner is the address this view was built for.
	Owner string `json:"owner"`

	// Seq is the monotonic reconciliation sequence that produced this view.
	Seq uint64 `json:"seq"`

	// BuiltAt is when the reconciliation completed.
	BuiltAt time.Time `json:"builtAt"`

	// Degraded is true when a transient fault left the view partial or
	// possibly stale. Consumers may render it but should offer a retry.
	Degraded bool `json:"degraded"`
}

// Clone returns a deep copy of the view. Readers of the local state store
// always get a clone so no caller can observe a partially updated view.
func (v *View) Clone() *View {
	if v == nil {
		return nil
	}
	out := *v
	out.Listings = append([]Listing(nil), v.Listings...)
	out.OwnedAssets = append([]Asset(nil), v.OwnedAssets...)
	out.ListedByUser = append([]Listing(nil), v.ListedByUser...)
	return &out
}
