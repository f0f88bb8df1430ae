package market

import (
	"strings"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/utils"
	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"
)

// RecordKind classifies a raw ledger object's shape.
type RecordKind int

const (
	// RecordUnrecognized means the object is not an asset shape the
	// engine understands. Not an error; the object is simply omitted.
	RecordUnrecognized RecordKind = iota
	// RecordDirect means an NFT object with fields at the top level.
	RecordDirect
	// RecordWrapped means a marketplace holder object wrapping an inner
	// NFT under a nested sub-structure.
	RecordWrapped
)

// Field naming has drifted across contract versions; each logical
// attribute is resolved through an ordered candidate list, first present
// wins.
var (
	nameKeys  = []string{"name", "title"}
	descKeys  = []string{"description", "desc"}
	imageKeys = []string{"image_url", "url", "image"}
	innerKeys = []string{"inner", "item", "nft"}
)

// MintRecord is the metadata captured by a historical mint event. It is
// the most trusted metadata source: on-ledger display registration is
// optional and often missing, but the mint event always carried the
// original values.
type MintRecord struct {
	ObjectID    string
	Name        string
	Description string
	ImageRef    string
	TxDigest    string
}

// Parser normalizes heterogeneous raw ledger objects into canonical
// Asset records.
type Parser struct {
	cfg ledger.Config
}

// NewParser creates a parser bound to the configured contract packages.
func NewParser(cfg ledger.Config) *Parser {
	return &Parser{cfg: cfg}
}

// Classify maps a move type tag to a record kind and reports whether the
// object belongs to the retired contract package.
func (p *Parser) Classify(typeTag string) (kind RecordKind, legacy bool) {
	switch {
	case typeTag == p.cfg.NFTType():
		return RecordDirect, false
	case p.cfg.LegacyNFTType() != "" && typeTag == p.cfg.LegacyNFTType():
		return RecordDirect, true
	// Holder types are generic over the inner asset, so match by prefix.
	case strings.HasPrefix(typeTag, p.cfg.ListedItemType()):
		return RecordWrapped, false
	case p.cfg.LegacyListedItemType() != "" && strings.HasPrefix(typeTag, p.cfg.LegacyListedItemType()):
		return RecordWrapped, true
	default:
		return RecordUnrecognized, false
	}
}

// ParseAsset produces zero or one canonical Asset from a raw object.
// The second return value is false when the object is not a recognizable
// asset shape; that is a clean "no match", never an error.
//
// Metadata resolution inside the raw object follows the trust order
// content fields, then display metadata, then a placeholder derived from
// the object id. Mint-event enrichment sits above both and is applied by
// the engine.
func (p *Parser) ParseAsset(obj ledger.RawObject) (*models.Asset, bool) {
	kind, legacy := p.Classify(obj.Type)
	if kind == RecordUnrecognized {
		return nil, false
	}

	fields := obj.Content
	if kind == RecordWrapped {
		inner, ok := innerFields(fields)
		if !ok {
			return nil, false
		}
		// Legacy holders keep an "active" flag; an explicitly inactive
		// holder is a stale record, not a live asset.
		if raw, present := fields["active"]; present && !utils.ToBool(raw) {
			return nil, false
		}
		fields = inner
	}

	asset := &models.Asset{
		ID:              obj.ObjectID,
		Name:            firstString(fields, nameKeys),
		Description:     firstString(fields, descKeys),
		ImageRef:        firstString(fields, imageKeys),
		Owner:           obj.Owner,
		IsWrapped:       kind == RecordWrapped,
		ListingEligible: !legacy && kind == RecordDirect,
	}

	// Display metadata is the next trust level down from content fields.
	if asset.Name == "" {
		asset.Name = obj.Display["name"]
	}
	if asset.Description == "" {
		asset.Description = obj.Display["description"]
	}
	if asset.ImageRef == "" {
		asset.ImageRef = obj.Display["image_url"]
	}

	if asset.Name == "" {
		asset.Name = placeholderName(asset.ID)
	}

	return asset, true
}

// ParseMintEvent extracts a metadata record from a historical mint event.
func (p *Parser) ParseMintEvent(event ledger.RawEvent) (MintRecord, bool) {
	id := firstString(event.ParsedJSON, []string{"object_id", "id", "nft_id"})
	if id == "" {
		return MintRecord{}, false
	}
	return MintRecord{
		ObjectID:    id,
		Name:        firstString(event.ParsedJSON, nameKeys),
		Description: firstString(event.ParsedJSON, descKeys),
		ImageRef:    firstString(event.ParsedJSON, imageKeys),
		TxDigest:    event.TxDigest,
	}, true
}

// ParseListingEvent extracts a Listing from an ItemListed event. Events
// without an item id are skipped.
func (p *Parser) ParseListingEvent(event ledger.RawEvent) (models.Listing, bool) {
	itemID := firstString(event.ParsedJSON, []string{"item_id", "id", "listing_id"})
	if itemID == "" {
		return models.Listing{}, false
	}
	return models.Listing{
		ItemID:      itemID,
		Seller:      firstString(event.ParsedJSON, []string{"seller", "owner"}),
		Price:       utils.ToUint64(event.ParsedJSON["price"]),
		TimestampMs: event.TimestampMs,
		Name:        firstString(event.ParsedJSON, nameKeys),
		Description: firstString(event.ParsedJSON, descKeys),
		ImageRef:    firstString(event.ParsedJSON, imageKeys),
	}, true
}

// innerFields locates the wrapped asset's field map under the holder's
// nested sub-structure, trying the candidate keys in order. Nodes encode
// nested move structs either as the field map itself or as an envelope
// with a "fields" entry.
func innerFields(fields map[string]any) (map[string]any, bool) {
	for _, key := range innerKeys {
		raw, present := fields[key]
		if !present {
			continue
		}
		nested, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if envelope, ok := nested["fields"].(map[string]any); ok {
			return envelope, true
		}
		return nested, true
	}
	return nil, false
}

// firstString returns the first non-empty string value among the
// candidate keys. Explicit ordered lookup, never speculative access.
func firstString(fields map[string]any, keys []string) string {
	if fields == nil {
		return ""
	}
	for _, key := range keys {
		raw, present := fields[key]
		if !present || raw == nil {
			continue
		}
		if s := utils.ToString(raw); s != "" && s != "<nil>" {
			return s
		}
	}
	return ""
}

// placeholderName derives a deterministic display name from the object id
// for assets whose metadata never made it on ledger.
func placeholderName(id string) string {
	const prefixLen = 10
	if len(id) > prefixLen {
		return "Asset " + id[:prefixLen]
	}
	return "Asset " + id
}
