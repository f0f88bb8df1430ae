package market

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"

	"go.uber.org/zap"
)

// Engine turns raw, eventually consistent ledger reads into one
// deduplicated, internally consistent view per owner: network-wide
// listings, the owner's unlisted assets, and the owner's own listings.
type Engine struct {
	gw     ledger.Gateway
	parser *Parser
	cfg    ledger.Config
	logger *zap.Logger
	cache  *viewCache

	mu     sync.Mutex
	stores map[string]*Store
	seqs   map[string]uint64
}

// NewEngine creates a reconciliation engine. minInterval is the throttle
// window between full reconciliations per owner.
func NewEngine(gw ledger.Gateway, cfg ledger.Config, minInterval time.Duration, logger *zap.Logger) *Engine {
	return &Engine{
		gw:     gw,
		parser: NewParser(cfg),
		cfg:    cfg,
		logger: logger,
		cache:  newViewCache(minInterval),
		stores: make(map[string]*Store),
		seqs:   make(map[string]uint64),
	}
}

// Parser exposes the engine's record parser.
func (e *Engine) Parser() *Parser {
	return e.parser
}

// StoreFor returns the local state store for the owner, creating it on
// first use.
func (e *Engine) StoreFor(owner string) *Store {
	e.mu.Lock()
	defer e.mu.Unlock()
	store, exists := e.stores[owner]
	if !exists {
		store = NewStore(owner)
		e.stores[owner] = store
	}
	return store
}

// nextSeq hands out the monotonic reconciliation sequence for an owner.
// A reconciliation superseded by a newer one carries an older sequence
// and its late result is discarded by the store.
func (e *Engine) nextSeq(owner string) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seqs[owner]++
	return e.seqs[owner]
}

// Invalidate drops the owner's cached view so the next BuildView bypasses
// the throttle window.
func (e *Engine) Invalidate(owner string) {
	e.cache.invalidate(owner)
}

// BuildView returns the reconciled view for the owner. Inside the
// throttle window the last known view is returned unchanged; otherwise a
// full reconciliation runs, with concurrent callers for the same owner
// sharing one run.
func (e *Engine) BuildView(ctx context.Context, owner string) (*models.View, error) {
	if view, ok := e.cache.get(owner); ok {
		return view, nil
	}
	return e.cache.build(owner, func() (*models.View, error) {
		return e.reconcile(ctx, owner)
	})
}

// reconcile performs one full reconciliation for the owner.
func (e *Engine) reconcile(ctx context.Context, owner string) (*models.View, error) {
	seq := e.nextSeq(owner)
	start := time.Now()

	var (
		listings    []models.Listing
		mintRecords map[string]MintRecord
		ownedRaw    []ledger.RawObject
		listingsErr error
		mintErr     error
		ownedErr    error
		wg          sync.WaitGroup
	)

	// The three loads are independent of each other; only the
	// cross-referencing below needs all of them.
	wg.Add(3)

	go func() {
		defer wg.Done()
		listings, listingsErr = e.loadListings(ctx)
	}()

	go func() {
		defer wg.Done()
		mintRecords, mintErr = e.loadMintRecords(ctx)
	}()

	go func() {
		defer wg.Done()
		ownedRaw, ownedErr = e.loadOwnedObjects(ctx, owner)
	}()

	wg.Wait()

	if listingsErr != nil {
		return nil, listingsErr
	}
	if mintErr != nil {
		return nil, mintErr
	}
	if ownedErr != nil {
		return nil, ownedErr
	}

	view := &models.View{
		Owner:   owner,
		Seq:     seq,
		BuiltAt: time.Now(),
	}

	// Listings: dedupe, drop entries whose object no longer resolves
	// (sold, cancelled, stale), enrich the survivors.
	seen := make(map[string]struct{}, len(listings))
	for _, l := range listings {
		if _, dup := seen[l.ItemID]; dup {
			continue
		}
		seen[l.ItemID] = struct{}{}

		obj, err := e.gw.GetObject(ctx, l.ItemID)
		if err != nil {
			// Transient fault: keep the listing but mark the view so
			// consumers know it may be stale.
			e.logger.Warn("listing liveness check failed",
				zap.String("item_id", l.ItemID), zap.Error(err))
			view.Degraded = true
		} else if obj == nil {
			continue
		}

		e.enrichListing(&l, mintRecords, obj)
		view.Listings = append(view.Listings, l)
	}

	// The event log is authoritative for set membership: an asset whose id
	// appears in the network listings is for sale, not privately held, no
	// matter who holds the ledger-level object right now.
	listedIDs := make(map[string]struct{}, len(view.Listings))
	for _, l := range view.Listings {
		listedIDs[l.ItemID] = struct{}{}
	}

	ownedSeen := make(map[string]struct{}, len(ownedRaw))
	for _, raw := range ownedRaw {
		asset, ok := e.parser.ParseAsset(raw)
		if !ok {
			continue
		}
		if _, dup := ownedSeen[asset.ID]; dup {
			continue
		}
		ownedSeen[asset.ID] = struct{}{}
		if _, listed := listedIDs[asset.ID]; listed {
			continue
		}
		applyMintRecord(asset, mintRecords)
		view.OwnedAssets = append(view.OwnedAssets, *asset)
	}

	for _, l := range view.Listings {
		if l.Seller == owner {
			view.ListedByUser = append(view.ListedByUser, l)
		}
	}

	store := e.StoreFor(owner)
	if !store.Replace(view) {
		// A newer reconciliation finished first; this result is stale.
		e.logger.Debug("discarding superseded reconciliation",
			zap.String("owner", owner), zap.Uint64("seq", seq))
		return store.View(), nil
	}

	e.logger.Info("reconciliation complete",
		zap.String("owner", owner),
		zap.Uint64("seq", seq),
		zap.Int("listings", len(view.Listings)),
		zap.Int("owned", len(view.OwnedAssets)),
		zap.Int("listed_by_user", len(view.ListedByUser)),
		zap.Bool("degraded", view.Degraded),
		zap.Duration("took", time.Since(start)))

	return view.Clone(), nil
}

// SpliceMintResult folds a successful mint into the in-memory view
// without a full re-query. The owner index may not reflect the new object
// yet, but a point lookup by id is immediately consistent, so each
// created reference is fetched directly and spliced in.
func (e *Engine) SpliceMintResult(ctx context.Context, owner string, res *ledger.ExecutionResult) ([]models.Asset, error) {
	if !res.Succeeded() {
		return nil, nil
	}

	store := e.StoreFor(owner)
	var spliced []models.Asset

	for _, ref := range res.Created {
		if kind, _ := e.parser.Classify(ref.Type); kind != RecordDirect {
			continue
		}
		obj, err := e.gw.GetObject(ctx, ref.ObjectID)
		if err != nil {
			return spliced, err
		}
		if obj == nil {
			continue
		}
		asset, ok := e.parser.ParseAsset(*obj)
		if !ok {
			continue
		}
		asset.Provenance = res.Digest
		if store.ApplyMintResult(asset) {
			spliced = append(spliced, *asset)
		}
	}

	// Keep the throttle cache aligned with the spliced store so a view
	// request inside the window sees the new asset.
	if len(spliced) > 0 {
		e.cache.put(owner, store.View())
	}
	return spliced, nil
}

// MarkListed folds a successful list transaction into the owner's local
// view. As with mint splicing, the throttle cache is re-aligned with the
// store so a view request inside the window sees the transition.
func (e *Engine) MarkListed(owner, assetID string, price uint64) bool {
	store := e.StoreFor(owner)
	if !store.MarkListed(assetID, price) {
		return false
	}
	e.cache.put(owner, store.View())
	return true
}

// loadListings queries the network-wide listing events, newest first,
// across both contract versions.
func (e *Engine) loadListings(ctx context.Context) ([]models.Listing, error) {
	eventTypes := []string{e.cfg.ItemListedEvent()}
	if legacy := e.cfg.LegacyItemListedEvent(); legacy != "" {
		eventTypes = append(eventTypes, legacy)
	}

	var listings []models.Listing
	for _, eventType := range eventTypes {
		events, err := e.gw.QueryEvents(ctx, eventType, e.cfg.EventPageSize, true)
		if err != nil {
			return nil, err
		}
		for _, event := range events {
			if l, ok := e.parser.ParseListingEvent(event); ok {
				listings = append(listings, l)
			}
		}
	}

	// Each source arrives newest first; merging the legacy stream requires
	// re-establishing global recency. Stable to preserve per-source order
	// for equal timestamps.
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].TimestampMs > listings[j].TimestampMs
	})
	return listings, nil
}

// loadMintRecords builds the id to metadata correlation map from
// historical mint events. This compensates for objects whose display
// metadata was never registered on-ledger.
func (e *Engine) loadMintRecords(ctx context.Context) (map[string]MintRecord, error) {
	eventTypes := []string{e.cfg.NFTMintedEvent()}
	if legacy := e.cfg.LegacyNFTMintedEvent(); legacy != "" {
		eventTypes = append(eventTypes, legacy)
	}

	records := make(map[string]MintRecord)
	for _, eventType := range eventTypes {
		events, err := e.gw.QueryEvents(ctx, eventType, e.cfg.EventPageSize, true)
		if err != nil {
			return nil, err
		}
		for _, event := range events {
			rec, ok := e.parser.ParseMintEvent(event)
			if !ok {
				continue
			}
			if _, exists := records[rec.ObjectID]; !exists {
				records[rec.ObjectID] = rec
			}
		}
	}
	return records, nil
}

// loadOwnedObjects queries the owner index once per recognized asset
// shape: direct NFTs and wrapped listing holders, over both contract
// versions.
func (e *Engine) loadOwnedObjects(ctx context.Context, owner string) ([]ledger.RawObject, error) {
	structTypes := []string{e.cfg.NFTType(), e.cfg.ListedItemType()}
	if legacy := e.cfg.LegacyNFTType(); legacy != "" {
		structTypes = append(structTypes, legacy)
	}
	if legacy := e.cfg.LegacyListedItemType(); legacy != "" {
		structTypes = append(structTypes, legacy)
	}

	var objects []ledger.RawObject
	for _, structType := range structTypes {
		batch, err := e.gw.GetOwnedObjects(ctx, owner, structType)
		if err != nil {
			return nil, err
		}
		objects = append(objects, batch...)
	}
	return objects, nil
}

// enrichListing fills the listing's display fields by trust order: the
// mint-event record for the item, then the live object's own fields, then
// whatever the listing event itself carried.
func (e *Engine) enrichListing(l *models.Listing, mintRecords map[string]MintRecord, obj *ledger.RawObject) {
	// The bare listing event already populated whatever it carried; the
	// mint record outranks it, so non-empty mint values overwrite.
	if rec, ok := mintRecords[l.ItemID]; ok {
		if rec.Name != "" {
			l.Name = rec.Name
		}
		if rec.Description != "" {
			l.Description = rec.Description
		}
		if rec.ImageRef != "" {
			l.ImageRef = rec.ImageRef
		}
	}
	if obj != nil {
		if asset, ok := e.parser.ParseAsset(*obj); ok {
			overlayListing(l, asset.Name, asset.Description, asset.ImageRef)
		}
	}
	if l.Name == "" {
		l.Name = placeholderName(l.ItemID)
	}
}

// overlayListing fills only the still-empty fields.
func overlayListing(l *models.Listing, name, description, imageRef string) {
	if l.Name == "" {
		l.Name = name
	}
	if l.Description == "" {
		l.Description = description
	}
	if l.ImageRef == "" {
		l.ImageRef = imageRef
	}
}

// applyMintRecord applies the most trusted metadata source on top of a
// parsed asset. Mint-event values win over object content and display.
func applyMintRecord(asset *models.Asset, mintRecords map[string]MintRecord) {
	rec, ok := mintRecords[asset.ID]
	if !ok {
		return
	}
	if rec.Name != "" {
		asset.Name = rec.Name
	}
	if rec.Description != "" {
		asset.Description = rec.Description
	}
	if rec.ImageRef != "" {
		asset.ImageRef = rec.ImageRef
	}
	if asset.Provenance == "" {
		asset.Provenance = rec.TxDigest
	}
}
