package market

import (
	"sync"
	"time"

	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"
)

// Store holds the last reconciled view for one owner session. It is the
// single mutable resource of the feature: full-view replacement and
// optimistic transitions both go through it, and every mutation is atomic
// with respect to concurrent reads.
//
// Optimistic transitions (MarkListed, ApplyMintResult) are a display
// convenience for the window between a confirmed transaction and the next
// full reconciliation. They are idempotent, and a full reconciliation
// always wins over them.
type Store struct {
	mu   sync.RWMutex
	view models.View
}

// NewStore creates an empty store for the given owner.
func NewStore(owner string) *Store {
	return &Store{view: models.View{Owner: owner}}
}

// View returns a deep copy of the current view.
func (s *Store) View() *models.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Clone()
}

// Seq returns the sequence number of the installed view.
func (s *Store) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Seq
}

// Replace installs a freshly reconciled view. A view whose sequence is
// not newer than the installed one is a late arrival from a superseded
// reconciliation and is discarded; Replace reports whether the view was
// installed.
func (s *Store) Replace(view *models.View) bool {
	if view == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if view.Seq <= s.view.Seq {
		return false
	}
	s.view = *view.Clone()
	return true
}

// MarkListed optimistically moves an asset from the owned set into the
// owner's listings right after a successful list transaction. Calling it
// again for the same id is a no-op. It reports whether the store changed.
func (s *Store) MarkListed(assetID string, price uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Already moved: idempotent no-op.
	for _, l := range s.view.ListedByUser {
		if l.ItemID == assetID {
			return false
		}
	}

	idx := -1
	for i, a := range s.view.OwnedAssets {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	asset := s.view.OwnedAssets[idx]
	s.view.OwnedAssets = append(s.view.OwnedAssets[:idx], s.view.OwnedAssets[idx+1:]...)

	listing := models.Listing{
		ItemID:      asset.ID,
		Seller:      s.view.Owner,
		Price:       price,
		TimestampMs: time.Now().UnixMilli(),
		Name:        asset.Name,
		Description: asset.Description,
		ImageRef:    asset.ImageRef,
	}
	// Newest first, matching ledger event order.
	s.view.ListedByUser = append([]models.Listing{listing}, s.view.ListedByUser...)
	s.view.Listings = append([]models.Listing{listing}, s.view.Listings...)
	return true
}

// ApplyMintResult optimistically appends a freshly minted asset to the
// owned set without waiting for a full refresh. Idempotent: an id already
// present anywhere in the view is left alone.
func (s *Store) ApplyMintResult(asset *models.Asset) bool {
	if asset == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.view.OwnedAssets {
		if a.ID == asset.ID {
			return false
		}
	}
	for _, l := range s.view.ListedByUser {
		if l.ItemID == asset.ID {
			return false
		}
	}

	s.view.OwnedAssets = append([]models.Asset{*asset}, s.view.OwnedAssets...)
	return true
}
