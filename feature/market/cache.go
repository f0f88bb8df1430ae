package market

import (
	"sync"
	"time"

	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"

	"golang.org/x/sync/singleflight"
)

// viewCache throttles full reconciliations. The ledger's indexer tolerates
// only so much query pressure, so a rebuilt view is considered current for
// a fixed minimum interval per owner; requests inside the window get the
// cached view unchanged. Singleflight collapses concurrent rebuilds for
// the same owner into one query burst.
type viewCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	sf      singleflight.Group
}

type cacheEntry struct {
	view  *models.View
	built time.Time
}

func newViewCache(ttl time.Duration) *viewCache {
	return &viewCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached view for the owner if it is still inside the
// throttle window.
func (c *viewCache) get(owner string) (*models.View, bool) {
	c.mu.RLock()
	entry, exists := c.entries[owner]
	c.mu.RUnlock()

	if !exists || c.ttl <= 0 {
		return nil, false
	}
	if time.Since(entry.built) > c.ttl {
		return nil, false
	}
	return entry.view.Clone(), true
}

// put stores a freshly built view for the owner.
func (c *viewCache) put(owner string, view *models.View) {
	c.mu.Lock()
	c.entries[owner] = &cacheEntry{view: view.Clone(), built: time.Now()}
	c.mu.Unlock()
}

// invalidate drops the owner's entry so the next request rebuilds,
// bypassing the throttle window. Used by explicit user refreshes and
// after purchases.
func (c *viewCache) invalidate(owner string) {
	c.mu.Lock()
	delete(c.entries, owner)
	c.mu.Unlock()
}

// build runs fn under singleflight keyed by owner, so concurrent callers
// share one reconciliation instead of stampeding the node.
func (c *viewCache) build(owner string, fn func() (*models.View, error)) (*models.View, error) {
	result, err, _ := c.sf.Do(owner, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot: a concurrent
		// caller may have just rebuilt.
		if view, ok := c.get(owner); ok {
			return view, nil
		}
		view, err := fn()
		if err != nil {
			return nil, err
		}
		c.put(owner, view)
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.View), nil
}
