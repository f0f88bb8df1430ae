package market

import (
	"testing"

	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Replace(t *testing.T) {
	store := NewStore("0xowner")

	t.Run("InstallsNewerView", func(t *testing.T) {
		ok := store.Replace(&models.View{Owner: "0xowner", Seq: 2})
		assert.True(t, ok)
		assert.Equal(t, uint64(2), store.Seq())
	})

	t.Run("DiscardsStaleView", func(t *testing.T) {
		ok := store.Replace(&models.View{Owner: "0xowner", Seq: 1})
		assert.False(t, ok)
		assert.Equal(t, uint64(2), store.Seq())
	})

	t.Run("DiscardsEqualSeq", func(t *testing.T) {
		ok := store.Replace(&models.View{Owner: "0xowner", Seq: 2})
		assert.False(t, ok)
	})

	t.Run("DiscardsNil", func(t *testing.T) {
		assert.False(t, store.Replace(nil))
	})
}

func TestStore_ViewIsolation(t *testing.T) {
	store := NewStore("0xowner")
	require.True(t, store.Replace(&models.View{
		Owner:       "0xowner",
		Seq:         1,
		OwnedAssets: []models.Asset{{ID: "0x1", Name: "Original"}},
	}))

	got := store.View()
	got.OwnedAssets[0].Name = "Mutated"
	got.OwnedAssets = nil

	again := store.View()
	require.Len(t, again.OwnedAssets, 1)
	assert.Equal(t, "Original", again.OwnedAssets[0].Name)
}

func TestStore_MarkListed(t *testing.T) {
	setup := func() *Store {
		store := NewStore("0xowner")
		store.Replace(&models.View{
			Owner: "0xowner",
			Seq:   1,
			OwnedAssets: []models.Asset{
				{ID: "0x1", Name: "Cat", ImageRef: "https://img/cat.png", ListingEligible: true},
				{ID: "0x2", Name: "Dog", ListingEligible: true},
			},
		})
		return store
	}

	t.Run("MovesAssetIntoListings", func(t *testing.T) {
		store := setup()
		changed := store.MarkListed("0x1", 500)
		assert.True(t, changed)

		view := store.View()
		require.Len(t, view.OwnedAssets, 1)
		assert.Equal(t, "0x2", view.OwnedAssets[0].ID)

		require.Len(t, view.ListedByUser, 1)
		listed := view.ListedByUser[0]
		assert.Equal(t, "0x1", listed.ItemID)
		assert.Equal(t, "0xowner", listed.Seller)
		assert.Equal(t, uint64(500), listed.Price)
		assert.Equal(t, "Cat", listed.Name)
		assert.Equal(t, "https://img/cat.png", listed.ImageRef)

		// The global listing set picks up the new entry too.
		require.Len(t, view.Listings, 1)
		assert.Equal(t, "0x1", view.Listings[0].ItemID)
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := setup()
		require.True(t, store.MarkListed("0x1", 500))
		assert.False(t, store.MarkListed("0x1", 500))

		view := store.View()
		assert.Len(t, view.ListedByUser, 1)
		assert.Len(t, view.OwnedAssets, 1)
	})

	t.Run("UnknownAsset", func(t *testing.T) {
		store := setup()
		assert.False(t, store.MarkListed("0xmissing", 500))
	})
}

func TestStore_ApplyMintResult(t *testing.T) {
	setup := func() *Store {
		store := NewStore("0xowner")
		store.Replace(&models.View{
			Owner:       "0xowner",
			Seq:         1,
			OwnedAssets: []models.Asset{{ID: "0xold", Name: "Existing"}},
		})
		return store
	}

	t.Run("PrependsFreshMint", func(t *testing.T) {
		store := setup()
		changed := store.ApplyMintResult(&models.Asset{ID: "0xnew", Name: "Fresh"})
		assert.True(t, changed)

		view := store.View()
		require.Len(t, view.OwnedAssets, 2)
		assert.Equal(t, "0xnew", view.OwnedAssets[0].ID)
	})

	t.Run("Idempotent", func(t *testing.T) {
		store := setup()
		require.True(t, store.ApplyMintResult(&models.Asset{ID: "0xnew"}))
		assert.False(t, store.ApplyMintResult(&models.Asset{ID: "0xnew"}))
		assert.Len(t, store.View().OwnedAssets, 2)
	})

	t.Run("AlreadyListed", func(t *testing.T) {
		store := setup()
		store.Replace(&models.View{
			Owner:        "0xowner",
			Seq:          2,
			ListedByUser: []models.Listing{{ItemID: "0xlisted"}},
		})
		assert.False(t, store.ApplyMintResult(&models.Asset{ID: "0xlisted"}))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.False(t, setup().ApplyMintResult(nil))
	})
}

// A full reconciliation replaces the whole view, wiping any optimistic
// transitions applied since the previous one.
func TestStore_ReconciliationWinsOverOptimistic(t *testing.T) {
	store := NewStore("0xowner")
	store.Replace(&models.View{
		Owner:       "0xowner",
		Seq:         1,
		OwnedAssets: []models.Asset{{ID: "0x1", ListingEligible: true}},
	})
	require.True(t, store.MarkListed("0x1", 100))

	store.Replace(&models.View{
		Owner:       "0xowner",
		Seq:         2,
		OwnedAssets: []models.Asset{{ID: "0x1", ListingEligible: true}},
	})

	view := store.View()
	assert.Empty(t, view.ListedByUser)
	require.Len(t, view.OwnedAssets, 1)
	assert.Equal(t, "0x1", view.OwnedAssets[0].ID)
}
