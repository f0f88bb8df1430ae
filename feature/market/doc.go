// Package market implements the marketplace feature: minting, listing,
// and purchasing collectible assets on a shared ledger.
//
// The ledger is the source of truth; this package only renders and
// mediates intent. Its heart is the reconciliation engine, which turns
// raw, eventually consistent ledger reads (owned-object queries,
// historical event logs, point-in-time object fetches) into one
// deduplicated, internally consistent view per owner:
//
//	{listings, ownedAssets, listedByUser}
//
// # Components
//
//   - Parser: normalizes heterogeneous raw objects (direct NFT, wrapped
//     listing holder, legacy contract variants) into canonical Asset
//     records, tolerating missing and renamed fields.
//   - Engine: orchestrates the queries, cross-references listings against
//     owned objects, deduplicates, throttles re-queries, and guards
//     against stale results with per-owner sequence numbers.
//   - Store: the local state store holding the last reconciled view, with
//     idempotent optimistic transitions for freshly minted and freshly
//     listed assets.
//   - IntentBuilder: pure construction of unsigned transaction intents
//     for mint, list, and purchase.
//   - Service: ties the above to the signing collaborator, media storage,
//     and the faucet.
//   - Handler: exposes the HTTP endpoints.
//
// # Eventual Consistency
//
// Right after a mint commits, the ledger's owner index may not reflect
// the new object. The engine therefore reads the created references from
// the transaction's own execution result, fetches each object by id
// (primary index, immediately consistent), and splices it into the view.
// A full re-query is deferred to the next explicit refresh.
//
// # HTTP Endpoints
//
//   - GET  /market/view/:address : Reconciled view (supports ?refresh=true).
//   - POST /market/mint          : Mint a new asset.
//   - POST /market/list          : List an owned asset for sale.
//   - POST /market/purchase      : Buy a listed item.
//   - POST /market/faucet        : Request test funds.
//   - POST /market/images        : Upload a mint image.
package market
