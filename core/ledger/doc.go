// Package ledger provides the gateway to the distributed ledger.
//
// The ledger is the source of truth for asset ownership and marketplace
// state; this package only reads it and submits prepared transactions.
// It exposes three read primitives and one write primitive:
//
//   - GetOwnedObjects: owner-index query by move struct type (secondary
//     index, may lag behind recent transactions).
//   - QueryEvents: historical event query by move event type.
//   - GetObject: point lookup by object id (primary index, immediately
//     consistent).
//   - ExecuteTransaction: submission of a prepared TransactionIntent.
//
// # Gateway Interface
//
// The Gateway interface abstracts the fullnode, making it easy to mock
// ledger interactions for unit testing (see core/ledger/mocks). The
// concrete Client speaks JSON-RPC 2.0 to a Sui-style fullnode.
//
// # Signing
//
// Transaction signing is external. The Signer interface models a wallet
// or zkLogin collaborator as an opaque async function from intent to
// execution result; private key material never enters this module.
//
// # Usage
//
//	client := ledger.NewClient(cfg.Ledger)
//	objects, err := client.GetOwnedObjects(ctx, addr, cfg.Ledger.NFTType())
package ledger
