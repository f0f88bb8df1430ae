// Package models defines the canonical marketplace records: Asset,
// Listing, and the reconciled View.
//
// The records are deliberately ledger-agnostic: raw object shapes, field
// naming variants, and contract versions are all resolved by the parser
// before anything reaches these types.
package models
