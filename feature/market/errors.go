package market

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleVersion is returned when a listing is attempted
	// against an asset minted under a retired contract package. Raised
	// before any transaction intent is built.
	ErrIncompatibleVersion = errors.New("asset was minted under a retired contract version and cannot be listed")

	// ErrInvalidPrice is returned for a zero price. Prices are unsigned
	// integers in the ledger's smallest unit; zero is never submitted.
	ErrInvalidPrice = errors.New("price must be a positive amount in the ledger's smallest unit")

	// ErrEmptyName is returned when a mint is requested without a name.
	ErrEmptyName = errors.New("asset name must not be empty")

	// ErrAssetNotFound is returned when an operation references an asset
	// id absent from the current reconciled view.
	ErrAssetNotFound = errors.New("asset not found in current view")
)

// TransactionError carries the ledger's own failure reason for a rejected
// transaction. Financial operations are never retried automatically; the
// caller surfaces this to the user and lets them decide.
type TransactionError struct {
	// Op is the attempted operation (mint, list, purchase).
	Op string
	// Digest is the transaction digest, when the ledger assigned one.
	Digest string
	// Reason is the ledger's failure message.
	Reason string
}

func (e *TransactionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s transaction failed", e.Op)
	}
	return fmt.Sprintf("%s transaction failed: %s", e.Op, e.Reason)
}
