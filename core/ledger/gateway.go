package ledger

import "context"

// Gateway abstracts the ledger fullnode. The application only ever reads
// objects and events and submits prepared transactions; it never inspects
// consensus or proof internals.
type Gateway interface {
	// GetOwnedObjects returns all objects of the given move type currently
	// owned by the address, newest first. The underlying owner index is a
	// secondary index and may lag behind recently committed transactions.
	GetOwnedObjects(ctx context.Context, owner, structType string) ([]RawObject, error)

	// QueryEvents returns historical events of the given type, bounded by
	// limit. When descending is true results are newest first.
	QueryEvents(ctx context.Context, eventType string, limit int, descending bool) ([]RawEvent, error)

	// GetObject fetches a single object by id through the primary index,
	// which is immediately consistent. It returns (nil, nil) when the object
	// no longer exists (deleted or wrapped beyond reach); an error indicates
	// a transport or node fault only.
	GetObject(ctx context.Context, id string) (*RawObject, error)

	// ExecuteTransaction submits a prepared intent for execution. Failed
	// transactions surface the ledger's own failure reason in the result;
	// they are never retried here.
	ExecuteTransaction(ctx context.Context, intent *TransactionIntent) (*ExecutionResult, error)
}

// Signer signs and submits a transaction intent on behalf of a user.
// Implementations live outside this module (browser wallets, zkLogin
// services); private key material never crosses this interface.
type Signer interface {
	SignAndExecute(ctx context.Context, intent *TransactionIntent) (*ExecutionResult, error)
}

// GatewaySigner adapts a Gateway into a Signer for environments where the
// node accepts sponsored or dev-mode execution directly. Production
// deployments replace it with a real wallet integration.
type GatewaySigner struct {
	gw Gateway
}

// NewGatewaySigner wraps the gateway as a Signer.
func NewGatewaySigner(gw Gateway) *GatewaySigner {
	return &GatewaySigner{gw: gw}
}

// SignAndExecute submits the intent through the gateway.
func (s *GatewaySigner) SignAndExecute(ctx context.Context, intent *TransactionIntent) (*ExecutionResult, error) {
	return s.gw.ExecuteTransaction(ctx, intent)
}
