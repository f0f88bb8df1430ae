package ledger

// RawObject is an unparsed ledger object as returned by the fullnode.
// Content carries the decoded move fields; Display carries the optional
// on-chain display metadata. Either may be empty for objects whose
// metadata was never registered.
type RawObject struct {
	// ObjectID is the globally unique object id.
	ObjectID string `json:"objectId"`
	// Type is the full move type tag (e.g. "0xabc::nft::NFT").
	Type string `json:"type"`
	// Version is the object version at read time.
	Version string `json:"version"`
	// Owner is the current holder address.
	Owner string `json:"owner"`
	// Content holds the decoded move struct fields.
	Content map[string]any `json:"content"`
	// Display holds the registered display metadata, if any.
	Display map[string]string `json:"display"`
}

// RawEvent is an unparsed historical ledger event.
type RawEvent struct {
	// EventType is the full move event type tag.
	EventType string `json:"eventType"`
	// TxDigest is the digest of the emitting transaction.
	TxDigest string `json:"txDigest"`
	// TimestampMs is the ledger-assigned event time in epoch milliseconds.
	TimestampMs int64 `json:"timestampMs"`
	// ParsedJSON holds the decoded event payload.
	ParsedJSON map[string]any `json:"parsedJson"`
}

// ObjectRef identifies an object touched by a transaction.
type ObjectRef struct {
	ObjectID string `json:"objectId"`
	Type     string `json:"type"`
}

// ExecutionStatus is the terminal status of a submitted transaction.
type ExecutionStatus string

const (
	// StatusSuccess means the transaction executed and was committed.
	StatusSuccess ExecutionStatus = "success"
	// StatusFailure means the ledger rejected or aborted the transaction.
	StatusFailure ExecutionStatus = "failure"
)

// ExecutionResult is the outcome of a signed, submitted transaction.
type ExecutionResult struct {
	// Status is the terminal execution status.
	Status ExecutionStatus `json:"status"`
	// FailureReason carries the ledger's own failure message, when available.
	FailureReason string `json:"failureReason,omitempty"`
	// Digest is the transaction digest.
	Digest string `json:"digest"`
	// Created lists objects created by the transaction. Freshly created
	// objects may not be visible through the secondary owner index yet,
	// but are always fetchable by id.
	Created []ObjectRef `json:"created"`
}

// Succeeded reports whether the transaction committed successfully.
func (r *ExecutionResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// ArgumentKind discriminates the encoding of an intent argument.
type ArgumentKind string

const (
	// ArgObject references a ledger object by id.
	ArgObject ArgumentKind = "object"
	// ArgPureString is a BCS-encoded string value.
	ArgPureString ArgumentKind = "pure_string"
	// ArgPureU64 is a BCS-encoded u64 value.
	ArgPureU64 ArgumentKind = "pure_u64"
	// ArgPureID is a BCS-encoded object id value.
	ArgPureID ArgumentKind = "pure_id"
	// ArgPayment references the coin split off the gas coin for exact payment.
	ArgPayment ArgumentKind = "payment"
)

// Argument is one typed argument of a move call.
type Argument struct {
	Kind ArgumentKind `json:"kind"`
	// Value holds the object id, string, or decimal u64 depending on Kind.
	// For ArgPayment it is empty; the split amount lives on the intent.
	Value string `json:"value,omitempty"`
}

// TransactionIntent is a declarative, unsigned description of a single
// move call. It is pure data: building one has no side effects, and the
// signing collaborator is free to serialize it however its wallet needs.
type TransactionIntent struct {
	// Target is the fully qualified function, "pkg::module::function".
	Target string `json:"target"`
	// Arguments are the call arguments in declaration order.
	Arguments []Argument `json:"arguments"`
	// TypeArguments are the move type parameters.
	TypeArguments []string `json:"typeArguments,omitempty"`
	// PaymentAmount is the exact amount, in the ledger's smallest unit, to
	// split from the sender's gas coin. Zero when the call carries no payment.
	PaymentAmount uint64 `json:"paymentAmount,omitempty"`
	// Sender is the address the intent must be signed by.
	Sender string `json:"sender"`
}
