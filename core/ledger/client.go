package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Client is a JSON-RPC 2.0 client for a Sui-style fullnode, implementing
// the Gateway interface. It performs no retries of its own; retry policy
// belongs to the callers of the reconciliation APIs.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ Gateway = (*Client)(nil)

// NewClient creates a fullnode client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		endpoint: cfg.Endpoint,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// call performs one JSON-RPC request and unmarshals the result into out.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rpc %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rpc %s: failed to read response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc %s: unexpected status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(payload, &rpcResp); err != nil {
		return fmt.Errorf("rpc %s: failed to decode response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("rpc %s: node error %d: %s", method, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("rpc %s: failed to decode result: %w", method, err)
	}
	return nil
}

// rawObjectData mirrors the fullnode's object envelope.
type rawObjectData struct {
	ObjectID string          `json:"objectId"`
	Version  string          `json:"version"`
	Type     string          `json:"type"`
	Owner    json.RawMessage `json:"owner"`
	Content  *struct {
		DataType string         `json:"dataType"`
		Type     string         `json:"type"`
		Fields   map[string]any `json:"fields"`
	} `json:"content"`
	Display *struct {
		Data map[string]string `json:"data"`
	} `json:"display"`
}

func (d *rawObjectData) toRawObject() RawObject {
	obj := RawObject{
		ObjectID: d.ObjectID,
		Version:  d.Version,
		Type:     d.Type,
		Owner:    decodeOwner(d.Owner),
	}
	if d.Content != nil {
		obj.Content = d.Content.Fields
		if obj.Type == "" {
			obj.Type = d.Content.Type
		}
	}
	if d.Display != nil {
		obj.Display = d.Display.Data
	}
	return obj
}

// decodeOwner flattens the node's owner union into a plain address.
// Shared and immutable objects have no single owner address.
func decodeOwner(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var addressOwner struct {
		AddressOwner string `json:"AddressOwner"`
		ObjectOwner  string `json:"ObjectOwner"`
	}
	if err := json.Unmarshal(raw, &addressOwner); err != nil {
		return ""
	}
	if addressOwner.AddressOwner != "" {
		return addressOwner.AddressOwner
	}
	return addressOwner.ObjectOwner
}

// GetOwnedObjects queries the owner index for objects of the given type.
func (c *Client) GetOwnedObjects(ctx context.Context, owner, structType string) ([]RawObject, error) {
	query := map[string]any{
		"filter": map[string]any{"StructType": structType},
		"options": map[string]any{
			"showContent": true,
			"showDisplay": true,
			"showType":    true,
			"showOwner":   true,
		},
	}

	var result struct {
		Data []struct {
			Data *rawObjectData `json:"data"`
		} `json:"data"`
	}
	if err := c.call(ctx, "suix_getOwnedObjects", []any{owner, query}, &result); err != nil {
		return nil, err
	}

	objects := make([]RawObject, 0, len(result.Data))
	for _, entry := range result.Data {
		if entry.Data == nil {
			continue
		}
		objects = append(objects, entry.Data.toRawObject())
	}
	return objects, nil
}

// QueryEvents queries historical events by move event type.
func (c *Client) QueryEvents(ctx context.Context, eventType string, limit int, descending bool) ([]RawEvent, error) {
	filter := map[string]any{"MoveEventType": eventType}

	var result struct {
		Data []struct {
			ID struct {
				TxDigest string `json:"txDigest"`
			} `json:"id"`
			Type        string         `json:"type"`
			ParsedJSON  map[string]any `json:"parsedJson"`
			TimestampMs string         `json:"timestampMs"`
		} `json:"data"`
	}
	if err := c.call(ctx, "suix_queryEvents", []any{filter, nil, limit, descending}, &result); err != nil {
		return nil, err
	}

	events := make([]RawEvent, 0, len(result.Data))
	for _, entry := range result.Data {
		ts, _ := strconv.ParseInt(entry.TimestampMs, 10, 64)
		events = append(events, RawEvent{
			EventType:   entry.Type,
			TxDigest:    entry.ID.TxDigest,
			TimestampMs: ts,
			ParsedJSON:  entry.ParsedJSON,
		})
	}
	return events, nil
}

// GetObject fetches one object by id through the primary index.
func (c *Client) GetObject(ctx context.Context, id string) (*RawObject, error) {
	options := map[string]any{
		"showContent": true,
		"showDisplay": true,
		"showType":    true,
		"showOwner":   true,
	}

	var result struct {
		Data  *rawObjectData `json:"data"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := c.call(ctx, "sui_getObject", []any{id, options}, &result); err != nil {
		return nil, err
	}

	// Deleted or never-existed objects are a negative answer, not a fault.
	if result.Data == nil {
		return nil, nil
	}
	obj := result.Data.toRawObject()
	return &obj, nil
}

// ExecuteTransaction submits an intent for node-side execution. Only nodes
// configured for sponsored/dev execution accept this path; wallet-signed
// flows go through a Signer instead.
func (c *Client) ExecuteTransaction(ctx context.Context, intent *TransactionIntent) (*ExecutionResult, error) {
	var result struct {
		Digest  string `json:"digest"`
		Effects struct {
			Status struct {
				Status string `json:"status"`
				Error  string `json:"error"`
			} `json:"status"`
			Created []struct {
				Reference struct {
					ObjectID string `json:"objectId"`
				} `json:"reference"`
				ObjectType string `json:"objectType"`
			} `json:"created"`
		} `json:"effects"`
	}
	if err := c.call(ctx, "sui_executeTransactionIntent", []any{intent}, &result); err != nil {
		return nil, err
	}

	exec := &ExecutionResult{
		Digest: result.Digest,
		Status: StatusFailure,
	}
	if result.Effects.Status.Status == "success" {
		exec.Status = StatusSuccess
	} else {
		exec.FailureReason = result.Effects.Status.Error
	}
	for _, created := range result.Effects.Created {
		exec.Created = append(exec.Created, ObjectRef{
			ObjectID: created.Reference.ObjectID,
			Type:     created.ObjectType,
		})
	}
	return exec, nil
}
