package faucet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Status is the outcome of a faucet request. Rate limiting is a distinct
// status, not a failure: callers direct the user to a manual alternative
// instead of treating the faucet as broken.
type Status string

const (
	// StatusGranted means the faucet accepted the request.
	StatusGranted Status = "granted"
	// StatusRateLimited means the address must wait before asking again.
	StatusRateLimited Status = "rate_limited"
	// StatusFailed means the faucet rejected the request or is unreachable.
	StatusFailed Status = "failed"
)

// Client requests test funds from the network faucet. Best effort only;
// nothing in the application depends on it succeeding.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a faucet client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

type fundsRequest struct {
	FixedAmountRequest struct {
		Recipient string `json:"recipient"`
	} `json:"FixedAmountRequest"`
}

// RequestFunds asks the faucet to top up the address. The returned error
// is non-nil only for StatusFailed; a rate-limited response is a clean
// outcome with a nil error.
func (c *Client) RequestFunds(ctx context.Context, address string) (Status, error) {
	var reqBody fundsRequest
	reqBody.FixedAmountRequest.Recipient = address

	body, err := json.Marshal(reqBody)
	if err != nil {
		return StatusFailed, fmt.Errorf("failed to encode faucet request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return StatusFailed, fmt.Errorf("failed to build faucet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return StatusFailed, fmt.Errorf("faucet request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return StatusRateLimited, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return StatusGranted, nil
	default:
		return StatusFailed, fmt.Errorf("faucet returned status %d", resp.StatusCode)
	}
}
