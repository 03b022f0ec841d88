package mee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const (
	RECEIPT_POLL_INTERVAL = 3 * time.Second
	RECEIPT_WAIT_WINDOW   = 5 * time.Minute
)

// Client talks to the supertransaction relay. The relay owns quote
// computation, per-chain ordering and cross-chain settlement; the
// client only submits and waits.
type Client struct {
	url    string
	apiKey string

	HTTPClient   *http.Client
	PollInterval time.Duration
	WaitWindow   time.Duration
}

func NewClient(url string, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		PollInterval: RECEIPT_POLL_INTERVAL,
		WaitWindow:   RECEIPT_WAIT_WINDOW,
	}
}

func (c *Client) GetSupportedChains(ctx context.Context) ([]uint64, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/v1/chains", c.url))
	if err != nil {
		return nil, err
	}

	var resp struct {
		ChainIDs []uint64 `json:"chainIds"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return resp.ChainIDs, nil
}

// GetQuote prices the instruction bundle. Relay rejections surface as
// QuoteError.
func (c *Client) GetQuote(ctx context.Context, qr *QuoteRequest) (*Quote, error) {
	payload, err := json.Marshal(qr)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/quotes", c.url), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &QuoteError{Reason: reason(resp.StatusCode, body)}
	}

	q := new(Quote)
	if err := json.Unmarshal(body, q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	q.Payload = body

	return q, nil
}

// ExecuteQuote submits the signed quote and returns the
// supertransaction hash. The hash is a handle, not finality.
func (c *Client) ExecuteQuote(ctx context.Context, q *Quote) (common.Hash, error) {
	payload, err := json.Marshal(struct {
		Quote     json.RawMessage `json:"quote"`
		Signature string          `json:"signature"`
	}{
		Quote:     q.Payload,
		Signature: q.Signature,
	})
	if err != nil {
		return common.Hash{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/supertransactions", c.url), bytes.NewReader(payload))
	if err != nil {
		return common.Hash{}, err
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return common.Hash{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return common.Hash{}, &ExecutionError{Reason: reason(resp.StatusCode, body)}
	}

	r := new(ExecuteResult)
	if err := json.Unmarshal(body, r); err != nil {
		return common.Hash{}, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return r.Hash, nil
}

// WaitForReceipt polls the relay until the supertransaction reaches a
// terminal status. Bridging legs routinely take minutes; exhausting the
// wait window returns ConfirmationTimeoutError, not failure.
func (c *Client) WaitForReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.WaitWindow)
	defer cancel()

	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	for {
		r, err := c.receipt(ctx, hash)
		if err == nil && r.Status.Terminal() {
			return r, nil
		}
		if err != nil {
			log.Debug().Err(err).Msgf("Receipt for %s not ready", hash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, &ConfirmationTimeoutError{Hash: hash}
		case <-ticker.C:
		}
	}
}

func (c *Client) receipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/v1/supertransactions/%s", c.url, hash.Hex()))
	if err != nil {
		return nil, err
	}

	r := new(Receipt)
	if err := json.Unmarshal(body, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return r, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
}

func reason(code int, body []byte) string {
	var resp struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Reason != "" {
		return resp.Reason
	}

	return fmt.Sprintf("unexpected status code: %d", code)
}
