// Package api is the thin HTTP gateway to the remote transactions service.
// Every operation is a single request/response: no retries, no caching, no
// batching. Failures surface to the caller; nothing is swallowed here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"salesdesk/internal/common"
	"salesdesk/internal/model"
	"salesdesk/internal/query"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client talks to the transactions REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a gateway for the given base URL, e.g.
// "https://api.example.com/api/transactions".
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: api base URL is required", common.ErrMissingConfig)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api base URL: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// listResponse is the wire shape of the collection endpoint.
type listResponse struct {
	Data []model.Transaction `json:"data"`
	Meta struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	} `json:"meta"`
}

// List fetches one page of transactions. The server performs all filtering,
// sorting, and paging; params carry the flattened filter fields.
func (c *Client) List(ctx context.Context, params url.Values) (query.Page, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return query.Page{}, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.RawQuery = params.Encode()

	common.LogDebug("listing transactions", common.Fields{"params": u.RawQuery})

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, u.String(), nil, &resp); err != nil {
		return query.Page{}, err
	}
	return query.Page{
		Transactions: resp.Data,
		Total:        resp.Meta.Total,
		TotalPages:   resp.Meta.TotalPages,
	}, nil
}

// Stats fetches the global aggregates.
func (c *Client) Stats(ctx context.Context) (model.GlobalStats, error) {
	var stats model.GlobalStats
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/stats", nil, &stats); err != nil {
		return model.GlobalStats{}, err
	}
	return stats, nil
}

// Options fetches the server-side filter vocabulary. The filter bar carries
// its own hardcoded option lists, so nothing in the UI consumes this; it is
// kept for parity with the API surface.
func (c *Client) Options(ctx context.Context) (model.FilterOptions, error) {
	var opts model.FilterOptions
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/options", nil, &opts); err != nil {
		return model.FilterOptions{}, err
	}
	return opts, nil
}

// Create posts a new transaction and returns the stored record.
func (c *Client) Create(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	var created model.Transaction
	if err := c.do(ctx, http.MethodPost, c.baseURL, txn, &created); err != nil {
		return model.Transaction{}, err
	}
	return created, nil
}

// Update replaces the transaction with the given ID and returns the stored
// record.
func (c *Client) Update(ctx context.Context, id string, txn model.Transaction) (model.Transaction, error) {
	var updated model.Transaction
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/"+url.PathEscape(id), txn, &updated); err != nil {
		return model.Transaction{}, err
	}
	return updated, nil
}

// Delete removes the transaction with the given ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/"+url.PathEscape(id), nil, nil)
}

// do issues one request, decoding a JSON body into out when non-nil. Any
// non-2xx status becomes an error carrying the response body.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		common.LogError(err, "api request failed", common.Fields{"method": method, "url": rawURL})
		return fmt.Errorf("%w: %v", common.ErrAPIConnection, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", common.ErrNotFound, method, rawURL)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api error: %d - %s", resp.StatusCode, string(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
