// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ClientConfig holds connection settings for the content platform API.
type ClientConfig struct {
	BaseURL string // e.g. https://content.example.com/v1
	Dataset string // e.g. "production"
	Token   string // read token; required for the preview perspective
	Preview bool   // query the draft perspective instead of published
}

// Client runs parameterized queries against the content platform over HTTP
// and decodes the JSON result envelope. It is safe for concurrent use.
//
// Two clients exist in practice: a published one and, when a token is
// configured, a preview one. Handlers receive both and pick explicitly per
// request — there is no ambient mode state.
type Client struct {
	cfg    ClientConfig
	client *http.Client
}

// NewClient creates a content client with a sane request timeout.
func NewClient(cfg ClientConfig) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Preview reports whether this client queries the draft perspective.
func (c *Client) Preview() bool { return c.cfg.Preview }

// queryEnvelope is the API's response wrapper.
type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query executes a query with the given parameters and decodes the result
// into out. Parameters are JSON-encoded into $-prefixed query-string values,
// the platform's convention for typed query variables. A null result leaves
// out untouched, so absent documents surface as nil pointers or empty slices.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, out any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("content: encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	if c.cfg.Preview {
		values.Set("perspective", "previewDrafts")
	}

	endpoint := c.cfg.BaseURL + "/data/query/" + c.cfg.Dataset + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("content: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("content: http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("content: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content: API error (status %d): %s", resp.StatusCode, string(body))
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("content: unmarshal envelope: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("content: unmarshal result: %w", err)
	}
	return nil
}
