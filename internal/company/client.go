// Package company provides bill-name autocomplete against the Clearbit
// company suggestion API. Lookups are purely advisory: every failure mode
// degrades to an empty suggestion list so bill naming always works offline.
package company

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://autocomplete.clearbit.com/v1/companies/suggest"
	requestTimeout = 5 * time.Second
	maxBodySize    = 1 << 20 // 1 MB

	// MinQueryLen is the shortest query worth sending upstream.
	MinQueryLen = 2
)

// Suggestion is one company match: name, registrable domain, and a logo URL.
type Suggestion struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Logo   string `json:"logo"`
}

// Client queries the company suggestion API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client. An empty baseURL selects the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// Suggest returns company suggestions for a partial name. Queries shorter
// than MinQueryLen return nothing, and any transport or decode failure
// yields an empty list rather than an error the caller must handle.
func (c *Client) Suggest(ctx context.Context, query string) []Suggestion {
	if len(query) < MinQueryLen {
		return nil
	}

	suggestions, err := c.fetch(ctx, query)
	if err != nil {
		slog.Debug("company lookup failed", "query", query, "err", err)
		return nil
	}
	return suggestions
}

func (c *Client) fetch(ctx context.Context, query string) ([]Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqURL := c.baseURL + "?query=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("company: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("company: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("company: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("company: reading response: %w", err)
	}

	var suggestions []Suggestion
	if err := json.Unmarshal(body, &suggestions); err != nil {
		return nil, fmt.Errorf("company: parsing suggestions: %w", err)
	}
	return suggestions, nil
}
