// Package exa provides a websets.Client implementation backed by the Exa
// websets REST API.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"prospector/pkg/domain"
	"prospector/pkg/serrors"
	"prospector/pkg/websets"
)

// DefaultBaseURL is the root of the public Exa websets API.
const DefaultBaseURL = "https://api.exa.ai/websets/v0"

// Client talks to the Exa websets REST API and fulfills the websets.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root, without trailing slash
	apiKey     string       // apiKey is sent in the x-api-key header
}

// New constructs a Client that uses the provided http.Client, base URL and
// API key. An empty baseURL falls back to DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// do performs one API call and returns the raw response body. Upstream error
// statuses are mapped onto semantic kinds; bodies of failed calls end up in
// the error message. No retries are attempted at this layer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUnauthorized, "api key rejected: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "%s %s not found", method, path)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%s %s failed with status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}

// ListWebsets returns one page of webset summaries. Pass an empty cursor for
// the first page; the second return value is the cursor of the next page, or
// empty when this was the last one.
func (c *Client) ListWebsets(ctx context.Context, cursor string) ([]domain.WebsetSummary, string, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	b, err := c.do(ctx, http.MethodGet, "/websets", query, nil)
	if err != nil {
		return nil, "", fmt.Errorf("could not list websets: %w", err)
	}

	var listResp struct {
		Data       []domain.WebsetSummary `json:"data"`
		HasMore    bool                   `json:"hasMore"`
		NextCursor string                 `json:"nextCursor"`
	}
	if err := json.Unmarshal(b, &listResp); err != nil {
		return nil, "", fmt.Errorf("could not decode response: %w", err)
	}

	next := ""
	if listResp.HasMore {
		next = listResp.NextCursor
	}

	return listResp.Data, next, nil
}

// GetWebset fetches a webset by ID with its items expanded.
func (c *Client) GetWebset(ctx context.Context, id string) (*domain.Webset, error) {
	query := url.Values{}
	query.Set("expand", "items")

	b, err := c.do(ctx, http.MethodGet, "/websets/"+url.PathEscape(id), query, nil)
	if err != nil {
		return nil, fmt.Errorf("could not get webset: %w", err)
	}

	var ws domain.Webset
	if err := json.Unmarshal(b, &ws); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &ws, nil
}

// CreateWebset creates a new webset from the given search and enrichments and
// returns the created webset. Items are collected asynchronously by the
// provider, so the returned webset never has them expanded.
func (c *Client) CreateWebset(ctx context.Context, params websets.CreateParams) (*domain.Webset, error) {
	b, err := c.do(ctx, http.MethodPost, "/websets", nil, params)
	if err != nil {
		return nil, fmt.Errorf("could not create webset: %w", err)
	}

	var ws domain.Webset
	if err := json.Unmarshal(b, &ws); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &ws, nil
}

// UpdateMetadata attaches the given metadata key/values to a webset.
func (c *Client) UpdateMetadata(ctx context.Context, id string, metadata map[string]string) error {
	type updateReq struct {
		Metadata map[string]string `json:"metadata"`
	}

	if _, err := c.do(ctx, http.MethodPost, "/websets/"+url.PathEscape(id), nil, updateReq{Metadata: metadata}); err != nil {
		return fmt.Errorf("could not update webset: %w", err)
	}

	return nil
}

// Ensure Client conforms to the websets.Client interface at compile time.
var _ websets.Client = (*Client)(nil)
