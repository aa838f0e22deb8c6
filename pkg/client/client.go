// Package client provides a Go client for the lexikit REST API.
//
// It covers text preprocessing (tokens, lemmas, stems, POS tags and named
// entities) and the lemma vs. stem comparisons. The client keeps the
// server's session cookie, so Compare with an empty text reuses the last
// text sent to Process, like the browser UI does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

// --- Custom Errors ---

// APIError represents an error returned by the lexikit API (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// --- JSON Response Structs ---

// ProcessResponse models the response of POST /api/process.
type ProcessResponse struct {
	Tokens              []string                   `json:"tokens"`
	Lemmas              []string                   `json:"lemmas"`
	Stems               []string                   `json:"stems"`
	POSTags             []textanalyzer.TaggedToken `json:"pos_tags"`
	Entities            []textanalyzer.Entity      `json:"entities"`
	LemmaStemComparison comparison.Result          `json:"lemma_stem_comparison"`
}

// --- Client ---

// Client is the Go client for interacting with a lexikit server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil) // only fails on a bad PublicSuffixList
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second, Jar: jar},
	}
}

// WithHTTPClient replaces the underlying HTTP client. A client without a
// cookie jar does not keep the session between calls.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// jsonRequest is a helper method to execute all requests to the API.
// It handles JSON serialization, HTTP calls, and error management.
func (c *Client) jsonRequest(ctx context.Context, method, endpoint string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(respBody, &errResp) == nil && errResp["error"] != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp["error"]}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// --- API Methods ---

// Process runs the full preprocessing pipeline on text.
func (c *Client) Process(ctx context.Context, text string) (*ProcessResponse, error) {
	var res ProcessResponse
	if err := c.jsonRequest(ctx, http.MethodPost, "/api/process", map[string]string{"text": text}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Compare returns the lemma vs. stem comparison for text. An empty text
// lets the server fall back to the session text, then to its default.
func (c *Client) Compare(ctx context.Context, text string) (*comparison.Result, error) {
	endpoint := "/api/compare"
	if text != "" {
		endpoint += "?text=" + url.QueryEscape(text)
	}
	var res comparison.Result
	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Reference returns the comparison over the fixed reference word list.
func (c *Client) Reference(ctx context.Context) (*comparison.Result, error) {
	var res comparison.Result
	if err := c.jsonRequest(ctx, http.MethodGet, "/api/reference", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	var res struct {
		Status string `json:"status"`
	}
	if err := c.jsonRequest(ctx, http.MethodGet, "/healthz", nil, &res); err != nil {
		return err
	}
	if res.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", res.Status)
	}
	return nil
}
