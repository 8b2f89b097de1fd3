// Package api provides the HTTP client for the Viventa marketplace REST API.
// The backend owns persistence and all state-machine enforcement; this client
// only shapes requests and decodes the response envelopes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Sentinel errors for responses the UI handles specially: 401 means
// "redirect to login", 404 means a terminal not-found page.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
)

// APIError carries the server-provided message from a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.StatusCode))
}

// Meta is the pagination block returned alongside list responses.
type Meta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// envelope is the common response wrapper: {success, data, meta?, error?}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *Meta           `json:"meta"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is an HTTP client for the marketplace API. The access token is
// per-session and single-writer: set once after the identity check resolves,
// read on every authenticated request.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

// New creates an API client for the given base URL (e.g.
// "https://api.viventa.example/api/v1").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetAccessToken installs the bearer token used on subsequent requests.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// do executes a request and decodes the envelope. result may be nil when the
// caller only cares about success; the returned Meta is nil for non-list
// responses.
func (c *Client) do(ctx context.Context, method, path string, body, result any) (*Meta, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrUnauthenticated
	case http.StatusNotFound:
		return nil, ErrNotFound
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env envelope
		if json.Unmarshal(respBody, &env) == nil && env.Error != nil {
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	if result == nil && len(respBody) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return nil, fmt.Errorf("decoding response data: %w", err)
		}
	}
	return env.Meta, nil
}

func (c *Client) get(ctx context.Context, path string, result any) (*Meta, error) {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	_, err := c.do(ctx, http.MethodPost, path, body, result)
	return err
}

func (c *Client) patch(ctx context.Context, path string, body, result any) error {
	_, err := c.do(ctx, http.MethodPatch, path, body, result)
	return err
}

func (c *Client) del(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// transition POSTs a named transition action with no body and returns the
// status the server reports after applying it.
func (c *Client) transition(ctx context.Context, path string) (string, error) {
	var result struct {
		Status string `json:"status"`
	}
	if err := c.post(ctx, path, nil, &result); err != nil {
		return "", err
	}
	return result.Status, nil
}
