// Package client is the typed HTTP client for the TalentBridge backend.
// It attaches the bearer token, speaks the {success,data}/{error:{message}}
// envelopes, and normalizes every failure into an *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ari/talentbridge/internal/tokenstore"
)

const apiPrefix = "/api/v1"

// Client performs authenticated HTTP calls against a fixed base URL.
// The token lives in durable storage; the in-memory copy is a cache
// written through on every mutation. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    tokenstore.Storage

	mu    sync.RWMutex
	token string
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the given base URL. The persisted token, if
// any, is loaded into memory so a restarted process resumes its session.
func New(baseURL string, storage tokenstore.Storage, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: baseURL + apiPrefix,
		storage: storage,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	token, err := storage.Get()
	if err != nil {
		return nil, err
	}
	c.token = token
	return c, nil
}

// SetToken stores the token in memory and writes it through to durable storage
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return c.storage.Set(token)
}

// ClearToken removes the token from memory and durable storage
func (c *Client) ClearToken() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return c.storage.Clear()
}

// Token returns the in-memory token, or "" when none is held
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IsAuthenticated reports whether a token is currently held in memory
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// envelope is the uniform response shape of the backend
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// do issues a JSON request and decodes the enveloped response into out.
// A single attempt, no retry; callers surface the error to the user.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return wrapTransport(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return wrapTransport(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp, raw)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return wrapTransport(err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return wrapTransport(err)
	}
	return nil
}

// doBinary issues a request whose successful response is a raw payload
// (PDF export, file download). The generic JSON parsing is bypassed.
func (c *Client) doBinary(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, wrapTransport(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, wrapTransport(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransport(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp, raw)
	}
	return raw, nil
}

// doMultipart issues a multipart form request. The Content-Type header
// carries the generated boundary, so no JSON content type is set.
func (c *Client) doMultipart(ctx context.Context, path string, form *multipartForm, out interface{}) error {
	body, contentType, err := form.encode()
	if err != nil {
		return wrapTransport(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return wrapTransport(err)
	}
	req.Header.Set("Content-Type", contentType)
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapTransport(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp, raw)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return wrapTransport(err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) authorize(req *http.Request) {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
