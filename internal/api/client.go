// Package api wraps the budget backend's REST resources in typed service
// modules. Clients are configured per call: the bearer token is read from the
// token provider on every request, so a re-login elsewhere is picked up on the
// next call without any shared authenticated client instance.
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"budget/internal/localstore"

	"github.com/oklog/ulid/v2"
)

// TokenProvider supplies the current bearer token. An empty token means no
// session is active.
type TokenProvider interface {
	Token() (string, error)
}

// StoreTokenProvider reads the token from the persistent state store on every
// call.
type StoreTokenProvider struct {
	Store localstore.Store
}

func (p *StoreTokenProvider) Token() (string, error) {
	token, ok, err := p.Store.Get(localstore.KeyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// StaticTokenProvider returns a fixed token. Used by tests.
type StaticTokenProvider string

func (p StaticTokenProvider) Token() (string, error) {
	return string(p), nil
}

// Client issues JSON requests against the backend base URL.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	logger  *slog.Logger

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

// NewClient creates a request client bound to baseURL. tokens may be nil for
// a client that only performs unauthenticated calls.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// requestID generates a sortable request identifier. The monotonic source is
// not safe for concurrent use, so generation is serialized.
func (c *Client) requestID() string {
	c.entropyMu.Lock()
	defer c.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), c.entropy).String()
}

// get/post/put/delete perform a JSON request. auth selects whether a bearer
// token is required; when required and absent the call fails locally with a
// PreconditionError before any network I/O.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any, auth bool) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out, auth)
}

func (c *Client) post(ctx context.Context, path string, body, out any, auth bool) error {
	return c.do(ctx, http.MethodPost, path, body, out, auth)
}

func (c *Client) put(ctx context.Context, path string, body, out any, auth bool) error {
	return c.do(ctx, http.MethodPut, path, body, out, auth)
}

func (c *Client) delete(ctx context.Context, path string, out any, auth bool) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, auth)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, auth bool) error {
	var bearer string
	if auth {
		if c.tokens == nil {
			return &PreconditionError{Reason: ErrNoToken}
		}
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		if token == "" {
			return &PreconditionError{Reason: ErrNoToken}
		}
		bearer = token
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", c.requestID())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Request failed",
			"method", method,
			"path", path,
			"error", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}

	c.logger.Debug("Request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Status: resp.StatusCode, Body: respBody}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}
