// Package apiclient wraps the booking backend's REST API. Read operations
// degrade to deterministic local fallback data when the backend is
// unreachable; write operations fail closed so the user is never shown a
// confirmation backed by fabricated data.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mawid-sa/mawid/internal/session"
)

// Degraded wraps a read result that may come from local fallback data
// instead of the backend. Fallback marks the result as synthesized; Cause
// carries the transport error that triggered the degradation.
type Degraded[T any] struct {
	Data     T
	Fallback bool
	Cause    error
}

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	logger  *zap.Logger

	// injectable for tests
	now func() time.Time
}

// New creates a client for the given backend base URL. The session store is
// consulted per request for the bearer token; no token means anonymous calls.
func New(baseURL string, timeout time.Duration, store session.Store, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "ar-SA")

	// Attach the bearer token when a session exists. A missing session is
	// not an error here: centers and health are anonymous.
	if c.store != nil {
		sess, err := c.store.Load(ctx)
		switch {
		case err == nil && sess.Token != "":
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		case err != nil && !errors.Is(err, session.ErrNotFound):
			c.logger.Warn("Failed to load session for request", zap.Error(err))
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: backend returned %s", method, path, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}
