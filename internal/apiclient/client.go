// Package apiclient provides the authenticated REST client shared by
// every Google API surface the exporter talks to.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gojek/heimdall/v7/httpclient"
)

// DefaultTimeout bounds every network call. A hung API call fails the
// export instead of hanging it indefinitely.
const DefaultTimeout = 30 * time.Second

// Client is a bearer-token-authenticated JSON client. Retries are
// deliberately disabled: a mandatory fetch that fails must abort the
// export, not paper over a flaky backend.
type Client struct {
	http  *httpclient.Client
	token string
}

// New creates a client carrying the given bearer token. A
// non-positive timeout falls back to DefaultTimeout.
func New(token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:  httpclient.NewClient(httpclient.WithHTTPTimeout(timeout)),
		token: token,
	}
}

// GetJSON issues a GET request and decodes the JSON response into out.
// A nil out discards the body.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %v", url, err)
	}
	return c.do(req, out)
}

// PostJSON issues a POST request with a JSON body and decodes the
// response into out.
func (c *Client) PostJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body for %s: %v", url, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %v", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %v", req.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %v", req.URL, err)
	}
	return nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
