// Package apiclient is the only place the dashboard talks to the EcoCheck REST API.
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

	"github.com/xyz-asif/ecocheck-admin/internal/pkg/logger"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/metrics"
)

const maxErrorBody = 64 * 1024

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
	metrics    *metrics.Metrics
}

type Option func(*Client)

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.Named("apiclient") }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New creates a client for baseURL. timeout bounds every call, including reading the body.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Default().Named("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends body as JSON to path and returns the raw response body on 2xx.
// token is attached as a bearer credential when non-empty.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, token string) (json.RawMessage, error) {
	start := time.Now()
	endpoint := method + " " + normalizePath(path)

	raw, err := c.do(ctx, method, path, body, token)

	outcome := "ok"
	if err != nil {
		outcome = KindOf(err).String()
		c.log.Warn("%s failed after %v: %v", endpoint, time.Since(start), err)
	} else {
		c.log.Debug("%s ok in %v", endpoint, time.Since(start))
	}
	c.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))

	return raw, err
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, token string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: networkMessage(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: serverMessage(data),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: networkMessage(err), Err: err}
	}
	return json.RawMessage(data), nil
}

func networkMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
		return "The server took too long to respond"
	}
	return "Unable to reach the server"
}

// serverMessage pulls a human readable message out of an error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Msg     string `json:"msg"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	switch {
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	default:
		return payload.Msg
	}
}

// normalizePath collapses ids so metric labels stay bounded.
func normalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if len(part) > 20 || (len(part) > 0 && part[0] >= '0' && part[0] <= '9') {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
