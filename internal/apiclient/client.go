// Package apiclient is a thin client for the platform's backend API. No
// retries: transient failures surface to the test that triggered them.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
)

// ErrEnvironmentUnavailable means the backend is unreachable. Detected by
// Ping at startup it is fatal to the whole run.
var ErrEnvironmentUnavailable = errors.New("environment unavailable")

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func New(cfg config.API, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.Key,
		logger:  slog.Default(),
	}
	if c.http.Timeout == 0 {
		c.http.Timeout = 30 * time.Second
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Field reads a value from the JSON body by gjson path.
func (r *Response) Field(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Request issues a single HTTP request against the backend. The API key, when
// configured, is appended as the api_key query parameter the platform expects.
func (c *Client) Request(ctx context.Context, method, path string, params url.Values) (*Response, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" && params.Get("api_key") == "" {
		params.Set("api_key", c.apiKey)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("api request", slog.String("method", method), slog.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("api response", slog.Int("status", resp.StatusCode), slog.String("path", path))

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}

// Ping probes the backend once at startup. 200 and 401 both mean the
// platform is up (401 is just a missing API key); anything else, or a
// transport failure, reports ErrEnvironmentUnavailable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Request(ctx, http.MethodGet, "/movie/popular", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, err)
	}
	if resp.Status != http.StatusOK && resp.Status != http.StatusUnauthorized {
		return fmt.Errorf("%w: unexpected status %d", ErrEnvironmentUnavailable, resp.Status)
	}
	return nil
}
