package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// RequestTimeout is the fixed per-request timeout for upstream calls.
// A timeout is treated exactly like an upstream error response: no
// retry, no backoff.
const RequestTimeout = 10 * time.Second

// Client issues requests against the amap REST APIs. It holds no state
// beyond the immutable configuration and a pooled HTTP client.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a Client for the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: RequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		logger: slog.Default(),
	}
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// hostFor returns the base URL for an API version.
func (c *Client) hostFor(ver APIVersion) string {
	if ver == V4 {
		return c.cfg.HostV4
	}
	return c.cfg.HostV3
}

// getJSON performs a GET against path on the given API version host and
// decodes the body into out. The API key is always attached. Transport
// faults and non-200 statuses yield a *TransportError; envelope-level
// failures are the caller's to check.
func (c *Client) getJSON(ctx context.Context, ver APIVersion, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.cfg.Key)

	reqURL := fmt.Sprintf("%s%s?%s", c.hostFor(ver), path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{Detail: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransportError{StatusCode: resp.StatusCode, Detail: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Detail: "malformed response: " + err.Error()}
	}
	return nil
}
