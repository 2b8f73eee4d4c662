package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

const (
	metricsPath = "/metrics"
	infoPath    = "/info"

	// sortQueryParam is the query parameter the server reads the sort key from.
	sortQueryParam = "sortProcessesBy"

	userAgent = "moni-dash"
)

// Fetcher is the network capability the dashboard polls through.
type Fetcher interface {
	FetchMetrics(ctx context.Context, key SortKey) (*MetricsResponse, error)
	FetchInfo(ctx context.Context) (*HostInfo, error)
}

// Client talks to a moni server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (e.g. to route through a tunnel).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero leaves the transport default.
// It applies to whichever http.Client the options settle on, so it combines
// with WithHTTPClient in any order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for the moni server at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// BaseURL returns the server URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchMetrics retrieves the current metrics window and top processes ranked by key.
// A response without data points is reported as an ErrPayload error so callers
// can treat it exactly like any other failed poll.
func (c *Client) FetchMetrics(ctx context.Context, key SortKey) (*MetricsResponse, error) {
	q := url.Values{}
	q.Set(sortQueryParam, string(key))

	var resp MetricsResponse
	if err := c.getJSON(ctx, metricsPath+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	if len(resp.DataPoints) == 0 {
		return nil, errors.New(errors.ErrPayload,
			"Metrics response has no data points",
			"The server may have just started; the next poll will try again.")
	}

	return &resp, nil
}

// FetchInfo retrieves the host description.
func (c *Client) FetchInfo(ctx context.Context) (*HostInfo, error) {
	var info HostInfo
	if err := c.getJSON(ctx, infoPath, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// getJSON issues a GET and decodes a JSON object body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	endpoint := strings.SplitN(path, "?", 2)[0]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("Couldn't build request for %s", endpoint),
			"Check the endpoint URL in your config")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("Request to %s failed", endpoint),
			"Is the moni server reachable at "+c.baseURL+"?")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errors.ErrStatus,
			fmt.Sprintf("%s returned %d", endpoint, resp.StatusCode),
			"")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrPayload,
			fmt.Sprintf("Malformed %s response", endpoint),
			"")
	}

	return nil
}
