// Package source retrieves the raw changelog document over HTTP.
package source

import (
	"context"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// ErrFetchFailed tags errors where the remote changelog could not be
// retrieved. Callers branch on it to render "no data available" instead of
// an internal failure.
var ErrFetchFailed = goerr.NewTag("fetch_failed")

// Client fetches the changelog document from a fixed URL. No retry and no
// caching happen at this layer.
type Client struct {
	url        string
	httpClient *http.Client
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for the fetch
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a changelog source client for the given URL
func New(url string, opts ...Option) *Client {
	client := &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Fetch retrieves the full changelog text. Any non-200 response or
// transport failure is returned as a fetch error.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create changelog request", goerr.V("url", c.url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch changelog",
			goerr.T(ErrFetchFailed), goerr.V("url", c.url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("unexpected status code from changelog source",
			goerr.T(ErrFetchFailed), goerr.V("url", c.url), goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read changelog body",
			goerr.T(ErrFetchFailed), goerr.V("url", c.url))
	}

	return string(body), nil
}
