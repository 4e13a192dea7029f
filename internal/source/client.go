// Package source fetches and decodes the remote regional CPI dataset.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	requestTimeout = 60 * time.Second
	maxBodySize    = 64 << 20 // 64 MB
)

// ErrDataUnavailable indicates the remote dataset could not be fetched or
// decoded. It is fatal to the session: the dashboard renders nothing partial.
var ErrDataUnavailable = errors.New("source: dataset unavailable")

// Client fetches the dataset from its remote location.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client for the given dataset URL.
func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Fetch downloads the raw dataset bytes.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrDataUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrDataUnavailable, resp.StatusCode, c.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrDataUnavailable, err)
	}
	if int64(len(body)) > maxBodySize {
		return nil, fmt.Errorf("%w: dataset exceeds %d bytes", ErrDataUnavailable, int64(maxBodySize))
	}

	return body, nil
}
