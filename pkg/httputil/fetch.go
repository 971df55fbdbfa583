package httputil

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/graphsvg/pkg/buildinfo"
	"github.com/matzehuels/graphsvg/pkg/errors"
)

// MaxBodySize caps a downloaded graph.
const MaxBodySize = 32 << 20

// Client downloads graph files over HTTP.
type Client struct {
	HTTP    *http.Client
	Backoff Backoff
}

// NewClient returns a client with a 30s request timeout and [DefaultBackoff].
func NewClient() *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Backoff: DefaultBackoff,
	}
}

// IsURL reports whether path names an http or https resource.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Get downloads url. A 404 maps to NOT_FOUND, other non-2xx statuses and
// oversized bodies to INVALID_INPUT.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := c.Backoff.Do(ctx, func() error {
		data, err := c.get(ctx, url)
		body = data
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "request %s", url)
	}
	req.Header.Set("User-Agent", "graphsvg/"+buildinfo.Version)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeInvalidInput, err, "fetch %s", url)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "fetch %s: %s", url, resp.Status)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &RetryableError{Err: errors.New(errors.ErrCodeInvalidInput, "fetch %s: %s", url, resp.Status)}
	case resp.StatusCode/100 != 2:
		return nil, errors.New(errors.ErrCodeInvalidInput, "fetch %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", url)}
	}
	if len(data) > MaxBodySize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "fetch %s: body exceeds %d bytes", url, MaxBodySize)
	}
	return data, nil
}
