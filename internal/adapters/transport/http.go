// Package transport delivers request envelopes over HTTPS.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second

	// Playlist responses with several audio URL maps run a few hundred KB;
	// anything past this cap is not a legitimate response.
	maxResponseBytes = 4 << 20
)

// Client posts request envelopes to the service. The body goes out as-is;
// whether it is plain or encrypted JSON was decided when the envelope was
// built.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

// New returns a transport backed by httpClient. A nil httpClient uses
// http.DefaultClient.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, timeout: defaultTimeout}
}

// WithTimeout sets the per-request deadline applied when the caller's
// context has none.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	return c
}

// Send posts the envelope and returns the raw response body. Non-2xx
// statuses are errors; the service reports application failures inside a
// 200 response, so anything else means the request never reached the API.
func (c *Client) Send(ctx context.Context, envelope domain.RequestEnvelope) ([]byte, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, envelope.URL, strings.NewReader(envelope.Body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", envelope.Method, err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s request: %w", envelope.Method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", envelope.Method, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: unexpected status %d", envelope.Method, resp.StatusCode)
	}

	return body, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
