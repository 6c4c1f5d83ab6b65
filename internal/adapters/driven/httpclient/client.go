// Package httpclient provides the outbound HTTP transport used by the fetch service.
package httpclient

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/core/ports/driven"
	"github.com/custodia-labs/userkit/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.HTTPDoer = (*Client)(nil)

// Client is a rate-limited HTTP client.
// It uses a token bucket and honours Retry-After on 429 responses for
// subsequent requests. It never retries a request itself.
type Client struct {
	mu      sync.Mutex
	http    *http.Client
	limiter *rate.Limiter
	retryAt time.Time
}

// New creates a client from fetch settings. A nil base uses http.DefaultClient.
func New(base *http.Client, cfg domain.FetchSettings) *Client {
	if base == nil {
		base = http.DefaultClient
	}

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.IsRateLimited() {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if burst < 1 {
		burst = 1
	}

	return &Client{
		http:    base,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Do waits for the rate limiter and sends req.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.wait(req.Context()); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.recordRateLimit(resp.Header.Get("Retry-After"))
	}
	return resp, nil
}

// wait blocks until a request can be made without exceeding the rate limit.
func (c *Client) wait(ctx context.Context) error {
	c.mu.Lock()
	retryAt := c.retryAt
	c.mu.Unlock()

	if time.Now().Before(retryAt) {
		logger.Debug("Rate limited, waiting until %s", retryAt.Format(time.RFC3339))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return c.limiter.Wait(ctx)
}

// recordRateLimit sets a backoff period from a Retry-After header in seconds.
// Headers that are missing or not a positive integer are ignored.
func (c *Client) recordRateLimit(retryAfter string) {
	seconds, err := strconv.Atoi(retryAfter)
	if err != nil || seconds <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.retryAt = time.Now().Add(time.Duration(seconds) * time.Second)
}
