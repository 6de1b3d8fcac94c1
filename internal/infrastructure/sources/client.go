package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/shopscout/backend/internal/domain"
)

const (
	maxRetries   = 3
	retryBackoff = 500 * time.Millisecond
)

// apiClient is the shared HTTP machinery behind every source adapter:
// a timeout-bearing client, an outbound rate limiter, and a retry loop for
// transient failures.
type apiClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	tag         string
}

func newAPIClient(tag string, requestsPerSecond float64, burst int) *apiClient {
	return &apiClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		tag:         tag,
	}
}

// fetch executes a GET with rate limiting and up to maxRetries attempts,
// returning the response body on 200. 4xx responses other than 429 are not
// retried.
func (c *apiClient) fetch(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "ShopScout/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", domain.ErrSourceFailure, err)
			c.backoff(ctx, attempt)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		lastErr = fmt.Errorf("%w: status %d", domain.ErrSourceFailure, resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, lastErr
		}
		c.backoff(ctx, attempt)
	}

	return nil, lastErr
}

func (c *apiClient) backoff(ctx context.Context, attempt int) {
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(attempt) * retryBackoff):
	}
}
