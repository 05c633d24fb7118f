package notion

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// RequestsPerSecond is the documented average rate limit (3 req/s).
	RequestsPerSecond = 3

	// HeaderRetryAfter is the back-off header on 429 responses (seconds).
	HeaderRetryAfter = "Retry-After"

	// DefaultRetryAfter is assumed when a 429 carries no Retry-After.
	DefaultRetryAfter = time.Second
)

// RateLimiter throttles requests proactively to stay under the API's
// average rate, and converts 429 responses into RateLimitError.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a rate limiter tuned to the documented limit.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(RequestsPerSecond), RequestsPerSecond),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// CheckResponse returns a RateLimitError if the response is a 429,
// nil otherwise.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	retryAfter := DefaultRetryAfter
	if v := resp.Header.Get(HeaderRetryAfter); v != "" {
		if seconds, err := strconv.ParseFloat(v, 64); err == nil {
			retryAfter = time.Duration(seconds * float64(time.Second))
		}
	}

	return &RateLimitError{RetryAfter: retryAfter}
}
