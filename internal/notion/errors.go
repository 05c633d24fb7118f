package notion

import (
	"errors"
	"fmt"
	"time"
)

// Notion-specific errors.
var (
	// ErrMalformedPageRef indicates no page identifier could be extracted
	// from a workspace URL. Fatal to the setup step that needed it; callers
	// must not silently substitute a default page.
	ErrMalformedPageRef = errors.New("notion: no page identifier found in URL")
)

// APIError represents a Notion API error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// RateLimitError indicates the API asked us to back off.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("notion: rate limited, retry after %s", e.RetryAfter)
}

// IsNotFound checks if the error indicates a missing or inaccessible
// resource. Notion reports pages outside the integration's share scope as
// not found rather than forbidden.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsUnauthorized checks if the error indicates an invalid API token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
