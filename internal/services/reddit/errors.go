package reddit

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidUsername indicates the supplied username failed validation
	ErrInvalidUsername = errors.New("invalid reddit username")
	// ErrInvalidProfileURL indicates the supplied profile URL could not be parsed
	ErrInvalidProfileURL = errors.New("invalid reddit profile URL")
)

// APIError represents an error response from the Reddit API
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reddit API error (status %d, endpoint %s): %s", e.StatusCode, e.Endpoint, e.Message)
}

// IsNotFound checks if an error indicates the user does not exist
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if an error indicates the upstream rate limit was hit
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// IsBlocked checks if an error indicates Reddit refused the request outright.
// Reddit answers 403 for suspended accounts and for clients it has banned.
func IsBlocked(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}
	return false
}
