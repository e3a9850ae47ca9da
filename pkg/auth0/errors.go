package auth0

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrDomainRequired       = errors.New("domain is required")
	ErrClientIDRequired     = errors.New("client ID is required")
	ErrClientSecretRequired = errors.New("client secret is required")
	ErrInvalidDomainURL     = errors.New("invalid domain URL")
)

// TransportError wraps a connectivity, timeout, or request-construction
// failure from the underlying HTTP transport.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodingError wraps a failure to parse a response body.
type DecodingError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to parse JSON: %v", e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// AuthenticationError indicates the token endpoint rejected the configured
// credentials or token refresh retries were exhausted.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// APIError represents a non-2xx, non-429 response from a resource endpoint.
type APIError struct {
	Status    int
	Message   string
	ErrorCode string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Message)
}

// RateLimitError represents an HTTP 429 from a resource endpoint. RetryAfter
// is the parsed retry-after header in seconds, or nil when the server did not
// supply one.
type RateLimitError struct {
	RetryAfter *int
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("rate limited: retry after %d seconds", *e.RetryAfter)
	}

	return "rate limited"
}

// IsRateLimited checks if the error is a rate-limit error.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}

	return errors.As(err, &rateErr)
}

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 API error or an
// authentication failure from the token endpoint.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}

	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}
