package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Token lifecycle.
const (
	// TokenExpirySafetyMargin is subtracted from the server-reported
	// expires_in so a cached token is treated as expired slightly before the
	// server invalidates it.
	TokenExpirySafetyMargin = 60 * time.Second
)

// Token-refresh retry defaults.
const (
	// DefaultMaxRetries is the number of token-refresh retries after the
	// initial attempt.
	DefaultMaxRetries = 3

	// DefaultInitialDelay is the delay before the first token-refresh retry.
	DefaultInitialDelay = 100 * time.Millisecond

	// DefaultMaxDelay caps the delay between token-refresh retries.
	DefaultMaxDelay = 10 * time.Second

	// DefaultMultiplier is applied to the delay after each retry.
	DefaultMultiplier = 2.0
)

// Resource-request retry defaults, applied when retries are opted in.
const (
	// DefaultRetryWaitMin is the minimum wait between resource retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between resource retries.
	DefaultRetryWaitMax = 10 * time.Second
)
