package auth

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/tensileworks/auth0-mgmt/internal/constants"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// normalizeRetryConfig fills zero fields with the package defaults, so a
// partially specified config still gets a complete backoff schedule.
func normalizeRetryConfig(cfg auth0.RetryConfig) auth0.RetryConfig {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = constants.DefaultMaxRetries
	}

	if cfg.InitialDelay == 0 {
		cfg.InitialDelay = constants.DefaultInitialDelay
	}

	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = constants.DefaultMaxDelay
	}

	if cfg.Multiplier == 0 {
		cfg.Multiplier = constants.DefaultMultiplier
	}

	return cfg
}

// nextDelay advances the backoff schedule: the current delay multiplied,
// capped at MaxDelay. The sequence is non-decreasing for Multiplier >= 1.
func nextDelay(cfg auth0.RetryConfig, current time.Duration) time.Duration {
	advanced := time.Duration(float64(current) * cfg.Multiplier)
	if advanced > cfg.MaxDelay {
		return cfg.MaxDelay
	}

	return advanced
}

// canRetry reports whether another attempt is permitted after attempt.
func canRetry(cfg auth0.RetryConfig, attempt int) bool {
	return attempt < cfg.MaxRetries
}

// retryableStatus reports whether a token-endpoint status is transient.
// Other non-success statuses (401, 400, ...) mean the credentials are wrong
// and retrying cannot help.
func retryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// retryableTransportError reports whether a transport failure is worth
// retrying. Timeouts count as transient: the refresh runs detached from
// caller contexts, so a deadline error here can only come from the HTTP
// client's own timeout. Cancellation is the caller giving up, not a
// transient fault.
func retryableTransportError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
