package auth0

import (
	"context"
	"time"
)

// ApplicationsClient manages Auth0 applications (clients).
type ApplicationsClient interface {
	List(ctx context.Context, params *ListApplicationsParams) ([]Application, error)
	ListWithTotals(ctx context.Context, params *ListApplicationsParams) (*ApplicationsPage, error)
	Get(ctx context.Context, id ApplicationID) (*Application, error)
	Create(ctx context.Context, request *ApplicationCreateRequest) (*Application, error)
	Update(ctx context.Context, id ApplicationID, request *ApplicationUpdateRequest) (*Application, error)
	Delete(ctx context.Context, id ApplicationID) error
	RotateSecret(ctx context.Context, id ApplicationID) (*Application, error)
}

// ConnectionsClient manages Auth0 connections.
type ConnectionsClient interface {
	List(ctx context.Context, params *ListConnectionsParams) ([]Connection, error)
	ListWithTotals(ctx context.Context, params *ListConnectionsParams) (*ConnectionsPage, error)
	Get(ctx context.Context, id ConnectionID) (*Connection, error)
	Create(ctx context.Context, request *ConnectionCreateRequest) (*Connection, error)
	Update(ctx context.Context, id ConnectionID, request *ConnectionUpdateRequest) (*Connection, error)
	Delete(ctx context.Context, id ConnectionID) error
}

// UsersClient manages Auth0 users.
type UsersClient interface {
	List(ctx context.Context, params *ListUsersParams) ([]User, error)
	ListWithTotals(ctx context.Context, params *ListUsersParams) (*UsersPage, error)
	Get(ctx context.Context, id UserID) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, id UserID, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, id UserID) error
	GetByEmail(ctx context.Context, email string) ([]User, error)
	GetLogs(ctx context.Context, id UserID, params *GetUserLogsParams) ([]LogEvent, error)
}

// LogsClient reads tenant log events.
type LogsClient interface {
	List(ctx context.Context, params *ListLogsParams) ([]LogEvent, error)
	ListWithTotals(ctx context.Context, params *ListLogsParams) (*LogsPage, error)
	Get(ctx context.Context, id string) (*LogEvent, error)
}

// Client is the Auth0 Management API client. Implementations are safe for
// concurrent use; all handles derived from one client share a single token
// cache and HTTP transport.
type Client interface {
	Applications() ApplicationsClient
	Connections() ConnectionsClient
	Users() UsersClient
	Logs() LogsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// RetryConfig controls token-refresh retry behavior with exponential
// backoff. The zero value is replaced by DefaultRetryConfig.
type RetryConfig struct {
	// MaxRetries is the number of retry attempts after the initial attempt.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the delay between retries. A server-supplied retry-after
	// on 429 overrides the delay and is not capped.
	MaxDelay time.Duration
	// Multiplier is applied to the delay after each retry.
	Multiplier float64
}

// DefaultRetryConfig returns the default token-refresh retry schedule.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
}

// Config represents client configuration for building an auth0.Client.
//
// # Authentication
//
// The client authenticates with the OAuth2 client_credentials grant against
// "{Domain}/oauth/token" using ClientID and ClientSecret. Tokens are cached
// per client and refreshed transparently shortly before they expire; many
// goroutines sharing one client trigger at most one refresh at a time.
//
// # Retries
//
// Token-endpoint failures are retried per RetryConfig (transient statuses
// and transport errors only). Resource requests are not retried unless
// RetryMax is set, which installs an opt-in retrying transport for resource
// calls; rate limiting on resource endpoints otherwise surfaces as a
// RateLimitError for the caller to handle.
type Config struct {
	// Domain: Auth0 tenant domain (e.g. "example.auth0.com" or a full URL).
	// A missing scheme defaults to https; a trailing slash is trimmed.
	Domain string

	// ClientID: OAuth2 client ID for the client_credentials grant.
	ClientID string
	// ClientSecret: OAuth2 client secret used with ClientID. Never logged
	// and never included in error values.
	ClientSecret string
	// Audience: token scope target. Defaults to "{Domain}/api/v2/".
	Audience string

	// Retry: token-refresh retry schedule. Zero value means defaults.
	Retry RetryConfig

	// HTTPTimeout: timeout applied to the shared HTTP client. Zero means the
	// package default.
	HTTPTimeout time.Duration
	// RetryMax: maximum retries for resource requests. Zero (the default)
	// disables resource-request retries entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between resource-request retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between resource-request retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
