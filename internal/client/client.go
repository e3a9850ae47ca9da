// Package client contains the concrete implementation of the auth0.Client
// interface and the per-resource clients built on the internal request
// executor.
package client

import (
	"encoding/json"

	"github.com/tensileworks/auth0-mgmt/internal/auth"
	"github.com/tensileworks/auth0-mgmt/internal/constants"
	internalhttp "github.com/tensileworks/auth0-mgmt/internal/http"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// Client implements the auth0.Client interface. All resource clients share
// one request executor, one token cache, and one HTTP transport, so copies
// of a client handle observe the same cached token.
type Client struct {
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
	baseURL      string

	applications auth0.ApplicationsClient
	connections  auth0.ConnectionsClient
	users        auth0.UsersClient
	logs         auth0.LogsClient
}

// New creates a management API client. The base URL must already be
// normalized (scheme present, no trailing slash); validation happens in the
// auth0client package.
func New(baseURL string, config *auth0.Config) *Client {
	tokenManager := auth.NewClientCredentialsTokenManager(&auth.Config{
		TokenURL:     baseURL + "/oauth/token",
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Audience:     config.Audience,
		Retry:        config.Retry,
	})

	return NewWithTokenManager(baseURL, config, tokenManager)
}

// NewWithTokenManager creates a client with a custom token manager. Used by
// tests and by callers that manage tokens themselves.
func NewWithTokenManager(baseURL string, config *auth0.Config, tokenManager auth.TokenManager) *Client {
	httpClient := internalhttp.NewClient(baseURL, tokenManager, httpOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      baseURL,
	}

	client.initializeResourceClients()

	return client
}

// httpOptions builds executor options from config.
func httpOptions(config *auth0.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.applications = NewApplicationsClient(c.httpClient)
	c.connections = NewConnectionsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.logs = NewLogsClient(c.httpClient)
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Applications implements auth0.Client.Applications.
func (c *Client) Applications() auth0.ApplicationsClient {
	return c.applications
}

// Connections implements auth0.Client.Connections.
func (c *Client) Connections() auth0.ConnectionsClient {
	return c.connections
}

// Users implements auth0.Client.Users.
func (c *Client) Users() auth0.UsersClient {
	return c.users
}

// Logs implements auth0.Client.Logs.
func (c *Client) Logs() auth0.LogsClient {
	return c.logs
}

// decodeResponse unmarshals a response body, classifying failures as
// decoding errors.
func decodeResponse(body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	if err != nil {
		return &auth0.DecodingError{Err: err}
	}

	return nil
}
