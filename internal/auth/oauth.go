package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/tensileworks/auth0-mgmt/internal/constants"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// TokenManager provides valid bearer tokens for API requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// Config holds the credentials and endpoint for the client_credentials
// grant. ClientSecret is only ever written into the token request body.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Audience     string
	Retry        auth0.RetryConfig

	// HTTPClient overrides the transport used for token requests. Nil means
	// a default pooled client.
	HTTPClient *http.Client
}

// ClientCredentialsTokenManager acquires and caches management API tokens
// using the OAuth2 client_credentials grant.
//
// The fast path reads the single cached token slot under a read lock. On a
// miss or expiry, concurrent callers collapse into one outbound token
// request via singleflight; the shared refresh is detached from any
// individual caller's context so one caller cancelling cannot fail the
// refresh for the others.
type ClientCredentialsTokenManager struct {
	config *Config
	retry  auth0.RetryConfig
	http   *http.Client
	store  *TokenStore
	group  singleflight.Group
}

// NewClientCredentialsTokenManager creates a token manager for the given
// credentials.
func NewClientCredentialsTokenManager(config *Config) *ClientCredentialsTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = constants.DefaultHTTPTimeout
	}

	return &ClientCredentialsTokenManager{
		config: config,
		retry:  normalizeRetryConfig(config.Retry),
		http:   httpClient,
		store:  NewTokenStore(),
	}
}

// GetToken returns a valid access token, refreshing if necessary.
func (m *ClientCredentialsTokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.Valid() {
		return token.AccessToken, nil
	}

	resultCh := m.group.DoChan("token", func() (interface{}, error) {
		// Double-check: another waiter may have refreshed between the fast
		// path and here.
		if token := m.store.Get(); token.Valid() {
			return token.AccessToken, nil
		}

		return m.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-resultCh:
		if result.Err != nil {
			return "", result.Err
		}

		token, ok := result.Val.(string)
		if !ok {
			return "", &auth0.AuthenticationError{Message: "unexpected token refresh result"}
		}

		return token, nil
	}
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
}

// refresh performs the client_credentials exchange with bounded retry.
// Transport errors and 429/502/503/504 are retried while attempts remain; a
// retry-after header on 429 overrides the next delay verbatim (deliberately
// uncapped, matching the server's instruction). Any other non-success
// status fails immediately.
func (m *ClientCredentialsTokenManager) refresh(ctx context.Context) (string, error) {
	payload, err := json.Marshal(tokenRequest{
		GrantType:    "client_credentials",
		ClientID:     m.config.ClientID,
		ClientSecret: m.config.ClientSecret,
		Audience:     m.config.Audience,
	})
	if err != nil {
		return "", &auth0.TransportError{Err: err}
	}

	delay := m.retry.InitialDelay

	var lastErr error

	for attempt := 0; attempt <= m.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepContext(ctx, delay); err != nil {
				return "", err
			}

			delay = nextDelay(m.retry, delay)
		}

		status, headers, body, err := m.exchange(ctx, payload)
		if err != nil {
			if retryableTransportError(err) && canRetry(m.retry, attempt) {
				lastErr = &auth0.TransportError{Err: err}

				continue
			}

			return "", &auth0.TransportError{Err: err}
		}

		if status >= 200 && status < 300 {
			return m.storeToken(body)
		}

		if retryableStatus(status) && canRetry(m.retry, attempt) {
			if status == http.StatusTooManyRequests {
				if retryAfter, ok := parseRetryAfter(headers); ok {
					delay = time.Duration(retryAfter) * time.Second
				}
			}

			lastErr = &auth0.AuthenticationError{
				Message: fmt.Sprintf("token request failed with status %d", status),
			}

			continue
		}

		// Hard failure: the server rejected the credentials or request.
		// Prefer the body's message field, then its error field.
		message := gjson.GetBytes(body, "message").Str
		if message == "" {
			message = gjson.GetBytes(body, "error").Str
		}

		return "", &auth0.AuthenticationError{Message: message}
	}

	if lastErr == nil {
		lastErr = &auth0.AuthenticationError{Message: "token refresh failed after retries"}
	}

	return "", lastErr
}

// exchange issues one POST to the token endpoint and reads the full body.
func (m *ClientCredentialsTokenManager) exchange(ctx context.Context, payload []byte) (int, http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return resp.StatusCode, resp.Header, body, nil
}

// storeToken parses a successful token response and replaces the cached
// slot. Parsing failure is fatal, not retried.
func (m *ClientCredentialsTokenManager) storeToken(body []byte) (string, error) {
	var token Token

	err := json.Unmarshal(body, &token)
	if err != nil {
		return "", &auth0.DecodingError{Err: err}
	}

	lifetime := token.ExpiresIn - int64(constants.TokenExpirySafetyMargin/time.Second)
	if lifetime < 0 {
		lifetime = 0
	}

	token.ExpiresAt = time.Now().Add(time.Duration(lifetime) * time.Second)
	m.store.Set(&token)

	return token.AccessToken, nil
}

func parseRetryAfter(headers http.Header) (int, bool) {
	value := headers.Get("Retry-After")
	if value == "" {
		return 0, false
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, false
	}

	return seconds, true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
