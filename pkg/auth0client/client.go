// Package auth0client provides the main entry point for creating Auth0
// Management API clients.
package auth0client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tensileworks/auth0-mgmt/internal/client"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// New creates a new Auth0 Management API client from the given config.
func New(config *auth0.Config) (auth0.Client, error) {
	if config == nil {
		return nil, auth0.ErrConfigRequired
	}

	if config.Domain == "" {
		return nil, auth0.ErrDomainRequired
	}

	if config.ClientID == "" {
		return nil, auth0.ErrClientIDRequired
	}

	if config.ClientSecret == "" {
		return nil, auth0.ErrClientSecretRequired
	}

	baseURL, err := normalizeDomain(config.Domain)
	if err != nil {
		return nil, err
	}

	// Copy so the normalized values never leak back into the caller's config.
	cfg := *config

	if cfg.Audience == "" {
		cfg.Audience = baseURL + "/api/v2/"
	}

	return client.New(baseURL, &cfg), nil
}

// NewWithClientCredentials creates a client from a domain and client
// credentials, using defaults for everything else.
func NewWithClientCredentials(domain, clientID, clientSecret string) (auth0.Client, error) {
	return New(&auth0.Config{
		Domain:       domain,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// normalizeDomain adds an https scheme when none is present and trims any
// trailing slash.
func normalizeDomain(domain string) (string, error) {
	baseURL := domain
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", auth0.ErrInvalidDomainURL, err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", auth0.ErrInvalidDomainURL, domain)
	}

	return baseURL, nil
}
