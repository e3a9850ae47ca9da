package client

import (
	internalhttp "github.com/tensileworks/auth0-mgmt/internal/http"
)

// NewTestClient creates a client against the given base URL without a token
// manager, for tests that stub the API with httptest.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
