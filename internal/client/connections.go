package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/tensileworks/auth0-mgmt/internal/http"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// ConnectionsClient implements auth0.ConnectionsClient.
type ConnectionsClient struct {
	httpClient *internalhttp.Client
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(httpClient *internalhttp.Client) *ConnectionsClient {
	return &ConnectionsClient{httpClient: httpClient}
}

// List implements auth0.ConnectionsClient.List.
func (c *ConnectionsClient) List(ctx context.Context, params *auth0.ListConnectionsParams) ([]auth0.Connection, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/v2/connections", query)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	var connections []auth0.Connection
	if err := decodeResponse(resp.Body, &connections); err != nil {
		return nil, fmt.Errorf("parsing connections list response: %w", err)
	}

	return connections, nil
}

// ListWithTotals implements auth0.ConnectionsClient.ListWithTotals.
func (c *ConnectionsClient) ListWithTotals(ctx context.Context, params *auth0.ListConnectionsParams) (*auth0.ConnectionsPage, error) {
	if params == nil {
		params = &auth0.ListConnectionsParams{}
	}

	query := params.ToValues()
	query.Set("include_totals", "true")

	resp, err := c.httpClient.Get(ctx, "/api/v2/connections", query)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	var page auth0.ConnectionsPage
	if err := decodeResponse(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing connections page response: %w", err)
	}

	return &page, nil
}

// Get implements auth0.ConnectionsClient.Get.
func (c *ConnectionsClient) Get(ctx context.Context, id auth0.ConnectionID) (*auth0.Connection, error) {
	path := fmt.Sprintf("/api/v2/connections/%s", url.PathEscape(id.String()))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	var connection auth0.Connection
	if err := decodeResponse(resp.Body, &connection); err != nil {
		return nil, fmt.Errorf("parsing connection response: %w", err)
	}

	return &connection, nil
}

// Create implements auth0.ConnectionsClient.Create.
func (c *ConnectionsClient) Create(ctx context.Context, request *auth0.ConnectionCreateRequest) (*auth0.Connection, error) {
	resp, err := c.httpClient.Post(ctx, "/api/v2/connections", request)
	if err != nil {
		return nil, fmt.Errorf("creating connection: %w", err)
	}

	var connection auth0.Connection
	if err := decodeResponse(resp.Body, &connection); err != nil {
		return nil, fmt.Errorf("parsing connection response: %w", err)
	}

	return &connection, nil
}

// Update implements auth0.ConnectionsClient.Update.
func (c *ConnectionsClient) Update(ctx context.Context, id auth0.ConnectionID, request *auth0.ConnectionUpdateRequest) (*auth0.Connection, error) {
	path := fmt.Sprintf("/api/v2/connections/%s", url.PathEscape(id.String()))

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating connection: %w", err)
	}

	var connection auth0.Connection
	if err := decodeResponse(resp.Body, &connection); err != nil {
		return nil, fmt.Errorf("parsing connection response: %w", err)
	}

	return &connection, nil
}

// Delete implements auth0.ConnectionsClient.Delete.
func (c *ConnectionsClient) Delete(ctx context.Context, id auth0.ConnectionID) error {
	path := fmt.Sprintf("/api/v2/connections/%s", url.PathEscape(id.String()))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting connection: %w", err)
	}

	return nil
}
