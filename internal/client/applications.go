package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/tensileworks/auth0-mgmt/internal/http"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// ApplicationsClient implements auth0.ApplicationsClient.
type ApplicationsClient struct {
	httpClient *internalhttp.Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(httpClient *internalhttp.Client) *ApplicationsClient {
	return &ApplicationsClient{httpClient: httpClient}
}

// List implements auth0.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, params *auth0.ListApplicationsParams) ([]auth0.Application, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/v2/clients", query)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	var applications []auth0.Application
	if err := decodeResponse(resp.Body, &applications); err != nil {
		return nil, fmt.Errorf("parsing applications list response: %w", err)
	}

	return applications, nil
}

// ListWithTotals implements auth0.ApplicationsClient.ListWithTotals.
func (c *ApplicationsClient) ListWithTotals(ctx context.Context, params *auth0.ListApplicationsParams) (*auth0.ApplicationsPage, error) {
	if params == nil {
		params = &auth0.ListApplicationsParams{}
	}

	query := params.ToValues()
	query.Set("include_totals", "true")

	resp, err := c.httpClient.Get(ctx, "/api/v2/clients", query)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	var page auth0.ApplicationsPage
	if err := decodeResponse(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing applications page response: %w", err)
	}

	return &page, nil
}

// Get implements auth0.ApplicationsClient.Get.
func (c *ApplicationsClient) Get(ctx context.Context, id auth0.ApplicationID) (*auth0.Application, error) {
	path := fmt.Sprintf("/api/v2/clients/%s", url.PathEscape(id.String()))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}

	var application auth0.Application
	if err := decodeResponse(resp.Body, &application); err != nil {
		return nil, fmt.Errorf("parsing application response: %w", err)
	}

	return &application, nil
}

// Create implements auth0.ApplicationsClient.Create.
func (c *ApplicationsClient) Create(ctx context.Context, request *auth0.ApplicationCreateRequest) (*auth0.Application, error) {
	resp, err := c.httpClient.Post(ctx, "/api/v2/clients", request)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	var application auth0.Application
	if err := decodeResponse(resp.Body, &application); err != nil {
		return nil, fmt.Errorf("parsing application response: %w", err)
	}

	return &application, nil
}

// Update implements auth0.ApplicationsClient.Update.
func (c *ApplicationsClient) Update(ctx context.Context, id auth0.ApplicationID, request *auth0.ApplicationUpdateRequest) (*auth0.Application, error) {
	path := fmt.Sprintf("/api/v2/clients/%s", url.PathEscape(id.String()))

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	var application auth0.Application
	if err := decodeResponse(resp.Body, &application); err != nil {
		return nil, fmt.Errorf("parsing application response: %w", err)
	}

	return &application, nil
}

// Delete implements auth0.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, id auth0.ApplicationID) error {
	path := fmt.Sprintf("/api/v2/clients/%s", url.PathEscape(id.String()))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	return nil
}

// RotateSecret implements auth0.ApplicationsClient.RotateSecret.
func (c *ApplicationsClient) RotateSecret(ctx context.Context, id auth0.ApplicationID) (*auth0.Application, error) {
	path := fmt.Sprintf("/api/v2/clients/%s/rotate-secret", url.PathEscape(id.String()))

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("rotating application secret: %w", err)
	}

	var application auth0.Application
	if err := decodeResponse(resp.Body, &application); err != nil {
		return nil, fmt.Errorf("parsing application response: %w", err)
	}

	return &application, nil
}
