package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/tensileworks/auth0-mgmt/internal/http"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// UsersClient implements auth0.UsersClient.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List implements auth0.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *auth0.ListUsersParams) ([]auth0.User, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/v2/users", query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []auth0.User
	if err := decodeResponse(resp.Body, &users); err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return users, nil
}

// ListWithTotals implements auth0.UsersClient.ListWithTotals. It forces
// include_totals and decodes the paginated envelope.
func (c *UsersClient) ListWithTotals(ctx context.Context, params *auth0.ListUsersParams) (*auth0.UsersPage, error) {
	if params == nil {
		params = &auth0.ListUsersParams{}
	}

	query := params.ToValues()
	query.Set("include_totals", "true")

	resp, err := c.httpClient.Get(ctx, "/api/v2/users", query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var page auth0.UsersPage
	if err := decodeResponse(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing users page response: %w", err)
	}

	return &page, nil
}

// Get implements auth0.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id auth0.UserID) (*auth0.User, error) {
	path := fmt.Sprintf("/api/v2/users/%s", url.PathEscape(id.String()))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user auth0.User
	if err := decodeResponse(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Create implements auth0.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, request *auth0.UserCreateRequest) (*auth0.User, error) {
	resp, err := c.httpClient.Post(ctx, "/api/v2/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user auth0.User
	if err := decodeResponse(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Update implements auth0.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id auth0.UserID, request *auth0.UserUpdateRequest) (*auth0.User, error) {
	path := fmt.Sprintf("/api/v2/users/%s", url.PathEscape(id.String()))

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user auth0.User
	if err := decodeResponse(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Delete implements auth0.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id auth0.UserID) error {
	path := fmt.Sprintf("/api/v2/users/%s", url.PathEscape(id.String()))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// GetByEmail implements auth0.UsersClient.GetByEmail.
func (c *UsersClient) GetByEmail(ctx context.Context, email string) ([]auth0.User, error) {
	query := url.Values{}
	query.Set("email", email)

	resp, err := c.httpClient.Get(ctx, "/api/v2/users-by-email", query)
	if err != nil {
		return nil, fmt.Errorf("getting users by email: %w", err)
	}

	var users []auth0.User
	if err := decodeResponse(resp.Body, &users); err != nil {
		return nil, fmt.Errorf("parsing users response: %w", err)
	}

	return users, nil
}

// GetLogs implements auth0.UsersClient.GetLogs.
func (c *UsersClient) GetLogs(ctx context.Context, id auth0.UserID, params *auth0.GetUserLogsParams) ([]auth0.LogEvent, error) {
	path := fmt.Sprintf("/api/v2/users/%s/logs", url.PathEscape(id.String()))

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting user logs: %w", err)
	}

	var logs []auth0.LogEvent
	if err := decodeResponse(resp.Body, &logs); err != nil {
		return nil, fmt.Errorf("parsing user logs response: %w", err)
	}

	return logs, nil
}
