package client

import (
	"context"
	"fmt"
	"net/url"

	internalhttp "github.com/tensileworks/auth0-mgmt/internal/http"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

// LogsClient implements auth0.LogsClient.
type LogsClient struct {
	httpClient *internalhttp.Client
}

// NewLogsClient creates a new logs client.
func NewLogsClient(httpClient *internalhttp.Client) *LogsClient {
	return &LogsClient{httpClient: httpClient}
}

// List implements auth0.LogsClient.List.
func (c *LogsClient) List(ctx context.Context, params *auth0.ListLogsParams) ([]auth0.LogEvent, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/api/v2/logs", query)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}

	var logs []auth0.LogEvent
	if err := decodeResponse(resp.Body, &logs); err != nil {
		return nil, fmt.Errorf("parsing logs list response: %w", err)
	}

	return logs, nil
}

// ListWithTotals implements auth0.LogsClient.ListWithTotals.
func (c *LogsClient) ListWithTotals(ctx context.Context, params *auth0.ListLogsParams) (*auth0.LogsPage, error) {
	if params == nil {
		params = &auth0.ListLogsParams{}
	}

	query := params.ToValues()
	query.Set("include_totals", "true")

	resp, err := c.httpClient.Get(ctx, "/api/v2/logs", query)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}

	var page auth0.LogsPage
	if err := decodeResponse(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing logs page response: %w", err)
	}

	return &page, nil
}

// Get implements auth0.LogsClient.Get.
func (c *LogsClient) Get(ctx context.Context, id string) (*auth0.LogEvent, error) {
	path := fmt.Sprintf("/api/v2/logs/%s", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting log event: %w", err)
	}

	var event auth0.LogEvent
	if err := decodeResponse(resp.Body, &event); err != nil {
		return nil, fmt.Errorf("parsing log event response: %w", err)
	}

	return &event, nil
}
