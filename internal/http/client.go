// Package http provides the authenticated HTTP request executor used by the
// resource clients. It obtains bearer tokens from an auth.TokenManager,
// issues JSON requests, and classifies responses into typed results and
// errors. It performs no retries of its own unless a retry configuration is
// explicitly supplied.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/tensileworks/auth0-mgmt/internal/auth"
	"github.com/tensileworks/auth0-mgmt/internal/constants"
	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

const defaultUserAgent = "auth0-mgmt-go"

// Request represents an HTTP request to a resource endpoint.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes authenticated requests against the management API.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *http.Client
	userAgent    string
	logger       auth0.Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger auth0.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig opts resource requests in to transparent retries of
// transient failures (connection errors, 429, 5xx). Without it every call
// issues exactly one request and rate limiting surfaces to the caller.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = waitMin
		retryClient.RetryWaitMax = waitMax
		retryClient.Logger = nil
		retryClient.HTTPClient.Timeout = c.httpClient.Timeout
		c.httpClient = retryClient.StandardClient()
	}
}

// NewClient creates a request executor for the given base URL. A nil token
// manager sends requests without authentication.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   httpClient,
		userAgent:    defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and classifies the response. Non-2xx responses
// return both the response and a typed error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	token := ""

	if c.tokenManager != nil {
		var err error

		token, err = c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, err
		}
	}

	httpReq, err := c.buildRequest(ctx, req, token)
	if err != nil {
		return nil, &auth0.TransportError{Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &auth0.TransportError{Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &auth0.TransportError{Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(body),
		})
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	return resp, classifyError(resp)
}

func (c *Client) buildRequest(ctx context.Context, req *Request, token string) (*http.Request, error) {
	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}

		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// classifyError maps a non-2xx response to a typed error. 429 carries the
// parsed retry-after header; everything else becomes an APIError with the
// body's message, falling back to its error field, falling back to
// "Unknown error" when the body is missing or unparsable.
func classifyError(resp *Response) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		rateErr := &auth0.RateLimitError{}

		if value := resp.Headers.Get("Retry-After"); value != "" {
			if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
				rateErr.RetryAfter = &seconds
			}
		}

		return rateErr
	}

	message := gjson.GetBytes(resp.Body, "message").Str
	if message == "" {
		message = gjson.GetBytes(resp.Body, "error").Str
	}

	if message == "" {
		message = "Unknown error"
	}

	return &auth0.APIError{
		Status:    resp.StatusCode,
		Message:   message,
		ErrorCode: gjson.GetBytes(resp.Body, "errorCode").Str,
	}
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch executes a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request. A 2xx response with no body is success.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
