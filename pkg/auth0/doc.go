// Package auth0 provides types, interfaces, and errors for working with the
// Auth0 Management API v2.
//
// # Overview
//
// The auth0 package defines the domain types (Application, Connection, User,
// LogEvent and their request/params shapes) and the interfaces for
// resource-oriented clients (ApplicationsClient, ConnectionsClient,
// UsersClient, LogsClient). A concrete implementation is provided by the
// auth0client package, which wires configuration, transport, and the
// client-credentials token lifecycle. Most consumers should import
// auth0client to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/tensileworks/auth0-mgmt/pkg/auth0"
//	  "github.com/tensileworks/auth0-mgmt/pkg/auth0client"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := auth0client.New(&auth0.Config{
//	    Domain:       "example.auth0.com",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  users, err := cli.Users().List(ctx, &auth0.ListUsersParams{PerPage: auth0.Int(50)})
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// # Tokens and concurrency
//
// The client obtains management API tokens with the OAuth2 client_credentials
// grant and caches a single token per client, refreshing it transparently
// shortly before expiry. Concurrent callers racing on an expired cache
// collapse into a single outbound token request. Token-endpoint failures are
// retried with exponential backoff per RetryConfig; resource requests are
// issued exactly once per call unless Config.RetryMax opts in to a retrying
// transport.
//
// # Errors
//
// Every operation returns a typed error: TransportError, DecodingError,
// AuthenticationError, APIError, or RateLimitError. Helpers IsRateLimited,
// IsNotFound, and IsUnauthorized make it easy to branch on common cases.
// Error values never contain the client secret.
package auth0
