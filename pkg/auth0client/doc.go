// Package auth0client provides the primary entry point for constructing an
// Auth0 Management API client that implements the auth0.Client interface.
//
// It layers configuration, HTTP transport, and the client-credentials token
// lifecycle on top of the resource interfaces and types defined in the auth0
// package. Most applications should import auth0client to build a client,
// then use the returned auth0.Client to access the resource-specific
// clients Applications(), Connections(), Users(), and Logs().
//
// Quick start
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
//
//	  cli, err := auth0client.New(&auth0.Config{
//	    Domain:       "example.auth0.com",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  users, err := cli.Users().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// The audience defaults to "{domain}/api/v2/" and the domain gains an
// https scheme when none is given. Token acquisition, caching, and refresh
// are handled internally; see the auth0 package documentation for the retry
// and error model.
//
// # Helpers
//
// NewWithClientCredentials wraps New for the common domain/id/secret case.
package auth0client
