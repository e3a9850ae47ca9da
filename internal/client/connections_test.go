package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

func TestConnectionsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/connections", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "auth0", r.URL.Query().Get("strategy"))

		connections := []auth0.Connection{
			{
				ID:       "con_1",
				Name:     "Username-Password-Authentication",
				Strategy: auth0.StrategyDatabase,
			},
		}
		_ = json.NewEncoder(w).Encode(connections)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	connections, err := client.Connections().List(context.Background(), &auth0.ListConnectionsParams{
		Strategy: auth0.StrategyDatabase,
	})
	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, auth0.StrategyDatabase, connections[0].Strategy)
}

func TestConnectionsClient_ListWithTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_totals"))

		page := auth0.ConnectionsPage{
			Connections: []auth0.Connection{{ID: "con_1"}},
			Start:       0,
			Limit:       50,
			Total:       2,
		}
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Connections().ListWithTotals(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestConnectionsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/connections/con_1", r.URL.Path)

		connection := auth0.Connection{
			ID:          "con_1",
			Name:        "Username-Password-Authentication",
			Strategy:    auth0.StrategyDatabase,
			DisplayName: "Database",
		}
		_ = json.NewEncoder(w).Encode(connection)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	connection, err := client.Connections().Get(context.Background(), "con_1")
	require.NoError(t, err)
	assert.Equal(t, "Database", connection.DisplayName)
}

func TestConnectionsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/connections", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req auth0.ConnectionCreateRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "staff-directory", req.Name)
		assert.Equal(t, auth0.StrategyAzureAD, req.Strategy)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(auth0.Connection{
			ID:       "con_new",
			Name:     req.Name,
			Strategy: req.Strategy,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	connection, err := client.Connections().Create(context.Background(), &auth0.ConnectionCreateRequest{
		Name:     "staff-directory",
		Strategy: auth0.StrategyAzureAD,
	})
	require.NoError(t, err)
	assert.Equal(t, auth0.ConnectionID("con_new"), connection.ID)
}

func TestConnectionsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/connections/con_1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var req auth0.ConnectionUpdateRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, []string{"app-1", "app-2"}, req.EnabledClients)

		_ = json.NewEncoder(w).Encode(auth0.Connection{
			ID:             "con_1",
			EnabledClients: req.EnabledClients,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	connection, err := client.Connections().Update(context.Background(), "con_1", &auth0.ConnectionUpdateRequest{
		EnabledClients: []string{"app-1", "app-2"},
	})
	require.NoError(t, err)
	assert.Len(t, connection.EnabledClients, 2)
}

func TestConnectionsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/connections/con_1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Connections().Delete(context.Background(), "con_1")
	require.NoError(t, err)
}
