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

func TestUsersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "email:\"jane@example.com\"", r.URL.Query().Get("q"))
		assert.Equal(t, "v3", r.URL.Query().Get("search_engine"))

		users := []auth0.User{
			{UserID: "auth0|user-1", Email: "jane@example.com"},
		}
		_ = json.NewEncoder(w).Encode(users)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	users, err := client.Users().List(context.Background(), &auth0.ListUsersParams{
		Q:            `email:"jane@example.com"`,
		SearchEngine: "v3",
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, auth0.UserID("auth0|user-1"), users[0].UserID)
}

func TestUsersClient_ListWithTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_totals"))
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))

		page := auth0.UsersPage{
			Users: []auth0.User{{UserID: "auth0|user-1"}},
			Start: 0,
			Limit: 25,
			Total: 142,
		}
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Users().ListWithTotals(context.Background(), &auth0.ListUsersParams{
		Page:    auth0.Int(0),
		PerPage: auth0.Int(25),
	})
	require.NoError(t, err)
	assert.Equal(t, 142, page.Total)
	assert.Len(t, page.Users, 1)
}

func TestUsersClient_Get(t *testing.T) {
	t.Run("fetches user by id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/users/auth0%7Cuser-1", r.URL.EscapedPath())

			user := auth0.User{
				UserID: "auth0|user-1",
				Email:  "jane@example.com",
				Name:   "Jane Doe",
			}
			_ = json.NewEncoder(w).Encode(user)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		user, err := client.Users().Get(context.Background(), "auth0|user-1")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("percent-encodes slashes in the id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/users/auth0%7Cuser%2Fwith%2Fslashes", r.URL.EscapedPath())

			user := auth0.User{UserID: "auth0|user/with/slashes"}
			_ = json.NewEncoder(w).Encode(user)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		user, err := client.Users().Get(context.Background(), "auth0|user/with/slashes")
		require.NoError(t, err)
		assert.Equal(t, auth0.UserID("auth0|user/with/slashes"), user.UserID)
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message":   "The user does not exist.",
				"errorCode": "inexistent_user",
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		user, err := client.Users().Get(context.Background(), "auth0|missing")
		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, auth0.IsNotFound(err))
	})
}

func TestUsersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req auth0.UserCreateRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "Username-Password-Authentication", req.Connection)
		assert.Equal(t, "jane@example.com", req.Email)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(auth0.User{
			UserID: "auth0|new-user",
			Email:  req.Email,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	user, err := client.Users().Create(context.Background(), &auth0.UserCreateRequest{
		Connection: "Username-Password-Authentication",
		Email:      "jane@example.com",
		Password:   "a-strong-password",
	})
	require.NoError(t, err)
	assert.Equal(t, auth0.UserID("auth0|new-user"), user.UserID)
}

func TestUsersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users/auth0%7Cuser-1", r.URL.EscapedPath())
		assert.Equal(t, "PATCH", r.Method)

		var req auth0.UserUpdateRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		require.NotNil(t, req.Blocked)
		assert.True(t, *req.Blocked)

		_ = json.NewEncoder(w).Encode(auth0.User{
			UserID:  "auth0|user-1",
			Blocked: auth0.Bool(true),
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	user, err := client.Users().Update(context.Background(), "auth0|user-1", &auth0.UserUpdateRequest{
		Blocked: auth0.Bool(true),
	})
	require.NoError(t, err)
	require.NotNil(t, user.Blocked)
	assert.True(t, *user.Blocked)
}

func TestUsersClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users/auth0%7Cuser-1", r.URL.EscapedPath())
		assert.Equal(t, "DELETE", r.Method)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Users().Delete(context.Background(), "auth0|user-1")
	require.NoError(t, err)
}

func TestUsersClient_GetByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users-by-email", r.URL.Path)
		assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))

		users := []auth0.User{
			{UserID: "auth0|user-1", Email: "jane@example.com"},
			{UserID: "google-oauth2|12345", Email: "jane@example.com"},
		}
		_ = json.NewEncoder(w).Encode(users)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	users, err := client.Users().GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUsersClient_GetLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/users/auth0%7Cuser-1/logs", r.URL.EscapedPath())
		assert.Equal(t, "date:-1", r.URL.Query().Get("sort"))

		logs := []auth0.LogEvent{
			{LogID: "log-1", Type: "s", UserID: "auth0|user-1"},
		}
		_ = json.NewEncoder(w).Encode(logs)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	logs, err := client.Users().GetLogs(context.Background(), "auth0|user-1", &auth0.GetUserLogsParams{
		Sort: "date:-1",
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "s", logs[0].Type)
}
