package auth0_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tensileworks/auth0-mgmt/pkg/auth0"
)

func TestListApplicationsParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("empty params produce no values", func(t *testing.T) {
		t.Parallel()

		params := &auth0.ListApplicationsParams{}
		assert.Empty(t, params.ToValues())
	})

	t.Run("set fields are encoded", func(t *testing.T) {
		t.Parallel()

		params := &auth0.ListApplicationsParams{
			Page:          auth0.Int(2),
			PerPage:       auth0.Int(50),
			IncludeTotals: auth0.Bool(true),
			Fields:        "client_id,name",
			IncludeFields: auth0.Bool(true),
			IsFirstParty:  auth0.Bool(false),
			AppType:       auth0.AppTypeNative,
		}

		values := params.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("per_page"))
		assert.Equal(t, "true", values.Get("include_totals"))
		assert.Equal(t, "client_id,name", values.Get("fields"))
		assert.Equal(t, "true", values.Get("include_fields"))
		assert.Equal(t, "false", values.Get("is_first_party"))
		assert.Equal(t, "native", values.Get("app_type"))
		assert.NotContains(t, values, "is_global")
	})
}

func TestListUsersParams_ToValues(t *testing.T) {
	t.Parallel()

	params := &auth0.ListUsersParams{
		Page:         auth0.Int(0),
		PerPage:      auth0.Int(25),
		Sort:         "created_at:-1",
		Connection:   "Username-Password-Authentication",
		Q:            `logins_count:[10 TO *]`,
		SearchEngine: "v3",
	}

	values := params.ToValues()
	assert.Equal(t, "0", values.Get("page"))
	assert.Equal(t, "25", values.Get("per_page"))
	assert.Equal(t, "created_at:-1", values.Get("sort"))
	assert.Equal(t, "Username-Password-Authentication", values.Get("connection"))
	assert.Equal(t, `logins_count:[10 TO *]`, values.Get("q"))
	assert.Equal(t, "v3", values.Get("search_engine"))
	assert.NotContains(t, values, "include_totals")
}

func TestListConnectionsParams_ToValues(t *testing.T) {
	t.Parallel()

	params := &auth0.ListConnectionsParams{
		Strategy: auth0.StrategyGoogleOAuth2,
		Name:     "google",
	}

	values := params.ToValues()
	assert.Equal(t, "google-oauth2", values.Get("strategy"))
	assert.Equal(t, "google", values.Get("name"))
	assert.Len(t, values, 2)
}

func TestListLogsParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("offset pagination", func(t *testing.T) {
		t.Parallel()

		params := &auth0.ListLogsParams{
			Page:    auth0.Int(1),
			PerPage: auth0.Int(100),
			Sort:    "date:-1",
			Q:       "type:f",
		}

		values := params.ToValues()
		assert.Equal(t, "1", values.Get("page"))
		assert.Equal(t, "100", values.Get("per_page"))
		assert.Equal(t, "date:-1", values.Get("sort"))
		assert.Equal(t, "type:f", values.Get("q"))
	})

	t.Run("checkpoint pagination", func(t *testing.T) {
		t.Parallel()

		params := &auth0.ListLogsParams{
			From: "900000000000000000",
			Take: auth0.Int(50),
		}

		values := params.ToValues()
		assert.Equal(t, "900000000000000000", values.Get("from"))
		assert.Equal(t, "50", values.Get("take"))
		assert.Len(t, values, 2)
	})
}

func TestGetUserLogsParams_ToValues(t *testing.T) {
	t.Parallel()

	params := &auth0.GetUserLogsParams{
		Page:    auth0.Int(0),
		PerPage: auth0.Int(10),
		Sort:    "date:1",
	}

	values := params.ToValues()
	assert.Equal(t, "0", values.Get("page"))
	assert.Equal(t, "10", values.Get("per_page"))
	assert.Equal(t, "date:1", values.Get("sort"))
}

func TestIDTypes_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auth0|abc", auth0.UserID("auth0|abc").String())
	assert.Equal(t, "app-1", auth0.ApplicationID("app-1").String())
	assert.Equal(t, "con_1", auth0.ConnectionID("con_1").String())
}
