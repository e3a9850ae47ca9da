package auth0

import "net/url"

// User represents an Auth0 user profile.
type User struct {
	UserID        UserID     `json:"user_id"`
	Email         string     `json:"email,omitempty"`
	EmailVerified *bool      `json:"email_verified,omitempty"`
	Username      string     `json:"username,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	PhoneVerified *bool      `json:"phone_verified,omitempty"`
	CreatedAt     string     `json:"created_at,omitempty"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
	Identities    []Identity `json:"identities,omitempty"`
	AppMetadata   Metadata   `json:"app_metadata,omitempty"`
	UserMetadata  Metadata   `json:"user_metadata,omitempty"`
	Picture       string     `json:"picture,omitempty"`
	Name          string     `json:"name,omitempty"`
	Nickname      string     `json:"nickname,omitempty"`
	GivenName     string     `json:"given_name,omitempty"`
	FamilyName    string     `json:"family_name,omitempty"`
	Blocked       *bool      `json:"blocked,omitempty"`
	LastIP        string     `json:"last_ip,omitempty"`
	LastLogin     string     `json:"last_login,omitempty"`
	LoginsCount   int64      `json:"logins_count,omitempty"`
}

// Identity is a user's link to an authentication provider. A user can carry
// several identities from different connections.
type Identity struct {
	Connection string `json:"connection"`
	UserID     string `json:"user_id"`
	Provider   string `json:"provider"`
	IsSocial   bool   `json:"isSocial"`
}

// UserCreateRequest is the payload for creating a user. Connection is
// required; the remaining fields depend on the connection's strategy.
type UserCreateRequest struct {
	Connection    string   `json:"connection"`
	Email         string   `json:"email,omitempty"`
	PhoneNumber   string   `json:"phone_number,omitempty"`
	UserMetadata  Metadata `json:"user_metadata,omitempty"`
	Blocked       *bool    `json:"blocked,omitempty"`
	EmailVerified *bool    `json:"email_verified,omitempty"`
	PhoneVerified *bool    `json:"phone_verified,omitempty"`
	AppMetadata   Metadata `json:"app_metadata,omitempty"`
	GivenName     string   `json:"given_name,omitempty"`
	FamilyName    string   `json:"family_name,omitempty"`
	Name          string   `json:"name,omitempty"`
	Nickname      string   `json:"nickname,omitempty"`
	Picture       string   `json:"picture,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
	Password      string   `json:"password,omitempty"`
	Username      string   `json:"username,omitempty"`
	VerifyEmail   *bool    `json:"verify_email,omitempty"`
}

// UserUpdateRequest is the payload for updating a user. Only set fields are
// sent.
type UserUpdateRequest struct {
	Blocked           *bool    `json:"blocked,omitempty"`
	EmailVerified     *bool    `json:"email_verified,omitempty"`
	Email             string   `json:"email,omitempty"`
	PhoneNumber       string   `json:"phone_number,omitempty"`
	PhoneVerified     *bool    `json:"phone_verified,omitempty"`
	UserMetadata      Metadata `json:"user_metadata,omitempty"`
	AppMetadata       Metadata `json:"app_metadata,omitempty"`
	GivenName         string   `json:"given_name,omitempty"`
	FamilyName        string   `json:"family_name,omitempty"`
	Name              string   `json:"name,omitempty"`
	Nickname          string   `json:"nickname,omitempty"`
	Picture           string   `json:"picture,omitempty"`
	Password          string   `json:"password,omitempty"`
	Connection        string   `json:"connection,omitempty"`
	ClientID          string   `json:"client_id,omitempty"`
	Username          string   `json:"username,omitempty"`
	VerifyEmail       *bool    `json:"verify_email,omitempty"`
	VerifyPhoneNumber *bool    `json:"verify_phone_number,omitempty"`
}

// ListUsersParams are the query parameters for listing or searching users.
// Q is a free-text query in the Lucene syntax understood by the search
// engine.
type ListUsersParams struct {
	Page          *int
	PerPage       *int
	IncludeTotals *bool
	Sort          string
	Connection    string
	Fields        string
	IncludeFields *bool
	Q             string
	SearchEngine  string
}

// ToValues converts the params to URL query values.
func (p *ListUsersParams) ToValues() url.Values {
	values := url.Values{}
	addInt(values, "page", p.Page)
	addInt(values, "per_page", p.PerPage)
	addBool(values, "include_totals", p.IncludeTotals)
	addString(values, "sort", p.Sort)
	addString(values, "connection", p.Connection)
	addString(values, "fields", p.Fields)
	addBool(values, "include_fields", p.IncludeFields)
	addString(values, "q", p.Q)
	addString(values, "search_engine", p.SearchEngine)

	return values
}

// GetUserLogsParams are the query parameters for fetching a user's logs.
type GetUserLogsParams struct {
	Page    *int
	PerPage *int
	Sort    string
}

// ToValues converts the params to URL query values.
func (p *GetUserLogsParams) ToValues() url.Values {
	values := url.Values{}
	addInt(values, "page", p.Page)
	addInt(values, "per_page", p.PerPage)
	addString(values, "sort", p.Sort)

	return values
}

// UsersPage is the include_totals response shape for users.
type UsersPage struct {
	Users []User `json:"users"`
	Start int    `json:"start"`
	Limit int    `json:"limit"`
	Total int    `json:"total"`
}
