package auth0

import (
	"net/url"
	"strconv"
)

// Application represents an Auth0 application (client).
type Application struct {
	ClientID                    ApplicationID   `json:"client_id"`
	Tenant                      string          `json:"tenant,omitempty"`
	Name                        string          `json:"name,omitempty"`
	Description                 string          `json:"description,omitempty"`
	Global                      *bool           `json:"global,omitempty"`
	ClientSecret                string          `json:"client_secret,omitempty"`
	AppType                     AppType         `json:"app_type,omitempty"`
	LogoURI                     string          `json:"logo_uri,omitempty"`
	IsFirstParty                *bool           `json:"is_first_party,omitempty"`
	OIDCConformant              *bool           `json:"oidc_conformant,omitempty"`
	Callbacks                   []string        `json:"callbacks,omitempty"`
	AllowedOrigins              []string        `json:"allowed_origins,omitempty"`
	WebOrigins                  []string        `json:"web_origins,omitempty"`
	ClientAliases               []string        `json:"client_aliases,omitempty"`
	AllowedClients              []string        `json:"allowed_clients,omitempty"`
	AllowedLogoutURLs           []string        `json:"allowed_logout_urls,omitempty"`
	GrantTypes                  []GrantType     `json:"grant_types,omitempty"`
	TokenEndpointAuthMethod     TokenAuthMethod `json:"token_endpoint_auth_method,omitempty"`
	SSO                         *bool           `json:"sso,omitempty"`
	SSODisabled                 *bool           `json:"sso_disabled,omitempty"`
	CrossOriginAuth             *bool           `json:"cross_origin_auth,omitempty"`
	CrossOriginLoc              string          `json:"cross_origin_loc,omitempty"`
	CustomLoginPageOn           *bool           `json:"custom_login_page_on,omitempty"`
	CustomLoginPage             string          `json:"custom_login_page,omitempty"`
	CustomLoginPagePreview      string          `json:"custom_login_page_preview,omitempty"`
	FormTemplate                string          `json:"form_template,omitempty"`
	InitiateLoginURI            string          `json:"initiate_login_uri,omitempty"`
	OrganizationUsage           OrganizationUsage           `json:"organization_usage,omitempty"`
	OrganizationRequireBehavior OrganizationRequireBehavior `json:"organization_require_behavior,omitempty"`
}

// ApplicationCreateRequest is the payload for creating an application.
type ApplicationCreateRequest struct {
	Name                        string          `json:"name"`
	Description                 string          `json:"description,omitempty"`
	LogoURI                     string          `json:"logo_uri,omitempty"`
	Callbacks                   []string        `json:"callbacks,omitempty"`
	AllowedOrigins              []string        `json:"allowed_origins,omitempty"`
	WebOrigins                  []string        `json:"web_origins,omitempty"`
	ClientAliases               []string        `json:"client_aliases,omitempty"`
	AllowedClients              []string        `json:"allowed_clients,omitempty"`
	AllowedLogoutURLs           []string        `json:"allowed_logout_urls,omitempty"`
	GrantTypes                  []GrantType     `json:"grant_types,omitempty"`
	TokenEndpointAuthMethod     TokenAuthMethod `json:"token_endpoint_auth_method,omitempty"`
	AppType                     AppType         `json:"app_type,omitempty"`
	OIDCConformant              *bool           `json:"oidc_conformant,omitempty"`
	SSO                         *bool           `json:"sso,omitempty"`
	CrossOriginAuth             *bool           `json:"cross_origin_auth,omitempty"`
	CrossOriginLoc              string          `json:"cross_origin_loc,omitempty"`
	CustomLoginPageOn           *bool           `json:"custom_login_page_on,omitempty"`
	CustomLoginPage             string          `json:"custom_login_page,omitempty"`
	InitiateLoginURI            string          `json:"initiate_login_uri,omitempty"`
	OrganizationUsage           OrganizationUsage           `json:"organization_usage,omitempty"`
	OrganizationRequireBehavior OrganizationRequireBehavior `json:"organization_require_behavior,omitempty"`
}

// ApplicationUpdateRequest is the payload for updating an application. Only
// set fields are sent.
type ApplicationUpdateRequest struct {
	Name                    string          `json:"name,omitempty"`
	Description             string          `json:"description,omitempty"`
	LogoURI                 string          `json:"logo_uri,omitempty"`
	Callbacks               []string        `json:"callbacks,omitempty"`
	AllowedOrigins          []string        `json:"allowed_origins,omitempty"`
	WebOrigins              []string        `json:"web_origins,omitempty"`
	ClientAliases           []string        `json:"client_aliases,omitempty"`
	AllowedClients          []string        `json:"allowed_clients,omitempty"`
	AllowedLogoutURLs       []string        `json:"allowed_logout_urls,omitempty"`
	GrantTypes              []GrantType     `json:"grant_types,omitempty"`
	TokenEndpointAuthMethod TokenAuthMethod `json:"token_endpoint_auth_method,omitempty"`
	AppType                 AppType         `json:"app_type,omitempty"`
	OIDCConformant          *bool           `json:"oidc_conformant,omitempty"`
	SSO                     *bool           `json:"sso,omitempty"`
	SSODisabled             *bool           `json:"sso_disabled,omitempty"`
	CrossOriginAuth         *bool           `json:"cross_origin_auth,omitempty"`
	CrossOriginLoc          string          `json:"cross_origin_loc,omitempty"`
	CustomLoginPageOn       *bool           `json:"custom_login_page_on,omitempty"`
	CustomLoginPage         string          `json:"custom_login_page,omitempty"`
	InitiateLoginURI        string          `json:"initiate_login_uri,omitempty"`
}

// ListApplicationsParams are the query parameters for listing applications.
type ListApplicationsParams struct {
	Page          *int
	PerPage       *int
	IncludeTotals *bool
	Fields        string
	IncludeFields *bool
	IsGlobal      *bool
	IsFirstParty  *bool
	AppType       AppType
}

// ToValues converts the params to URL query values.
func (p *ListApplicationsParams) ToValues() url.Values {
	values := url.Values{}
	addInt(values, "page", p.Page)
	addInt(values, "per_page", p.PerPage)
	addBool(values, "include_totals", p.IncludeTotals)
	addString(values, "fields", p.Fields)
	addBool(values, "include_fields", p.IncludeFields)
	addBool(values, "is_global", p.IsGlobal)
	addBool(values, "is_first_party", p.IsFirstParty)
	addString(values, "app_type", string(p.AppType))

	return values
}

// ApplicationsPage is the include_totals response shape for applications.
type ApplicationsPage struct {
	Clients []Application `json:"clients"`
	Start   int           `json:"start"`
	Limit   int           `json:"limit"`
	Total   int           `json:"total"`
}

func addInt(values url.Values, key string, v *int) {
	if v != nil {
		values.Set(key, strconv.Itoa(*v))
	}
}

func addBool(values url.Values, key string, v *bool) {
	if v != nil {
		values.Set(key, strconv.FormatBool(*v))
	}
}

func addString(values url.Values, key, v string) {
	if v != "" {
		values.Set(key, v)
	}
}

// Int returns a pointer to v, for use in params literals.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v, for use in params and request literals.
func Bool(v bool) *bool {
	return &v
}
