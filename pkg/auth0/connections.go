package auth0

import "net/url"

// Connection represents an Auth0 connection (an authentication source such
// as a database, social provider, or enterprise directory).
type Connection struct {
	ID                 ConnectionID       `json:"id"`
	Name               string             `json:"name"`
	DisplayName        string             `json:"display_name,omitempty"`
	Strategy           ConnectionStrategy `json:"strategy"`
	Realms             []string           `json:"realms,omitempty"`
	IsDomainConnection *bool              `json:"is_domain_connection,omitempty"`
	EnabledClients     []string           `json:"enabled_clients,omitempty"`
	Metadata           map[string]any     `json:"metadata,omitempty"`
	Options            map[string]any     `json:"options,omitempty"`
}

// ConnectionCreateRequest is the payload for creating a connection.
type ConnectionCreateRequest struct {
	Name               string             `json:"name"`
	Strategy           ConnectionStrategy `json:"strategy"`
	DisplayName        string             `json:"display_name,omitempty"`
	Options            map[string]any     `json:"options,omitempty"`
	EnabledClients     []string           `json:"enabled_clients,omitempty"`
	Realms             []string           `json:"realms,omitempty"`
	IsDomainConnection *bool              `json:"is_domain_connection,omitempty"`
	Metadata           map[string]any     `json:"metadata,omitempty"`
}

// ConnectionUpdateRequest is the payload for updating a connection. Only set
// fields are sent. The strategy of an existing connection cannot change.
type ConnectionUpdateRequest struct {
	DisplayName        string         `json:"display_name,omitempty"`
	Options            map[string]any `json:"options,omitempty"`
	EnabledClients     []string       `json:"enabled_clients,omitempty"`
	Realms             []string       `json:"realms,omitempty"`
	IsDomainConnection *bool          `json:"is_domain_connection,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// ListConnectionsParams are the query parameters for listing connections.
type ListConnectionsParams struct {
	Page          *int
	PerPage       *int
	IncludeTotals *bool
	Strategy      ConnectionStrategy
	Name          string
	Fields        string
	IncludeFields *bool
}

// ToValues converts the params to URL query values.
func (p *ListConnectionsParams) ToValues() url.Values {
	values := url.Values{}
	addInt(values, "page", p.Page)
	addInt(values, "per_page", p.PerPage)
	addBool(values, "include_totals", p.IncludeTotals)
	addString(values, "strategy", string(p.Strategy))
	addString(values, "name", p.Name)
	addString(values, "fields", p.Fields)
	addBool(values, "include_fields", p.IncludeFields)

	return values
}

// ConnectionsPage is the include_totals response shape for connections.
type ConnectionsPage struct {
	Connections []Connection `json:"connections"`
	Start       int          `json:"start"`
	Limit       int          `json:"limit"`
	Total       int          `json:"total"`
}
