package auth0

import "net/url"

// LogEvent represents a tenant log entry (an authentication or management
// event).
type LogEvent struct {
	LogID        string         `json:"log_id"`
	Type         string         `json:"type"`
	Date         string         `json:"date,omitempty"`
	ClientID     string         `json:"client_id,omitempty"`
	ClientName   string         `json:"client_name,omitempty"`
	IP           string         `json:"ip,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	UserID       string         `json:"user_id,omitempty"`
	UserName     string         `json:"user_name,omitempty"`
	Connection   string         `json:"connection,omitempty"`
	ConnectionID string         `json:"connection_id,omitempty"`
	Description  string         `json:"description,omitempty"`
	Audience     string         `json:"audience,omitempty"`
	Scope        string         `json:"scope,omitempty"`
	Strategy     string         `json:"strategy,omitempty"`
	StrategyType string         `json:"strategy_type,omitempty"`
	Hostname     string         `json:"hostname,omitempty"`
	Auth0Client  map[string]any `json:"auth0_client,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	LocationInfo *LocationInfo  `json:"location_info,omitempty"`
}

// LocationInfo is the geo information attached to a log entry.
type LocationInfo struct {
	CountryCode   string  `json:"country_code,omitempty"`
	CountryCode3  string  `json:"country_code3,omitempty"`
	CountryName   string  `json:"country_name,omitempty"`
	CityName      string  `json:"city_name,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	TimeZone      string  `json:"time_zone,omitempty"`
	ContinentCode string  `json:"continent_code,omitempty"`
}

// ListLogsParams are the query parameters for listing or searching logs.
// From and Take select checkpoint pagination; Page/PerPage select offset
// pagination. The two modes are mutually exclusive on the server side.
type ListLogsParams struct {
	Page          *int
	PerPage       *int
	Sort          string
	Fields        string
	IncludeFields *bool
	IncludeTotals *bool
	Q             string
	From          string
	Take          *int
}

// ToValues converts the params to URL query values.
func (p *ListLogsParams) ToValues() url.Values {
	values := url.Values{}
	addInt(values, "page", p.Page)
	addInt(values, "per_page", p.PerPage)
	addString(values, "sort", p.Sort)
	addString(values, "fields", p.Fields)
	addBool(values, "include_fields", p.IncludeFields)
	addBool(values, "include_totals", p.IncludeTotals)
	addString(values, "q", p.Q)
	addString(values, "from", p.From)
	addInt(values, "take", p.Take)

	return values
}

// LogsPage is the include_totals response shape for logs.
type LogsPage struct {
	Logs  []LogEvent `json:"logs"`
	Start int        `json:"start"`
	Limit int        `json:"limit"`
	Total int        `json:"total"`
}
