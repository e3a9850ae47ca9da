package auth0

// Metadata holds arbitrary user_metadata/app_metadata key-value blobs.
type Metadata map[string]any

// UserID is a strongly-typed user identifier. It prevents accidental
// confusion with other identifier kinds (application, connection).
type UserID string

// String returns the user ID as a string.
func (id UserID) String() string {
	return string(id)
}

// ApplicationID is a strongly-typed application (client) identifier.
type ApplicationID string

// String returns the application ID as a string.
func (id ApplicationID) String() string {
	return string(id)
}

// ConnectionID is a strongly-typed connection identifier.
type ConnectionID string

// String returns the connection ID as a string.
func (id ConnectionID) String() string {
	return string(id)
}
