package domain

// User is a record held by the user registry.
// ID identifies the record; Fields carries everything else and is opaque to the registry.
type User struct {
	// ID is the identifier used for lookup and removal.
	// It is not required to be unique within a registry.
	ID string `json:"id"`

	// Fields holds arbitrary additional attributes.
	Fields map[string]any `json:"fields,omitempty"`
}
