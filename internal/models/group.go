package models

// Group represents a named tag contacts can be filed under.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Family", "Work").
	// Required, unique among groups.
	Name string `json:"name"`
}
