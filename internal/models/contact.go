package models

// Contact represents a single address-book entry.
type Contact struct {
	// ID is the unique identifier for the contact (UUID format).
	// Assigned by the store on create; stable afterwards.
	ID string `json:"id"`

	// Name is the display name. Required, unique among contacts.
	Name string `json:"name"`

	// Phone is the phone number: digits and hyphens only, starting with 0,
	// 10-11 digits once hyphens are removed.
	Phone string `json:"phone"`

	// Memo is optional free text.
	Memo string `json:"memo"`

	// GroupID references the group this contact belongs to.
	// nil means ungrouped and serializes as JSON null.
	GroupID *string `json:"groupId"`
}

// InGroup reports whether the contact references the given group.
func (c *Contact) InGroup(groupID string) bool {
	return c.GroupID != nil && *c.GroupID == groupID
}
