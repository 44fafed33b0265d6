package models

// CSVContact is the denormalized, human-editable projection of a Contact
// and its group name, exchanged through CSV files. It is a transfer record
// only and is never written to the store.
type CSVContact struct {
	// ContactID is the contact's ID, or empty for rows that should create
	// a new contact on import.
	ContactID string

	// FullName maps to Contact.Name.
	FullName string

	// Phone maps to Contact.Phone.
	Phone string

	// Memo maps to Contact.Memo.
	Memo string

	// GroupName is the referenced group's display name, resolved to a
	// group ID on import and auto-created when unknown. Empty means
	// ungrouped.
	GroupName string
}
