// Package service orchestrates the store, validator, and CSV converter in
// response to UI-triggered calls. It is the boundary UI components
// consume: every function returns either the resulting data or a typed
// error / validation-message set for the UI to render.
package service

import "github.com/mmynk/contactbook/internal/models"

// FieldErrors maps a form field name to its validation message. A non-nil
// map from a create/update call means validation rejected the input and
// nothing was persisted; the caller should re-render the form. Validation
// failures are expected conditions, not errors.
type FieldErrors map[string]string

// Field names used as FieldErrors keys.
const (
	FieldName  = "name"
	FieldPhone = "phone"
)

func (f FieldErrors) reporter(field string) func(string) {
	return func(msg string) {
		if _, ok := f[field]; !ok {
			f[field] = msg
		}
	}
}

// ContactsDTO is the payload the contact views load: the full contact and
// group lists plus the contact selected for editing, if any. A nil
// Selected means the list view; a Selected with an empty ID means the
// new-contact form.
type ContactsDTO struct {
	Selected *models.Contact
	Contacts []models.Contact
	Groups   []models.Group
}

// GroupDTO is the payload the group views load.
type GroupDTO struct {
	Group  models.Group
	Groups []models.Group
}
