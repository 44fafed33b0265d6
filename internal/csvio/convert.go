package csvio

import (
	"strings"

	"github.com/mmynk/contactbook/internal/models"
)

// AddGroupFunc creates a group with the given name and returns it. The
// converter calls it when an import row names a group that does not exist
// yet; injecting the side effect keeps the conversion itself pure.
type AddGroupFunc func(name string) (*models.Group, error)

// ToContact converts an import row to a Contact.
//
// A row whose ContactID matches an existing contact keeps that ID (update
// semantics) and inherits its memo when the row leaves the memo blank; any
// other row produces an ID-less contact for the store to assign. The group
// name is resolved against groups by exact match before addGroup is
// consulted, so repeated rows naming the same new group create it once as
// long as the caller folds created groups back into the slice it passes.
func ToContact(row models.CSVContact, contacts []models.Contact, groups []models.Group, addGroup AddGroupFunc) (*models.Contact, error) {
	var existing *models.Contact
	for i := range contacts {
		if contacts[i].ID == row.ContactID && row.ContactID != "" {
			existing = &contacts[i]
			break
		}
	}

	var groupID *string
	if name := strings.TrimSpace(row.GroupName); name != "" {
		group := findGroupByName(groups, name)
		if group == nil {
			created, err := addGroup(name)
			if err != nil {
				return nil, err
			}
			group = created
		}
		groupID = &group.ID
	}

	contact := &models.Contact{
		Name:    row.FullName,
		Phone:   row.Phone,
		Memo:    row.Memo,
		GroupID: groupID,
	}
	if existing != nil {
		contact.ID = existing.ID
		if contact.Memo == "" {
			contact.Memo = existing.Memo
		}
	}
	return contact, nil
}

// FromContact converts a stored contact to an export row. A GroupID that
// no longer resolves yields an empty group name rather than an error, so
// a dangling reference cannot block an export.
func FromContact(contact models.Contact, groups []models.Group) models.CSVContact {
	groupName := ""
	if contact.GroupID != nil {
		for _, g := range groups {
			if g.ID == *contact.GroupID {
				groupName = g.Name
				break
			}
		}
	}

	return models.CSVContact{
		ContactID: contact.ID,
		FullName:  contact.Name,
		Phone:     contact.Phone,
		Memo:      contact.Memo,
		GroupName: groupName,
	}
}

func findGroupByName(groups []models.Group, name string) *models.Group {
	for i := range groups {
		if groups[i].Name == name {
			return &groups[i]
		}
	}
	return nil
}
