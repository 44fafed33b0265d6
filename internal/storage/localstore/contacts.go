package localstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/contactbook/internal/apperror"
	"github.com/mmynk/contactbook/internal/models"
)

// ListContacts returns all stored contacts.
func (s *LocalStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	if err := s.getAll(ctx, keyContacts, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetContact retrieves a contact by ID.
func (s *LocalStore) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("contact not found: %s", id))
}

// CreateContact assigns a new ID, appends the contact, and persists the
// full collection.
func (s *LocalStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return err
	}

	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}

	contacts = append(contacts, *contact)
	return s.saveAll(ctx, keyContacts, contacts)
}

// UpdateContact replaces the stored contact with the same ID.
func (s *LocalStore) UpdateContact(ctx context.Context, contact *models.Contact) error {
	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return err
	}

	for i := range contacts {
		if contacts[i].ID == contact.ID {
			contacts[i] = *contact
			return s.saveAll(ctx, keyContacts, contacts)
		}
	}
	return apperror.NotFound(fmt.Sprintf("contact not found: %s", contact.ID))
}

// DeleteContact removes the contact with the given ID.
func (s *LocalStore) DeleteContact(ctx context.Context, id string) error {
	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return err
	}

	filtered := contacts[:0:0]
	for _, c := range contacts {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(contacts) {
		return apperror.NotFound(fmt.Sprintf("contact not found: %s", id))
	}
	return s.saveAll(ctx, keyContacts, filtered)
}

// DeleteContacts removes every contact whose ID appears in ids, in a
// single read-modify-write pass. Unknown IDs are ignored.
func (s *LocalStore) DeleteContacts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return err
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	filtered := contacts[:0:0]
	for _, c := range contacts {
		if !drop[c.ID] {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(contacts) {
		return nil
	}
	return s.saveAll(ctx, keyContacts, filtered)
}
