package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/contactbook/internal/models"
	"github.com/mmynk/contactbook/internal/storage"
	"github.com/mmynk/contactbook/internal/validate"
)

// ContactService handles contact CRUD on behalf of the UI.
type ContactService struct {
	store storage.Store
}

// NewContactService creates a new ContactService with the given storage
// backend.
func NewContactService(store storage.Store) *ContactService {
	return &ContactService{store: store}
}

// List returns the current contacts and groups for the list view.
func (s *ContactService) List(ctx context.Context) (*ContactsDTO, error) {
	contacts, groups, err := s.load(ctx)
	if err != nil {
		slog.Error("List contacts failed", "error", err)
		return nil, err
	}
	return &ContactsDTO{Contacts: contacts, Groups: groups}, nil
}

// GetForEdit returns the edit-view payload for one contact.
// Returns a not-found error if the ID does not resolve.
func (s *ContactService) GetForEdit(ctx context.Context, id string) (*ContactsDTO, error) {
	contact, err := s.store.GetContact(ctx, id)
	if err != nil {
		slog.Error("GetForEdit failed", "contact_id", id, "error", err)
		return nil, err
	}

	contacts, groups, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ContactsDTO{Selected: contact, Contacts: contacts, Groups: groups}, nil
}

// NewTemplate returns the new-contact form payload: a blank contact plus
// the current lists.
func (s *ContactService) NewTemplate(ctx context.Context) (*ContactsDTO, error) {
	contacts, groups, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &ContactsDTO{
		Selected: &models.Contact{},
		Contacts: contacts,
		Groups:   groups,
	}, nil
}

// Create validates and persists a new contact. On validation failure the
// returned FieldErrors is non-nil, nothing is persisted, and the error is
// nil.
func (s *ContactService) Create(ctx context.Context, contact models.Contact) (*models.Contact, FieldErrors, error) {
	slog.Info("Create contact requested", "name", contact.Name)

	contact.ID = ""
	result, fieldErrs, err := s.save(ctx, contact, false)
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	slog.Info("Contact created", "contact_id", result.ID)
	return result, nil, nil
}

// Update validates and persists changes to an existing contact, matched
// by ID. The duplicate-name check excludes the contact itself.
func (s *ContactService) Update(ctx context.Context, contact models.Contact) (*models.Contact, FieldErrors, error) {
	slog.Info("Update contact requested", "contact_id", contact.ID)

	result, fieldErrs, err := s.save(ctx, contact, true)
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	slog.Info("Contact updated", "contact_id", result.ID)
	return result, nil, nil
}

// Delete removes one contact by ID.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	slog.Info("Delete contact requested", "contact_id", id)

	if err := s.store.DeleteContact(ctx, id); err != nil {
		slog.Error("Delete contact failed", "contact_id", id, "error", err)
		return err
	}
	return nil
}

// DeleteMany removes the selected contacts in one pass. IDs that no
// longer resolve are skipped silently, so a stale multi-select cannot
// fail the whole operation.
func (s *ContactService) DeleteMany(ctx context.Context, ids []string) error {
	slog.Info("Delete contacts requested", "count", len(ids))

	if err := s.store.DeleteContacts(ctx, ids); err != nil {
		slog.Error("Delete contacts failed", "error", err)
		return err
	}
	return nil
}

func (s *ContactService) load(ctx context.Context) ([]models.Contact, []models.Group, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	return contacts, groups, nil
}

// save runs the shared validate-then-persist path for Create and Update.
func (s *ContactService) save(ctx context.Context, contact models.Contact, isEdit bool) (*models.Contact, FieldErrors, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Phone = strings.TrimSpace(contact.Phone)

	existing, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, nil, err
	}

	fieldErrs := FieldErrors{}
	ok := validate.Contact(contact, existing, isEdit,
		fieldErrs.reporter(FieldName),
		fieldErrs.reporter(FieldPhone),
	)
	if !ok {
		slog.Info("Contact rejected by validation", "fields", len(fieldErrs))
		return nil, fieldErrs, nil
	}

	if isEdit {
		err = s.store.UpdateContact(ctx, &contact)
	} else {
		err = s.store.CreateContact(ctx, &contact)
	}
	if err != nil {
		slog.Error("Persisting contact failed", "contact_id", contact.ID, "error", err)
		return nil, nil, err
	}
	return &contact, nil, nil
}
