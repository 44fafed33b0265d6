// Package storage provides abstractions for persistent contact-book storage.
package storage

import (
	"context"

	"github.com/mmynk/contactbook/internal/models"
)

// Store defines the interface for contact and group storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
//
// All operations are whole-collection read-modify-write: the store is
// intended for small personal contact lists and makes no attempt to index
// or partially update. It is also single-writer; callers must not issue
// concurrent mutations.
type Store interface {
	// ListContacts returns all stored contacts. An empty store yields an
	// empty slice, not an error.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// GetContact retrieves a contact by ID.
	// Returns a not-found error if the ID does not resolve.
	GetContact(ctx context.Context, id string) (*models.Contact, error)

	// CreateContact persists a new contact. The contact.ID field will be
	// populated by the store.
	CreateContact(ctx context.Context, contact *models.Contact) error

	// UpdateContact replaces an existing contact, matched by ID.
	// Returns a not-found error if the contact does not exist.
	UpdateContact(ctx context.Context, contact *models.Contact) error

	// DeleteContact removes a contact by ID.
	// Returns a not-found error if the contact does not exist; the stored
	// collection is left unchanged in that case.
	DeleteContact(ctx context.Context, id string) error

	// DeleteContacts removes every contact whose ID is in ids, in one
	// pass. IDs that do not resolve are ignored.
	DeleteContacts(ctx context.Context, ids []string) error

	// ListGroups returns all stored groups.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, id string) (*models.Group, error)

	// CreateGroup persists a new group. The group.ID field will be
	// populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// UpdateGroup replaces an existing group, matched by ID.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group by ID and clears the GroupID of every
	// contact that referenced it. The contacts themselves survive.
	DeleteGroup(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
