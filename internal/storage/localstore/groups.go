package localstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/contactbook/internal/apperror"
	"github.com/mmynk/contactbook/internal/models"
)

// ListGroups returns all stored groups.
func (s *LocalStore) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	if err := s.getAll(ctx, keyGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup retrieves a group by ID.
func (s *LocalStore) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, apperror.NotFound(fmt.Sprintf("group not found: %s", id))
}

// CreateGroup assigns a new ID, appends the group, and persists the full
// collection.
func (s *LocalStore) CreateGroup(ctx context.Context, group *models.Group) error {
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return err
	}

	if group.ID == "" {
		group.ID = uuid.New().String()
	}

	groups = append(groups, *group)
	return s.saveAll(ctx, keyGroups, groups)
}

// UpdateGroup replaces the stored group with the same ID.
func (s *LocalStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return err
	}

	for i := range groups {
		if groups[i].ID == group.ID {
			groups[i] = *group
			return s.saveAll(ctx, keyGroups, groups)
		}
	}
	return apperror.NotFound(fmt.Sprintf("group not found: %s", group.ID))
}

// DeleteGroup removes the group with the given ID and resets the GroupID
// of every contact that referenced it to null. Contacts are updated and
// persisted before the group set, so a referencing contact never outlives
// its group.
func (s *LocalStore) DeleteGroup(ctx context.Context, id string) error {
	groups, err := s.ListGroups(ctx)
	if err != nil {
		return err
	}

	filtered := groups[:0:0]
	for _, g := range groups {
		if g.ID != id {
			filtered = append(filtered, g)
		}
	}
	if len(filtered) == len(groups) {
		return apperror.NotFound(fmt.Sprintf("group not found: %s", id))
	}

	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range contacts {
		if contacts[i].InGroup(id) {
			contacts[i].GroupID = nil
			changed = true
		}
	}
	if changed {
		if err := s.saveAll(ctx, keyContacts, contacts); err != nil {
			return err
		}
	}

	return s.saveAll(ctx, keyGroups, filtered)
}
