package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmynk/contactbook/internal/models"
	"github.com/mmynk/contactbook/internal/storage"
	"github.com/mmynk/contactbook/internal/validate"
)

// GroupService handles group CRUD on behalf of the UI, including the
// cascading delete that keeps contact references consistent.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage
// backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// List returns all groups.
func (s *GroupService) List(ctx context.Context) ([]models.Group, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("List groups failed", "error", err)
		return nil, err
	}
	return groups, nil
}

// GetForEdit returns the edit-view payload for one group.
// Returns a not-found error if the ID does not resolve.
func (s *GroupService) GetForEdit(ctx context.Context, id string) (*GroupDTO, error) {
	group, err := s.store.GetGroup(ctx, id)
	if err != nil {
		slog.Error("GetForEdit failed", "group_id", id, "error", err)
		return nil, err
	}

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	return &GroupDTO{Group: *group, Groups: groups}, nil
}

// NewTemplate returns the new-group form payload.
func (s *GroupService) NewTemplate() *GroupDTO {
	return &GroupDTO{}
}

// Create validates and persists a new group. On validation failure the
// returned FieldErrors is non-nil and nothing is persisted.
func (s *GroupService) Create(ctx context.Context, group models.Group) (*models.Group, FieldErrors, error) {
	slog.Info("Create group requested", "name", group.Name)

	group.ID = ""
	result, fieldErrs, err := s.save(ctx, group, false)
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	slog.Info("Group created", "group_id", result.ID)
	return result, nil, nil
}

// Update validates and persists a group rename, matched by ID. The
// duplicate-name check excludes the group itself.
func (s *GroupService) Update(ctx context.Context, group models.Group) (*models.Group, FieldErrors, error) {
	slog.Info("Update group requested", "group_id", group.ID)

	result, fieldErrs, err := s.save(ctx, group, true)
	if err != nil || fieldErrs != nil {
		return nil, fieldErrs, err
	}

	slog.Info("Group updated", "group_id", result.ID)
	return result, nil, nil
}

// Delete removes a group and clears the group reference on every contact
// that pointed at it. The contacts survive ungrouped.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	slog.Info("Delete group requested", "group_id", id)

	if err := s.store.DeleteGroup(ctx, id); err != nil {
		slog.Error("Delete group failed", "group_id", id, "error", err)
		return err
	}

	slog.Info("Group deleted", "group_id", id)
	return nil
}

func (s *GroupService) save(ctx context.Context, group models.Group, isEdit bool) (*models.Group, FieldErrors, error) {
	group.Name = strings.TrimSpace(group.Name)

	existing, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, nil, err
	}

	fieldErrs := FieldErrors{}
	if !validate.Group(group, existing, isEdit, fieldErrs.reporter(FieldName)) {
		slog.Info("Group rejected by validation")
		return nil, fieldErrs, nil
	}

	if isEdit {
		err = s.store.UpdateGroup(ctx, &group)
	} else {
		err = s.store.CreateGroup(ctx, &group)
	}
	if err != nil {
		slog.Error("Persisting group failed", "group_id", group.ID, "error", err)
		return nil, nil, err
	}
	return &group, nil, nil
}
