package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/contactbook/internal/apperror"
	"github.com/mmynk/contactbook/internal/models"
	"github.com/mmynk/contactbook/internal/validate"
)

func TestGroupCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	created, fieldErrs, err := svc.Create(ctx, models.Group{Name: "Friends"})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.NotEmpty(t, created.ID)

	t.Run("duplicate name rejected", func(t *testing.T) {
		result, fieldErrs, err := svc.Create(ctx, models.Group{Name: "Friends"})
		require.NoError(t, err)
		assert.Nil(t, result)
		require.NotNil(t, fieldErrs)
		assert.Equal(t, validate.MsgGroupAlreadyExists, fieldErrs[FieldName])
	})

	t.Run("empty name rejected", func(t *testing.T) {
		result, fieldErrs, err := svc.Create(ctx, models.Group{Name: "   "})
		require.NoError(t, err)
		assert.Nil(t, result)
		require.NotNil(t, fieldErrs)
		assert.Equal(t, validate.MsgGroupNameRequired, fieldErrs[FieldName])
	})

	groups, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1, "rejected groups must not persist")
}

func TestGroupUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	friends, _, err := svc.Create(ctx, models.Group{Name: "Friends"})
	require.NoError(t, err)
	work, _, err := svc.Create(ctx, models.Group{Name: "Work"})
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		friends.Name = "Old Friends"
		updated, fieldErrs, err := svc.Update(ctx, *friends)
		require.NoError(t, err)
		require.Nil(t, fieldErrs)
		assert.Equal(t, "Old Friends", updated.Name)
	})

	t.Run("rename onto another group's name rejected", func(t *testing.T) {
		work.Name = "Old Friends"
		result, fieldErrs, err := svc.Update(ctx, *work)
		require.NoError(t, err)
		assert.Nil(t, result)
		require.NotNil(t, fieldErrs)
		assert.Equal(t, validate.MsgGroupAlreadyExists, fieldErrs[FieldName])
	})

	t.Run("unknown id is a hard failure", func(t *testing.T) {
		_, fieldErrs, err := svc.Update(ctx, models.Group{ID: "missing", Name: "Ghosts"})
		require.Nil(t, fieldErrs)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestGroupGetForEdit(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store)
	ctx := context.Background()

	created, _, err := svc.Create(ctx, models.Group{Name: "Friends"})
	require.NoError(t, err)

	dto, err := svc.GetForEdit(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, dto.Group.ID)
	assert.Len(t, dto.Groups, 1)

	_, err = svc.GetForEdit(ctx, "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestGroupDeleteCascades(t *testing.T) {
	store := newTestStore(t)
	groupSvc := NewGroupService(store)
	contactSvc := NewContactService(store)
	ctx := context.Background()

	group, _, err := groupSvc.Create(ctx, models.Group{Name: "Friends"})
	require.NoError(t, err)

	for _, name := range []string{"A", "B"} {
		_, fieldErrs, err := contactSvc.Create(ctx, models.Contact{
			Name: name, Phone: "09012345678", GroupID: &group.ID,
		})
		require.NoError(t, err)
		require.Nil(t, fieldErrs)
	}

	require.NoError(t, groupSvc.Delete(ctx, group.ID))

	groups, err := groupSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	dto, err := contactSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, dto.Contacts, 2)
	for _, c := range dto.Contacts {
		assert.Nil(t, c.GroupID)
	}

	t.Run("deleting again reports not found", func(t *testing.T) {
		assert.True(t, apperror.IsNotFound(groupSvc.Delete(ctx, group.ID)))
	})
}
