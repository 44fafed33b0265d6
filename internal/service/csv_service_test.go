package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/contactbook/internal/apperror"
	"github.com/mmynk/contactbook/internal/models"
)

const csvHeader = "contactId,fullName,phone,memo,groupName\r\n"

func TestCSVImportCreatesContact(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	text := csvHeader + `,Jane Doe,09012345678,,` + "\r\n"

	result, err := svc.Import(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.GroupsCreated)

	contacts, err := store.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
	assert.Equal(t, "09012345678", contacts[0].Phone)
	assert.Nil(t, contacts[0].GroupID)
}

func TestCSVImportUpdatesByID(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	seed := &models.Contact{Name: "Jane Doe", Phone: "09012345678", Memo: "keep me"}
	require.NoError(t, store.CreateContact(ctx, seed))

	text := csvHeader + seed.ID + `,Jane Doe,090-9999-8888,,` + "\r\n"

	result, err := svc.Import(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	contacts, err := store.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, seed.ID, contacts[0].ID)
	assert.Equal(t, "090-9999-8888", contacts[0].Phone)
	assert.Equal(t, "keep me", contacts[0].Memo, "blank memo keeps the stored one")
}

func TestCSVImportDeduplicatesNewGroups(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	text := csvHeader +
		",Jane Doe,09012345678,,Gym\r\n" +
		",Ken Sato,08011112222,,Gym\r\n"

	result, err := svc.Import(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.GroupsCreated)

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1, "the same new group name creates exactly one group")
	assert.Equal(t, "Gym", groups[0].Name)

	contacts, err := store.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, c := range contacts {
		require.NotNil(t, c.GroupID)
		assert.Equal(t, groups[0].ID, *c.GroupID)
	}
}

func TestCSVImportIsAllOrNothing(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	text := csvHeader +
		",Jane Doe,09012345678,,Gym\r\n" +
		",Broken Row,12345,,\r\n"

	_, err := svc.Import(ctx, text)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeUnprocessable, apperror.Code(err))
	assert.Contains(t, err.Error(), "row 2")

	// No partial commit: neither contacts nor auto-created groups.
	contacts, err := store.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCSVImportRejectsEmptyFile(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	for _, text := range []string{"", csvHeader} {
		_, err := svc.Import(ctx, text)
		require.Error(t, err)
		assert.Equal(t, apperror.CodeInvalid, apperror.Code(err))
	}
}

func TestCSVExport(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	}
	ctx := context.Background()

	group := &models.Group{Name: "Friends"}
	require.NoError(t, store.CreateGroup(ctx, group))
	require.NoError(t, store.CreateContact(ctx, &models.Contact{
		Name: "Jane Doe", Phone: "09012345678", GroupID: &group.ID,
	}))

	result, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "contact_data_260830150405.csv", result.FileName)
	assert.True(t, strings.HasPrefix(result.Data, "\uFEFF"))
	assert.Contains(t, result.Data, "contactId,fullName,phone,memo,groupName\r\n")
	assert.Contains(t, result.Data, "Jane Doe,09012345678,,Friends\r\n")
}

func TestCSVExportNoData(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	_, err := svc.Export(ctx)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalid, apperror.Code(err))
	assert.Contains(t, err.Error(), "no data")
}

func TestCSVExportImportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	svc := NewCSVService(store)
	ctx := context.Background()

	group := &models.Group{Name: "Friends"}
	require.NoError(t, store.CreateGroup(ctx, group))
	seed := &models.Contact{Name: "Jane Doe", Phone: "090-1234-5678", Memo: "met in Kyoto", GroupID: &group.ID}
	require.NoError(t, store.CreateContact(ctx, seed))

	exported, err := svc.Export(ctx)
	require.NoError(t, err)

	// Re-importing the exported file is a pure upsert: same contact, same
	// group, no duplicates.
	result, err := svc.Import(ctx, exported.Data)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.GroupsCreated)

	contacts, err := store.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, seed.ID, contacts[0].ID)
	assert.Equal(t, "met in Kyoto", contacts[0].Memo)
	require.NotNil(t, contacts[0].GroupID)
	assert.Equal(t, group.ID, *contacts[0].GroupID)
}
