package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/contactbook/internal/apperror"
	"github.com/mmynk/contactbook/internal/csvio"
	"github.com/mmynk/contactbook/internal/models"
	"github.com/mmynk/contactbook/internal/storage"
	"github.com/mmynk/contactbook/internal/validate"
)

// CSVService handles bulk import and export of contacts through the CSV
// interchange format.
type CSVService struct {
	store storage.Store
	now   func() time.Time
}

// NewCSVService creates a new CSVService with the given storage backend.
func NewCSVService(store storage.Store) *CSVService {
	return &CSVService{store: store, now: time.Now}
}

// ImportResult summarizes a committed import batch.
type ImportResult struct {
	Created       int
	Updated       int
	GroupsCreated int
}

// ExportResult carries a rendered export file: the timestamped download
// name and the BOM-prefixed CSV payload.
type ExportResult struct {
	FileName string
	Data     string
}

// Import parses CSV text, validates the whole batch, and upserts the rows
// by contact ID. The import is all-or-nothing: any invalid row aborts it
// before a single write, carrying the first failing row's message. Groups
// referenced by name are created on demand, at most once per distinct
// name.
func (s *CSVService) Import(ctx context.Context, text string) (*ImportResult, error) {
	rows, err := csvio.Unmarshal(text)
	if err != nil {
		slog.Error("CSV parse failed", "error", err)
		return nil, apperror.Wrap("failed to parse csv file", apperror.CodeInvalid, err)
	}
	if len(rows) == 0 {
		return nil, apperror.New("no data in csv file", apperror.CodeInvalid)
	}

	slog.Info("CSV import requested", "rows", len(rows))

	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	var firstFailure string
	ok := validate.ContactsFromCSV(rows, contacts, func(msg string) {
		if firstFailure == "" {
			firstFailure = msg
		}
	})
	if !ok {
		slog.Info("CSV import rejected", "reason", firstFailure)
		return nil, apperror.New("import aborted: "+firstFailure, apperror.CodeUnprocessable)
	}

	result := &ImportResult{}

	// The converter looks groups up by name before calling addGroup, so
	// folding each created group back into the slice is what deduplicates
	// repeated names within the batch.
	addGroup := func(name string) (*models.Group, error) {
		group := &models.Group{Name: name}
		if err := s.store.CreateGroup(ctx, group); err != nil {
			return nil, err
		}
		groups = append(groups, *group)
		result.GroupsCreated++
		return group, nil
	}

	for _, row := range rows {
		contact, err := csvio.ToContact(row, contacts, groups, addGroup)
		if err != nil {
			slog.Error("CSV row conversion failed", "error", err)
			return nil, err
		}

		if contact.ID != "" {
			err = s.store.UpdateContact(ctx, contact)
			result.Updated++
		} else {
			err = s.store.CreateContact(ctx, contact)
			result.Created++
		}
		if err != nil {
			slog.Error("CSV upsert failed", "contact_id", contact.ID, "error", err)
			return nil, err
		}
	}

	slog.Info("CSV import committed",
		"created", result.Created,
		"updated", result.Updated,
		"groups_created", result.GroupsCreated,
	)
	return result, nil
}

// Export renders all contacts with both a name and a phone number as a
// CSV file. Reports a no-data error when nothing qualifies, so the caller
// produces no file.
func (s *CSVService) Export(ctx context.Context) (*ExportResult, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.CSVContact, 0, len(contacts))
	for _, contact := range contacts {
		row := csvio.FromContact(contact, groups)
		if row.FullName == "" || row.Phone == "" {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, apperror.New("no data to export", apperror.CodeInvalid)
	}

	data, err := csvio.Marshal(rows)
	if err != nil {
		slog.Error("CSV export failed", "error", err)
		return nil, err
	}

	result := &ExportResult{
		FileName: csvio.ExportFileName(s.now()),
		Data:     data,
	}
	slog.Info("CSV export rendered", "rows", len(rows), "file", result.FileName)
	return result, nil
}
