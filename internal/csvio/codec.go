// Package csvio implements the CSV boundary: the file codec and the
// conversion between the persisted Contact/Group shape and the flat
// CSVContact transfer record.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmynk/contactbook/internal/models"
)

// Column names of the interchange format. Parsing is keyed on the header
// row, so column order in incoming files is free.
const (
	colContactID = "contactId"
	colFullName  = "fullName"
	colPhone     = "phone"
	colMemo      = "memo"
	colGroupName = "groupName"
)

var header = []string{colContactID, colFullName, colPhone, colMemo, colGroupName}

// bom is the UTF-8 byte order mark spreadsheet applications expect at the
// start of an exported file.
const bom = "\uFEFF"

// Marshal serializes rows into CSV text with a header row, CRLF line
// endings, and a leading UTF-8 BOM.
func Marshal(rows []models.CSVContact) (string, error) {
	var sb strings.Builder
	sb.WriteString(bom)

	w := csv.NewWriter(&sb)
	w.UseCRLF = true

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.ContactID, row.FullName, row.Phone, row.Memo, row.GroupName}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return sb.String(), nil
}

// Unmarshal parses CSV text into transfer rows. The header row is
// required; columns may appear in any order and unknown columns are
// ignored. A leading BOM is tolerated and blank lines are skipped.
func Unmarshal(text string) ([]models.CSVContact, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, bom)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(head))
	for i, name := range head {
		cols[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []models.CSVContact
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, models.CSVContact{
			ContactID: field(record, colContactID),
			FullName:  field(record, colFullName),
			Phone:     field(record, colPhone),
			Memo:      field(record, colMemo),
			GroupName: field(record, colGroupName),
		})
	}
	return rows, nil
}

// ExportFileName builds the timestamped download name for an export
// created at t, e.g. contact_data_260830153000.csv.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("contact_data_%s.csv", t.Format("060102150405"))
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
