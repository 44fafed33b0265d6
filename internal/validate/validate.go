// Package validate holds the pure validation predicates for contacts,
// groups, and CSV rows.
//
// Each predicate reports failures through a caller-supplied callback
// instead of returning errors, so the same functions can back live
// per-field form feedback and pre-commit gates. Validation failures are
// expected, recoverable conditions; nothing here touches the store.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/contactbook/internal/models"
)

// Reporter receives a single validation failure message.
type Reporter func(message string)

var (
	phoneCharsRe  = regexp.MustCompile(`^[0-9-]+$`)
	phoneDigitsRe = regexp.MustCompile(`^0[0-9]{9,10}$`)
)

// Name checks that name is non-empty after trimming whitespace.
func Name(name string, report Reporter) bool {
	if strings.TrimSpace(name) == "" {
		report(MsgNameRequired)
		return false
	}
	return true
}

// Phone checks that phone is non-empty, contains only digits and hyphens,
// and once hyphens are removed is a 10-11 digit number starting with 0.
func Phone(phone string, report Reporter) bool {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		report(MsgPhoneRequired)
		return false
	}
	if !phoneCharsRe.MatchString(trimmed) {
		report(MsgPhoneInvalidChars)
		return false
	}
	if !phoneDigitsRe.MatchString(strings.ReplaceAll(trimmed, "-", "")) {
		report(MsgPhoneInvalidLength)
		return false
	}
	return true
}

// Contact checks a contact's name and phone and rejects a name already
// taken by another contact. When isEdit is true the contact's own record
// is excluded from the duplicate check. Name failures go to reportName,
// phone failures to reportPhone.
func Contact(contact models.Contact, existing []models.Contact, isEdit bool, reportName, reportPhone Reporter) bool {
	ok := Name(contact.Name, reportName)
	ok = Phone(contact.Phone, reportPhone) && ok
	if !ok {
		return false
	}

	if nameTaken(contact.Name, contact.ID, existing, isEdit) {
		reportName(MsgNameAlreadyExists)
		return false
	}
	return true
}

// Group checks a group's name for presence and uniqueness. When isEdit is
// true the group's own record is excluded from the duplicate check.
func Group(group models.Group, existing []models.Group, isEdit bool, report Reporter) bool {
	trimmed := strings.TrimSpace(group.Name)
	if trimmed == "" {
		report(MsgGroupNameRequired)
		return false
	}

	for _, g := range existing {
		if g.Name == trimmed && (!isEdit || g.ID != group.ID) {
			report(MsgGroupAlreadyExists)
			return false
		}
	}
	return true
}

// CSVRow checks one import row: name and phone rules on the CSV field
// names, a UUID shape check on a present contactId, and a name collision
// check against existing contacts (excluding the row's own id, so updates
// keeping their name pass).
func CSVRow(row models.CSVContact, existing []models.Contact, report Reporter) bool {
	if !Name(row.FullName, report) {
		return false
	}
	if !Phone(row.Phone, report) {
		return false
	}
	if row.ContactID != "" {
		if _, err := uuid.Parse(row.ContactID); err != nil {
			report(MsgContactIDInvalid)
			return false
		}
	}
	if nameTaken(row.FullName, row.ContactID, existing, row.ContactID != "") {
		report(MsgNameAlreadyExists)
		return false
	}
	return true
}

// ContactsFromCSV validates an import batch, short-circuiting on the
// first invalid row. The reported message is prefixed with the 1-based
// row number. CSV import is all-or-nothing: a single bad row fails the
// whole batch.
func ContactsFromCSV(rows []models.CSVContact, existing []models.Contact, report Reporter) bool {
	for i, row := range rows {
		ok := CSVRow(row, existing, func(msg string) {
			report(fmt.Sprintf("row %d: %s", i+1, msg))
		})
		if !ok {
			return false
		}
	}
	return true
}

// nameTaken reports whether another record already uses the trimmed name.
// selfID is only honored when excludeSelf is set (edit/update paths).
func nameTaken(name, selfID string, existing []models.Contact, excludeSelf bool) bool {
	trimmed := strings.TrimSpace(name)
	for _, c := range existing {
		if c.Name == trimmed && (!excludeSelf || c.ID != selfID) {
			return true
		}
	}
	return false
}
