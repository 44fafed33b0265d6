package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/contactbook/internal/models"
)

func names(contacts []models.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	contacts := []models.Contact{
		{Name: "Jane Doe"},
		{Name: "John Smith"},
		{Name: "山田太郎"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches all", "", []string{"Jane Doe", "John Smith", "山田太郎"}},
		{"substring", "smith", []string{"John Smith"}},
		{"case-insensitive", "JANE", []string{"Jane Doe"}},
		{"japanese", "山田", []string{"山田太郎"}},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(contacts, tt.query)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSectionLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice", "A"},
		{"bob", "B"},
		{"あおい", "あ"},
		{"いとう", "あ"},
		{"カトウ", "か"},
		{"ぐんじ", "か"},
		{"すずき", "さ"},
		{"たなか", "た"},
		{"にしだ", "な"},
		{"ばば", "は"},
		{"むらた", "ま"},
		{"よしだ", "や"},
		{"りん", "ら"},
		{"わだ", "わ"},
		{"ヲタク", "わ"},
		{"山田", "#"},
		{"123", "#"},
		{"", "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sectionLabel(tt.name))
		})
	}
}

func TestSections(t *testing.T) {
	contacts := []models.Contact{
		{Name: "たなか"},
		{Name: "Bob"},
		{Name: "あおい"},
		{Name: "Alice"},
		{Name: "123"},
	}

	sections := Sections(contacts)

	labels := make([]string, len(sections))
	for i, s := range sections {
		labels[i] = s.Label
	}
	require.Equal(t, []string{"A", "B", "あ", "た", "#"}, labels,
		"sections follow the fixed bar order with empty buckets omitted")

	assert.Equal(t, []string{"Alice"}, names(sections[0].Contacts))
	assert.Equal(t, []string{"Bob"}, names(sections[1].Contacts))
}

func TestSectionsSortWithinBucket(t *testing.T) {
	contacts := []models.Contact{
		{Name: "Anna"},
		{Name: "Abel"},
		{Name: "Aki"},
	}

	sections := Sections(contacts)
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Abel", "Aki", "Anna"}, names(sections[0].Contacts))
}

func TestSectionsDoesNotModifyInput(t *testing.T) {
	contacts := []models.Contact{
		{Name: "Zoe"},
		{Name: "Amy"},
	}

	Sections(contacts)
	assert.Equal(t, []string{"Zoe", "Amy"}, names(contacts))
}
