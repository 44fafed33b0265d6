// Package index shapes the contact list for the jump-bar view: filtering
// by search query, sorting with Japanese collation, and bucketing into
// the fixed A-Z / gojūon / # section order.
package index

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/contactbook/internal/models"
)

// SectionOrder is the fixed order sections appear in: the Latin alphabet,
// the ten gojūon rows, then # for everything else.
var SectionOrder = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"あ", "か", "さ", "た", "な", "は", "ま", "や", "ら", "わ", "#",
}

// Section is one labeled bucket of the grouped contact list.
type Section struct {
	Label    string
	Contacts []models.Contact
}

// Filter returns the contacts whose name contains the query,
// case-insensitively. An empty query matches everything.
func Filter(contacts []models.Contact, query string) []models.Contact {
	q := strings.ToLower(query)
	filtered := []models.Contact{}
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Sections sorts contacts by name with Japanese collation and groups them
// by initial character. Sections come back in SectionOrder with empty
// buckets omitted. The input slice is not modified.
func Sections(contacts []models.Contact) []Section {
	sorted := make([]models.Contact, len(contacts))
	copy(sorted, contacts)

	c := collate.New(language.Japanese)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	buckets := make(map[string][]models.Contact)
	for _, contact := range sorted {
		label := sectionLabel(contact.Name)
		buckets[label] = append(buckets[label], contact)
	}

	sections := []Section{}
	for _, label := range SectionOrder {
		if group, ok := buckets[label]; ok {
			sections = append(sections, Section{Label: label, Contacts: group})
		}
	}
	return sections
}

// kanaRows maps each gojūon row label to the rune ranges it covers, in
// both hiragana and katakana. The ranges include the voiced and small
// variants that fall between the base codepoints.
var kanaRows = []struct {
	label  string
	ranges [][2]rune
}{
	{"あ", [][2]rune{{'あ', 'お'}, {'ア', 'オ'}}},
	{"か", [][2]rune{{'か', 'こ'}, {'カ', 'コ'}}},
	{"さ", [][2]rune{{'さ', 'そ'}, {'サ', 'ソ'}}},
	{"た", [][2]rune{{'た', 'と'}, {'タ', 'ト'}}},
	{"な", [][2]rune{{'な', 'の'}, {'ナ', 'ノ'}}},
	{"は", [][2]rune{{'は', 'ほ'}, {'ハ', 'ホ'}}},
	{"ま", [][2]rune{{'ま', 'も'}, {'マ', 'モ'}}},
	{"や", [][2]rune{{'や', 'よ'}, {'ヤ', 'ヨ'}}},
	{"ら", [][2]rune{{'ら', 'ろ'}, {'ラ', 'ロ'}}},
	{"わ", [][2]rune{{'わ', 'ん'}, {'ワ', 'ン'}}},
}

// sectionLabel classifies a name by its first rune: upcased Latin letters
// map to A-Z, kana map to their gojūon row, everything else (digits,
// kanji, symbols, empty names) lands in #.
func sectionLabel(name string) string {
	for _, r := range name {
		upper := unicode.ToUpper(r)
		if upper >= 'A' && upper <= 'Z' {
			return string(upper)
		}
		for _, row := range kanaRows {
			for _, rng := range row.ranges {
				if r >= rng[0] && r <= rng[1] {
					return row.label
				}
			}
		}
		return "#"
	}
	return "#"
}
