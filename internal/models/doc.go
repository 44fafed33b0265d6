// Package models defines the core domain records for the contact book.
//
// # Models
//
//   - Contact: a person record with name, phone, optional memo, and an
//     optional group membership
//   - Group: a named tag contacts can belong to, at most one per contact
//   - CSVContact: the flat projection of Contact+Group used only at the
//     CSV import/export boundary; never persisted
//
// # Design Principles
//
//  1. **ID strings for relationships**: Contact references its Group by ID,
//     never by pointer, to avoid circular references
//  2. **Explicit null**: Contact.GroupID is a *string so the persisted JSON
//     always carries "groupId": null for ungrouped contacts, rather than
//     omitting the key
//  3. **JSON tags are the storage contract**: the tags below define the
//     exact layout of the arrays stored under the "contacts" and "groups"
//     keys
package models
