// Package types defines the validated field kinds, contact and note
// entities, the AddressBook and NoteBook collections, and the standard
// errors for the Satchel assistant.
package types
