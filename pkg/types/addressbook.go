package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// AddressBook operation errors.
var (
	ErrDuplicateContact = errors.New("contact already exists")
	ErrContactNotFound  = errors.New("contact not found")
	ErrNegativeWindow   = errors.New("birthday window must not be negative")
)

// DefaultBirthdayWindow is the window applied when the caller does not
// specify one for UpcomingBirthdays.
const DefaultBirthdayWindow = 7

// AddressBook is a keyed collection of contact records. Names are unique
// under case-insensitive comparison; iteration follows insertion order.
// The map is never exposed, so records cannot bypass the Add path.
type AddressBook struct {
	records map[string]*Record
	order   []string // normalized keys, insertion order
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// NormalizeName returns the canonical lookup key for a contact name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add inserts the record. Returns ErrDuplicateContact if a record with the
// same normalized name is already present; the book is left unchanged.
func (b *AddressBook) Add(record *Record) error {
	key := NormalizeName(record.Name.Value)
	if _, exists := b.records[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateContact, record.Name.Value)
	}
	b.records[key] = record
	b.order = append(b.order, key)
	return nil
}

// Get returns the record for the given name.
// Returns ErrContactNotFound if absent.
func (b *AddressBook) Get(name string) (*Record, error) {
	record, ok := b.records[NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	return record, nil
}

// Delete removes the record for the given name.
// Returns ErrContactNotFound if absent.
func (b *AddressBook) Delete(name string) error {
	key := NormalizeName(name)
	if _, ok := b.records[key]; !ok {
		return fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search returns every record matching the query, in insertion order.
// An empty result is a valid outcome, not an error.
func (b *AddressBook) Search(query string) []*Record {
	var found []*Record
	for _, key := range b.order {
		if b.records[key].Matches(query) {
			found = append(found, b.records[key])
		}
	}
	return found
}

// UpcomingBirthday pairs a record with its distance to the next birthday.
type UpcomingBirthday struct {
	Record *Record
	Days   int
	Date   time.Time // the occurrence itself
}

// UpcomingBirthdays returns the contacts whose next birthday falls within
// windowDays of today, inclusive on both ends, ordered by ascending day
// count with insertion order breaking ties.
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) ([]UpcomingBirthday, error) {
	if windowDays < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWindow, windowDays)
	}
	var upcoming []UpcomingBirthday
	for _, key := range b.order {
		record := b.records[key]
		days, ok := record.DaysUntilBirthday(today)
		if !ok || days > windowDays {
			continue
		}
		date, _ := record.NextBirthday(today)
		upcoming = append(upcoming, UpcomingBirthday{Record: record, Days: days, Date: date})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Days < upcoming[j].Days
	})
	return upcoming, nil
}

// All returns the records in insertion order.
func (b *AddressBook) All() []*Record {
	all := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		all = append(all, b.records[key])
	}
	return all
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}
