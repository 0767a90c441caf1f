package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Record operation errors.
var (
	ErrDuplicatePhone = errors.New("phone already present on contact")
	ErrPhoneNotFound  = errors.New("phone not found on contact")
)

// Record is one contact: a name key plus phones and optional fields.
// All mutation goes through methods; every field passes validation on the
// way in, including values replayed from persisted data.
type Record struct {
	Name     Field
	Phones   []Field
	Email    *Field
	Address  *Field
	Birthday *Field
}

// NewRecord creates a contact with its mandatory name and first phone.
func NewRecord(name, phone string) (*Record, error) {
	nameField, err := NewField(KindName, name)
	if err != nil {
		return nil, err
	}
	phoneField, err := NewField(KindPhone, phone)
	if err != nil {
		return nil, err
	}
	return &Record{
		Name:   nameField,
		Phones: []Field{phoneField},
	}, nil
}

// AddPhone validates the value and appends it, preserving insertion order.
// Returns ErrDuplicatePhone if the normalized value is already present.
func (r *Record) AddPhone(value string) error {
	phone, err := NewField(KindPhone, value)
	if err != nil {
		return err
	}
	if r.phoneIndex(phone.Value) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, phone.Value)
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

// UpdatePhone replaces old with new in place, keeping the phone's position.
// Returns ErrPhoneNotFound if old is absent; new is validated before any
// change is applied.
func (r *Record) UpdatePhone(oldValue, newValue string) error {
	i := r.phoneIndex(stripPhoneSeparators(oldValue))
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldValue)
	}
	replacement, err := NewField(KindPhone, newValue)
	if err != nil {
		return err
	}
	if j := r.phoneIndex(replacement.Value); j >= 0 && j != i {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, replacement.Value)
	}
	r.Phones[i] = replacement
	return nil
}

// RemovePhone deletes the phone with the given normalized value.
// Returns ErrPhoneNotFound if absent.
func (r *Record) RemovePhone(value string) error {
	i := r.phoneIndex(stripPhoneSeparators(value))
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, value)
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return nil
}

// SetEmail validates and replaces the contact's email.
func (r *Record) SetEmail(value string) error {
	email, err := NewField(KindEmail, value)
	if err != nil {
		return err
	}
	r.Email = &email
	return nil
}

// ClearEmail removes the email. Idempotent.
func (r *Record) ClearEmail() {
	r.Email = nil
}

// SetAddress validates and replaces the contact's address.
func (r *Record) SetAddress(value string) error {
	address, err := NewField(KindAddress, value)
	if err != nil {
		return err
	}
	r.Address = &address
	return nil
}

// ClearAddress removes the address. Idempotent.
func (r *Record) ClearAddress() {
	r.Address = nil
}

// SetBirthday validates and replaces the contact's birthday.
func (r *Record) SetBirthday(value string) error {
	birthday, err := NewField(KindBirthday, value)
	if err != nil {
		return err
	}
	r.Birthday = &birthday
	return nil
}

// ClearBirthday removes the birthday. Idempotent.
func (r *Record) ClearBirthday() {
	r.Birthday = nil
}

// Matches reports whether the query occurs, case-insensitively, in the name,
// any phone, the email, the address, or the birthday's rendered date.
func (r *Record) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Name.Value), q) {
		return true
	}
	for _, p := range r.Phones {
		if strings.Contains(p.Value, q) {
			return true
		}
	}
	for _, f := range []*Field{r.Email, r.Address, r.Birthday} {
		if f != nil && strings.Contains(strings.ToLower(f.Value), q) {
			return true
		}
	}
	return false
}

// NextBirthday returns the next calendar occurrence of the contact's
// birthday on or after today. February 29 maps to March 1 in non-leap
// years. ok is false when no birthday is set.
func (r *Record) NextBirthday(today time.Time) (next time.Time, ok bool) {
	if r.Birthday == nil {
		return time.Time{}, false
	}
	today = truncateToDay(today)
	born := r.Birthday.Date()
	// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
	next = time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next, true
}

// DaysUntilBirthday returns the non-negative number of days from today to
// the next occurrence of the birthday. ok is false when no birthday is set.
func (r *Record) DaysUntilBirthday(today time.Time) (days int, ok bool) {
	next, ok := r.NextBirthday(today)
	if !ok {
		return 0, false
	}
	return int(next.Sub(truncateToDay(today)).Hours() / 24), true
}

// String renders the contact in the list/show format.
func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s, phones: %s", r.Name.Value, renderPhones(r.Phones))
	if r.Email != nil {
		fmt.Fprintf(&b, ", email: %s", r.Email.Value)
	}
	if r.Address != nil {
		fmt.Fprintf(&b, ", address: %s", r.Address.Value)
	}
	if r.Birthday != nil {
		fmt.Fprintf(&b, ", birthday: %s", r.Birthday.Value)
	}
	return b.String()
}

func renderPhones(phones []Field) string {
	if len(phones) == 0 {
		return "no phones"
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.Value
	}
	return strings.Join(values, "; ")
}

// phoneIndex returns the position of the normalized phone value, or -1.
func (r *Record) phoneIndex(normalized string) int {
	for i, p := range r.Phones {
		if p.Value == normalized {
			return i
		}
	}
	return -1
}

// truncateToDay drops the time-of-day component. The result is pinned to
// UTC so day arithmetic never crosses a DST boundary.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
