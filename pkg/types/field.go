package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field kinds. Every validated scalar in the system carries one of these tags.
const (
	KindName     = "name"
	KindPhone    = "phone"
	KindEmail    = "email"
	KindAddress  = "address"
	KindBirthday = "birthday"
)

// validKinds is the set of recognized field kinds.
var validKinds = map[string]bool{
	KindName:     true,
	KindPhone:    true,
	KindEmail:    true,
	KindAddress:  true,
	KindBirthday: true,
}

// Field validation errors. Each kind-specific sentinel wraps ErrValidation so
// callers can match either the family or the exact kind with errors.Is.
var (
	ErrValidation      = errors.New("invalid field value")
	ErrUnknownKind     = errors.New("unknown field kind")
	ErrInvalidName     = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrInvalidPhone    = fmt.Errorf("%w: phone must contain exactly %d digits", ErrValidation, PhoneDigits)
	ErrInvalidEmail    = fmt.Errorf("%w: email must look like local@domain.tld", ErrValidation)
	ErrInvalidAddress  = fmt.Errorf("%w: address must not be empty", ErrValidation)
	ErrInvalidBirthday = fmt.Errorf("%w: birthday must be a past or present %s date", ErrValidation, DateFormat)
)

// PhoneDigits is the required digit count for a phone number.
const PhoneDigits = 10

// DateFormat is the birthday date layout, rendered as DD.MM.YYYY.
const DateFormat = "02.01.2006"

// emailPattern matches local@domain.tld with at least one dot after the @.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// phoneSeparators lists characters stripped from phone input before the
// digit check. Input like "050 123-45-67" normalizes to "0501234567".
const phoneSeparators = " -()"

// Field is a validated scalar value of one recognized kind. The zero value
// is not valid; construct through NewField so the value is always normalized
// and checked.
type Field struct {
	Kind  string
	Value string // normalized form
}

// NewField validates raw against the rules of the given kind and returns the
// Field holding the normalized value. Validation is pure: no clock reads
// except the birthday future check, no I/O.
func NewField(kind, raw string) (Field, error) {
	return newFieldAt(kind, raw, time.Now())
}

// newFieldAt is NewField with an injectable clock for the birthday rule.
func newFieldAt(kind, raw string, now time.Time) (Field, error) {
	if !validKinds[kind] {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	normalized, err := normalize(kind, raw, now)
	if err != nil {
		return Field{}, err
	}
	return Field{Kind: kind, Value: normalized}, nil
}

// normalize applies the kind's format rule and returns the canonical string.
func normalize(kind, raw string, now time.Time) (string, error) {
	switch kind {
	case KindName:
		v := strings.TrimSpace(raw)
		if v == "" {
			return "", ErrInvalidName
		}
		return v, nil
	case KindPhone:
		v := stripPhoneSeparators(raw)
		if len(v) != PhoneDigits || !allDigits(v) {
			return "", fmt.Errorf("%w: got %q", ErrInvalidPhone, raw)
		}
		return v, nil
	case KindEmail:
		v := strings.ToLower(strings.TrimSpace(raw))
		if !emailPattern.MatchString(v) {
			return "", fmt.Errorf("%w: got %q", ErrInvalidEmail, raw)
		}
		return v, nil
	case KindAddress:
		v := strings.TrimSpace(raw)
		if v == "" {
			return "", ErrInvalidAddress
		}
		return v, nil
	case KindBirthday:
		v := strings.TrimSpace(raw)
		d, err := time.Parse(DateFormat, v)
		if err != nil {
			return "", fmt.Errorf("%w: got %q", ErrInvalidBirthday, raw)
		}
		if d.After(now) {
			return "", fmt.Errorf("%w: %s is in the future", ErrInvalidBirthday, v)
		}
		// Re-render so "2.1.2006"-style input canonicalizes.
		return d.Format(DateFormat), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// String returns the normalized value.
func (f Field) String() string {
	return f.Value
}

// Equal reports whether two fields hold the same normalized value of the
// same kind.
func (f Field) Equal(other Field) bool {
	return f.Kind == other.Kind && f.Value == other.Value
}

// Date returns the parsed birthday date. It panics if the field is not a
// birthday; construction guarantees the stored value parses.
func (f Field) Date() time.Time {
	if f.Kind != KindBirthday {
		panic("types: Date called on non-birthday field")
	}
	d, err := time.Parse(DateFormat, f.Value)
	if err != nil {
		panic("types: birthday field holds unparseable value: " + f.Value)
	}
	return d
}

func stripPhoneSeparators(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if strings.ContainsRune(phoneSeparators, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
