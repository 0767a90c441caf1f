package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name, phone string) *Record {
	t.Helper()
	r, err := NewRecord(name, phone)
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")
	assert.Equal(t, "Ann", r.Name.Value)
	require.Len(t, r.Phones, 1)
	assert.Equal(t, "0501234567", r.Phones[0].Value)

	_, err := NewRecord("", "0501234567")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewRecord("Ann", "123")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestRecordAddPhone(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")

	require.NoError(t, r.AddPhone("0667654321"))
	require.Len(t, r.Phones, 2)
	assert.Equal(t, "0667654321", r.Phones[1].Value, "insertion order preserved")

	err := r.AddPhone("050 123 45 67")
	assert.ErrorIs(t, err, ErrDuplicatePhone, "duplicate detected after normalization")
	assert.Len(t, r.Phones, 2, "failed add leaves phones unchanged")

	err = r.AddPhone("bad")
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Len(t, r.Phones, 2)
}

func TestRecordUpdatePhone(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")
	require.NoError(t, r.AddPhone("0667654321"))

	require.NoError(t, r.UpdatePhone("0501234567", "0991112233"))
	assert.Equal(t, "0991112233", r.Phones[0].Value, "position preserved")
	assert.Equal(t, "0667654321", r.Phones[1].Value)

	err := r.UpdatePhone("0000000000", "0991112233")
	assert.ErrorIs(t, err, ErrPhoneNotFound)

	err = r.UpdatePhone("0991112233", "bad")
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Equal(t, "0991112233", r.Phones[0].Value, "failed update leaves value")

	err = r.UpdatePhone("0991112233", "0667654321")
	assert.ErrorIs(t, err, ErrDuplicatePhone, "update cannot collide with another phone")

	require.NoError(t, r.UpdatePhone("0991112233", "099 111 22 33"))
	assert.Equal(t, "0991112233", r.Phones[0].Value, "updating to itself is allowed")
}

func TestRecordRemovePhone(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")
	require.NoError(t, r.AddPhone("0667654321"))

	require.NoError(t, r.RemovePhone("0501234567"))
	require.Len(t, r.Phones, 1)
	assert.Equal(t, "0667654321", r.Phones[0].Value)

	err := r.RemovePhone("0501234567")
	assert.ErrorIs(t, err, ErrPhoneNotFound)

	// A value that never validates cannot be present either.
	assert.ErrorIs(t, r.RemovePhone("123"), ErrPhoneNotFound)
}

func TestRecordOptionalFields(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")

	require.NoError(t, r.SetEmail("Ann@Example.com"))
	require.NotNil(t, r.Email)
	assert.Equal(t, "ann@example.com", r.Email.Value)

	assert.ErrorIs(t, r.SetEmail("nope"), ErrInvalidEmail)
	assert.Equal(t, "ann@example.com", r.Email.Value, "failed set leaves value")

	r.ClearEmail()
	assert.Nil(t, r.Email)
	r.ClearEmail() // idempotent

	require.NoError(t, r.SetAddress("12 Main St"))
	require.NotNil(t, r.Address)
	r.ClearAddress()
	assert.Nil(t, r.Address)

	require.NoError(t, r.SetBirthday("15.03.1990"))
	require.NotNil(t, r.Birthday)
	assert.ErrorIs(t, r.SetBirthday("not-a-date"), ErrInvalidBirthday)
	r.ClearBirthday()
	assert.Nil(t, r.Birthday)
	r.ClearBirthday()
}

func TestRecordMatches(t *testing.T) {
	r := mustRecord(t, "Ann Black", "0501234567")
	require.NoError(t, r.SetEmail("ann@example.com"))
	require.NoError(t, r.SetAddress("12 Main St"))
	require.NoError(t, r.SetBirthday("15.03.1990"))

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "name case-insensitive", query: "ann", want: true},
		{name: "name substring", query: "BLACK", want: true},
		{name: "phone substring", query: "12345", want: true},
		{name: "email", query: "example.com", want: true},
		{name: "address", query: "main st", want: true},
		{name: "birthday rendering", query: "03.1990", want: true},
		{name: "no match", query: "zzz", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Matches(tt.query))
		})
	}
}

func TestDaysUntilBirthday(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		today    time.Time
		want     int
	}{
		{
			name:     "later this year",
			birthday: "15.03.1990",
			today:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			want:     5,
		},
		{
			name:     "today counts as zero",
			birthday: "15.03.1990",
			today:    time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "already passed wraps to next year",
			birthday: "15.03.1990",
			today:    time.Date(2023, time.March, 16, 0, 0, 0, 0, time.UTC),
			want:     365,
		},
		{
			name:     "feb 29 maps to mar 1 in non-leap year",
			birthday: "29.02.1992",
			today:    time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "feb 29 kept in leap year",
			birthday: "29.02.1992",
			today:    time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
			want:     9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRecord(t, "Ann", "0501234567")
			require.NoError(t, r.SetBirthday(tt.birthday))
			days, ok := r.DaysUntilBirthday(tt.today)
			require.True(t, ok)
			assert.Equal(t, tt.want, days)
			assert.GreaterOrEqual(t, days, 0)
		})
	}
}

func TestDaysUntilBirthdayAbsent(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")
	_, ok := r.DaysUntilBirthday(time.Now())
	assert.False(t, ok)
}

// The day count must agree with independent calendar arithmetic across a
// full year of todays.
func TestDaysUntilBirthdayAgainstCalendarWalk(t *testing.T) {
	r := mustRecord(t, "Ann", "0501234567")
	require.NoError(t, r.SetBirthday("15.03.1990"))

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 366; offset++ {
		today := start.AddDate(0, 0, offset)
		days, ok := r.DaysUntilBirthday(today)
		require.True(t, ok)

		// Walk forward day by day until the month/day matches.
		walked := 0
		for d := today; !(d.Month() == time.March && d.Day() == 15); d = d.AddDate(0, 0, 1) {
			walked++
		}
		assert.Equal(t, walked, days, "today=%s", today.Format("02.01.2006"))
	}
}
