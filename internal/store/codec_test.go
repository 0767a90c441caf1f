package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func sampleBooks(t *testing.T) (*types.AddressBook, *types.NoteBook) {
	t.Helper()

	contacts := types.NewAddressBook()
	ann, err := types.NewRecord("Ann Black", "0501234567")
	require.NoError(t, err)
	require.NoError(t, ann.AddPhone("0667654321"))
	require.NoError(t, ann.SetEmail("ann@example.com"))
	require.NoError(t, ann.SetAddress("12 Main St"))
	require.NoError(t, ann.SetBirthday("15.03.1990"))
	require.NoError(t, contacts.Add(ann))

	bob, err := types.NewRecord("Bob", "0991112233")
	require.NoError(t, err)
	require.NoError(t, contacts.Add(bob))

	notes := types.NewNoteBook()
	shopping, err := types.NewNote("Shopping", "milk and bread")
	require.NoError(t, err)
	require.NoError(t, shopping.AddTag("#home"))
	require.NoError(t, shopping.AddTag("#urgent"))
	require.NoError(t, notes.Add(shopping))

	gym, err := types.NewNote("Gym", "leg day")
	require.NoError(t, err)
	require.NoError(t, notes.Add(gym))

	return contacts, notes
}

func TestContactsRoundTrip(t *testing.T) {
	contacts, _ := sampleBooks(t)

	data, err := EncodeContacts(contacts)
	require.NoError(t, err)

	decoded, err := DecodeContacts(data)
	require.NoError(t, err)
	require.Equal(t, contacts.Len(), decoded.Len())

	for _, want := range contacts.All() {
		got, err := decoded.Get(want.Name.Value)
		require.NoError(t, err)
		assert.Equal(t, want.Name.Value, got.Name.Value)
		require.Len(t, got.Phones, len(want.Phones))
		for i := range want.Phones {
			assert.Equal(t, want.Phones[i].Value, got.Phones[i].Value, "phone order survives")
		}
		assert.Equal(t, want.Email, got.Email)
		assert.Equal(t, want.Address, got.Address)
		assert.Equal(t, want.Birthday, got.Birthday)
	}
}

func TestNotesRoundTrip(t *testing.T) {
	_, notes := sampleBooks(t)

	data, err := EncodeNotes(notes)
	require.NoError(t, err)

	decoded, err := DecodeNotes(data)
	require.NoError(t, err)
	require.Equal(t, notes.Len(), decoded.Len())

	for _, want := range notes.All() {
		got, err := decoded.Get(want.Title)
		require.NoError(t, err)
		assert.Equal(t, want.Title, got.Title)
		assert.Equal(t, want.Content, got.Content)
		assert.Equal(t, want.Tags(), got.Tags())
	}
}

// Insertion order of a decoded book follows the order keys appear in the
// document, which for encoded data is sorted key order.
func TestDecodeOrderFollowsDocument(t *testing.T) {
	data := []byte(`{
		"zoe": {"name": "Zoe", "phones": ["0501111111"]},
		"adam": {"name": "Adam", "phones": ["0502222222"]}
	}`)
	decoded, err := DecodeContacts(data)
	require.NoError(t, err)

	all := decoded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Zoe", all[0].Name.Value)
	assert.Equal(t, "Adam", all[1].Name.Value)
}

func TestDecodeContactsCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "definitely not json"},
		{name: "wrong top-level shape", data: `["a", "b"]`},
		{name: "contact without phones", data: `{"ann": {"name": "Ann", "phones": []}}`},
		{name: "invalid phone replayed", data: `{"ann": {"name": "Ann", "phones": ["123"]}}`},
		{name: "invalid email replayed", data: `{"ann": {"name": "Ann", "phones": ["0501234567"], "email": "nope"}}`},
		{name: "future birthday replayed", data: `{"ann": {"name": "Ann", "phones": ["0501234567"], "birthday": "01.01.3000"}}`},
		{name: "duplicate normalized names", data: `{"ann": {"name": "Ann", "phones": ["0501234567"]}, "x": {"name": "ANN", "phones": ["0667654321"]}}`},
		{name: "trailing garbage", data: `{} []`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeContacts([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestDecodeNotesCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "empty title", data: `{"x": {"title": " ", "content": "body", "tags": []}}`},
		{name: "empty content", data: `{"x": {"title": "T", "content": "", "tags": []}}`},
		{name: "tag without marker", data: `{"x": {"title": "T", "content": "body", "tags": ["home"]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNotes([]byte(tt.data))
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestDecodeEmptyObject(t *testing.T) {
	contacts, err := DecodeContacts([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, 0, contacts.Len())

	notes, err := DecodeNotes([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, 0, notes.Len())
}

func TestEncodeOmitsUnsetFields(t *testing.T) {
	contacts := types.NewAddressBook()
	bob, err := types.NewRecord("Bob", "0991112233")
	require.NoError(t, err)
	require.NoError(t, contacts.Add(bob))

	data, err := EncodeContacts(contacts)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "email")
	assert.NotContains(t, string(data), "address")
	assert.NotContains(t, string(data), "birthday")
}
