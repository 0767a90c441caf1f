// Package store persists the address book and note book as JSON files and
// restores them through the same validation path used for live input.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// ErrCorruptData marks storage that is present but cannot be decoded back
// into valid collections. Callers should surface it prominently; starting
// over silently would look like data loss.
var ErrCorruptData = errors.New("stored data is corrupt")

// contactDTO is the persisted shape of one contact. Optional fields are
// omitted when unset.
type contactDTO struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// noteDTO is the persisted shape of one note.
type noteDTO struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// EncodeContacts renders the address book as a JSON object mapping
// normalized name to contact, keys in sorted order.
func EncodeContacts(book *types.AddressBook) ([]byte, error) {
	out := make(map[string]contactDTO, book.Len())
	for _, record := range book.All() {
		out[types.NormalizeName(record.Name.Value)] = contactToDTO(record)
	}
	return json.MarshalIndent(out, "", "  ")
}

// EncodeNotes renders the note book as a JSON object mapping normalized
// title to note, keys in sorted order.
func EncodeNotes(book *types.NoteBook) ([]byte, error) {
	out := make(map[string]noteDTO, book.Len())
	for _, note := range book.All() {
		out[types.NormalizeTitle(note.Title)] = noteDTO{
			Title:   note.Title,
			Content: note.Content,
			Tags:    note.Tags(),
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// DecodeContacts parses persisted contact data and rebuilds an address
// book. Decoding is two-phase: raw DTOs first, then reconstruction through
// the Record constructors, so no persisted value bypasses validation.
// Insertion order of the result follows the order keys appear in data.
func DecodeContacts(data []byte) (*types.AddressBook, error) {
	book := types.NewAddressBook()
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var dto contactDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return err
		}
		record, err := contactFromDTO(dto)
		if err != nil {
			return err
		}
		return book.Add(record)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: contacts: %v", ErrCorruptData, err)
	}
	return book, nil
}

// DecodeNotes parses persisted note data and rebuilds a note book, with
// the same two-phase contract as DecodeContacts.
func DecodeNotes(data []byte) (*types.NoteBook, error) {
	book := types.NewNoteBook()
	err := decodeObject(data, func(key string, raw json.RawMessage) error {
		var dto noteDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return err
		}
		note, err := types.NewNote(dto.Title, dto.Content)
		if err != nil {
			return err
		}
		for _, tag := range dto.Tags {
			if err := note.AddTag(tag); err != nil {
				return err
			}
		}
		return book.Add(note)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: notes: %v", ErrCorruptData, err)
	}
	return book, nil
}

func contactToDTO(record *types.Record) contactDTO {
	dto := contactDTO{Name: record.Name.Value}
	dto.Phones = make([]string, len(record.Phones))
	for i, p := range record.Phones {
		dto.Phones[i] = p.Value
	}
	if record.Email != nil {
		dto.Email = record.Email.Value
	}
	if record.Address != nil {
		dto.Address = record.Address.Value
	}
	if record.Birthday != nil {
		dto.Birthday = record.Birthday.Value
	}
	return dto
}

func contactFromDTO(dto contactDTO) (*types.Record, error) {
	if len(dto.Phones) == 0 {
		return nil, fmt.Errorf("contact %q has no phones", dto.Name)
	}
	record, err := types.NewRecord(dto.Name, dto.Phones[0])
	if err != nil {
		return nil, err
	}
	for _, phone := range dto.Phones[1:] {
		if err := record.AddPhone(phone); err != nil {
			return nil, err
		}
	}
	if dto.Email != "" {
		if err := record.SetEmail(dto.Email); err != nil {
			return nil, err
		}
	}
	if dto.Address != "" {
		if err := record.SetAddress(dto.Address); err != nil {
			return nil, err
		}
	}
	if dto.Birthday != "" {
		if err := record.SetBirthday(dto.Birthday); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// decodeObject walks a top-level JSON object token by token, handing each
// key and raw value to fn in the order they appear in the document.
func decodeObject(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("reading value for %q: %w", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading closing token: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("trailing data after object")
	}
	return nil
}
