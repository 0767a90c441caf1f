package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NoteBook operation errors.
var (
	ErrDuplicateNote = errors.New("note already exists")
	ErrNoteNotFound  = errors.New("note not found")
)

// NoteBook is a keyed collection of notes. Titles are unique under
// case-insensitive comparison; iteration follows insertion order.
type NoteBook struct {
	notes map[string]*Note
	order []string // normalized titles, insertion order
}

// NewNoteBook returns an empty note book.
func NewNoteBook() *NoteBook {
	return &NoteBook{notes: make(map[string]*Note)}
}

// NormalizeTitle returns the canonical lookup key for a note title.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Add inserts the note. Returns ErrDuplicateNote if a note with the same
// normalized title is already present; the book is left unchanged.
func (b *NoteBook) Add(note *Note) error {
	key := NormalizeTitle(note.Title)
	if _, exists := b.notes[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNote, note.Title)
	}
	b.notes[key] = note
	b.order = append(b.order, key)
	return nil
}

// Get returns the note for the given title.
// Returns ErrNoteNotFound if absent.
func (b *NoteBook) Get(title string) (*Note, error) {
	note, ok := b.notes[NormalizeTitle(title)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, title)
	}
	return note, nil
}

// EditContent replaces the note's content, leaving its tags untouched.
// Returns ErrNoteNotFound if absent; the new content must be non-empty.
func (b *NoteBook) EditContent(title, newContent string) error {
	note, err := b.Get(title)
	if err != nil {
		return err
	}
	newContent = strings.TrimSpace(newContent)
	if newContent == "" {
		return ErrEmptyContent
	}
	note.Content = newContent
	return nil
}

// Rename re-keys the note under a new title, keeping its position in the
// book. Returns ErrNoteNotFound if the old title is absent and
// ErrDuplicateNote if another note already holds the new title.
func (b *NoteBook) Rename(title, newTitle string) error {
	note, err := b.Get(title)
	if err != nil {
		return err
	}
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return ErrEmptyTitle
	}
	oldKey := NormalizeTitle(note.Title)
	newKey := NormalizeTitle(newTitle)
	if other, exists := b.notes[newKey]; exists && other != note {
		return fmt.Errorf("%w: %s", ErrDuplicateNote, newTitle)
	}
	delete(b.notes, oldKey)
	b.notes[newKey] = note
	note.Title = newTitle
	for i, k := range b.order {
		if k == oldKey {
			b.order[i] = newKey
			break
		}
	}
	return nil
}

// Delete removes the note for the given title.
// Returns ErrNoteNotFound if absent.
func (b *NoteBook) Delete(title string) error {
	key := NormalizeTitle(title)
	if _, ok := b.notes[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, title)
	}
	delete(b.notes, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddTags attaches each tag to the note. Every tag is validated before any
// is applied, so a bad tag in the list leaves the note unchanged.
// Returns ErrNoteNotFound if the title is absent.
func (b *NoteBook) AddTags(title string, tags []string) error {
	note, err := b.Get(title)
	if err != nil {
		return err
	}
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		t, err := NormalizeTag(tag)
		if err != nil {
			return err
		}
		normalized = append(normalized, t)
	}
	for _, t := range normalized {
		_ = note.AddTag(t)
	}
	return nil
}

// RemoveTags detaches each tag from the note. Absent tags are skipped
// without error. Returns ErrNoteNotFound if the title is absent.
func (b *NoteBook) RemoveTags(title string, tags []string) error {
	note, err := b.Get(title)
	if err != nil {
		return err
	}
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		t, err := NormalizeTag(tag)
		if err != nil {
			return err
		}
		normalized = append(normalized, t)
	}
	for _, t := range normalized {
		_ = note.RemoveTag(t)
	}
	return nil
}

// Search returns every note matching the query, in insertion order.
// An empty result is a valid outcome, not an error.
func (b *NoteBook) Search(query string) []*Note {
	var found []*Note
	for _, key := range b.order {
		if b.notes[key].Matches(query) {
			found = append(found, b.notes[key])
		}
	}
	return found
}

// SortByTag returns the notes grouped by their lexicographically smallest
// tag, ascending; untagged notes come last as their own group. Within a
// group insertion order is preserved. The book itself is not mutated.
func (b *NoteBook) SortByTag() []*Note {
	sorted := b.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sorted[i].SmallestTag()
		tj, okj := sorted[j].SmallestTag()
		switch {
		case oki && okj:
			return ti < tj
		case oki:
			return true // tagged before untagged
		default:
			return false
		}
	})
	return sorted
}

// WithTag returns the notes carrying the given tag, in insertion order.
func (b *NoteBook) WithTag(tag string) []*Note {
	var found []*Note
	for _, key := range b.order {
		if b.notes[key].HasTag(tag) {
			found = append(found, b.notes[key])
		}
	}
	return found
}

// All returns the notes in insertion order.
func (b *NoteBook) All() []*Note {
	all := make([]*Note, 0, len(b.order))
	for _, key := range b.order {
		all = append(all, b.notes[key])
	}
	return all
}

// Len returns the number of notes.
func (b *NoteBook) Len() int {
	return len(b.notes)
}
