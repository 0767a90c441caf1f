package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Persisted file names. The two collections persist independently.
const (
	ContactsFile = "contacts.json"
	NotesFile    = "notes.json"
)

// Store reads and writes the two collection files under a single data
// directory. The directory is treated as exclusively owned by the running
// process; there is no second writer to guard against.
type Store struct {
	dataDir string
}

// New returns a Store rooted at dataDir. The directory is created lazily
// on the first save.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// DataDir returns the directory the store operates on.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Load reads both collections. A missing file yields an empty collection;
// that is the bootstrap case for a first run, not an error. A file that is
// present but undecodable fails with ErrCorruptData.
func (s *Store) Load() (*types.AddressBook, *types.NoteBook, error) {
	contacts, err := s.loadContacts()
	if err != nil {
		return nil, nil, err
	}
	notes, err := s.loadNotes()
	if err != nil {
		return nil, nil, err
	}
	return contacts, notes, nil
}

// Save writes both collections atomically, each to its own file.
func (s *Store) Save(contacts *types.AddressBook, notes *types.NoteBook) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := EncodeContacts(contacts)
	if err != nil {
		return fmt.Errorf("encoding contacts: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dataDir, ContactsFile), data); err != nil {
		return fmt.Errorf("writing contacts: %w", err)
	}
	data, err = EncodeNotes(notes)
	if err != nil {
		return fmt.Errorf("encoding notes: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(s.dataDir, NotesFile), data); err != nil {
		return fmt.Errorf("writing notes: %w", err)
	}
	return nil
}

func (s *Store) loadContacts() (*types.AddressBook, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, ContactsFile))
	if os.IsNotExist(err) {
		return types.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ContactsFile, err)
	}
	return DecodeContacts(data)
}

func (s *Store) loadNotes() (*types.NoteBook, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, NotesFile))
	if os.IsNotExist(err) {
		return types.NewNoteBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", NotesFile, err)
	}
	return DecodeNotes(data)
}

// writeFileAtomic writes data using the temp-file, fsync, rename pattern so
// a crash mid-save never leaves a partially written collection behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".satchel-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing data: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
