package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Note validation errors.
var (
	ErrEmptyTitle   = fmt.Errorf("%w: note title must not be empty", ErrValidation)
	ErrEmptyContent = fmt.Errorf("%w: note content must not be empty", ErrValidation)
	ErrInvalidTag   = errors.New("tag must start with # and name at least one character")
)

// Note is a titled free-text entry with a set of hashtag labels.
// Tags are stored normalized: lowercase, '#' prefix retained.
type Note struct {
	Title   string
	Content string
	tags    map[string]struct{}
}

// NewNote creates a note with a trimmed, non-empty title and content.
func NewNote(title, content string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Note{Title: title, Content: content, tags: make(map[string]struct{})}, nil
}

// NormalizeTag validates and canonicalizes a hashtag label.
// Returns ErrInvalidTag unless the trimmed input is '#' followed by at
// least one character.
func NormalizeTag(tag string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	if !strings.HasPrefix(t, "#") || len(t) < 2 {
		return "", fmt.Errorf("%w: got %q", ErrInvalidTag, tag)
	}
	return t, nil
}

// AddTag attaches a normalized tag. Adding a tag the note already carries
// is a no-op.
func (n *Note) AddTag(tag string) error {
	t, err := NormalizeTag(tag)
	if err != nil {
		return err
	}
	if n.tags == nil {
		n.tags = make(map[string]struct{})
	}
	n.tags[t] = struct{}{}
	return nil
}

// RemoveTag detaches a tag. Removing an absent tag is a no-op.
func (n *Note) RemoveTag(tag string) error {
	t, err := NormalizeTag(tag)
	if err != nil {
		return err
	}
	delete(n.tags, t)
	return nil
}

// HasTag reports whether the note carries the normalized form of tag.
func (n *Note) HasTag(tag string) bool {
	t, err := NormalizeTag(tag)
	if err != nil {
		return false
	}
	_, ok := n.tags[t]
	return ok
}

// Tags returns the note's tags in sorted order.
func (n *Note) Tags() []string {
	tags := make([]string, 0, len(n.tags))
	for t := range n.tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// SmallestTag returns the lexicographically smallest tag, used as the
// note's sort key. ok is false when the note has no tags.
func (n *Note) SmallestTag() (tag string, ok bool) {
	for t := range n.tags {
		if !ok || t < tag {
			tag, ok = t, true
		}
	}
	return tag, ok
}

// Matches reports whether the query occurs, case-insensitively, in the
// title, content, or any tag.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for t := range n.tags {
		if strings.Contains(t, q) {
			return true
		}
	}
	return false
}

// String renders the note in the list format.
func (n *Note) String() string {
	tags := "[no tags]"
	if len(n.tags) > 0 {
		tags = "[" + strings.Join(n.Tags(), ", ") + "]"
	}
	return fmt.Sprintf("%s\n  %s\n  %s", n.Title, n.Content, tags)
}
