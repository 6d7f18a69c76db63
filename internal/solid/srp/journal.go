package srp

import (
	"errors"
	"fmt"
	"strings"
)

// Journal-specific errors.
var (
	// ErrEmptyEntry is returned when adding an entry with no content.
	ErrEmptyEntry = errors.New("journal entry cannot be empty")

	// ErrEntryNotFound is returned when removing an entry at an index
	// that does not exist.
	ErrEntryNotFound = errors.New("journal entry not found")
)

// Journal manages entry content. It knows nothing about persistence;
// that responsibility belongs to FileStore.
type Journal struct {
	entries []string
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Add appends an entry and returns its index.
// Returns ErrEmptyEntry if the entry is blank.
func (j *Journal) Add(entry string) (int, error) {
	if strings.TrimSpace(entry) == "" {
		return 0, ErrEmptyEntry
	}
	j.entries = append(j.entries, entry)
	return len(j.entries) - 1, nil
}

// Remove deletes the entry at the given index.
// Returns ErrEntryNotFound if the index is out of range.
func (j *Journal) Remove(index int) error {
	if index < 0 || index >= len(j.entries) {
		return fmt.Errorf("%w: index %d", ErrEntryNotFound, index)
	}
	j.entries = append(j.entries[:index], j.entries[index+1:]...)
	return nil
}

// Entries returns a copy of the journal's entries in insertion order.
func (j *Journal) Entries() []string {
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// String renders the journal as one entry per line.
func (j *Journal) String() string {
	return strings.Join(j.entries, "\n")
}
