package srp

import (
	"fmt"
	"os"
	"strings"
)

// FileStore persists journals to the filesystem. Keeping persistence
// out of Journal means a change in storage format never touches the
// entry-management code.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Save writes the journal to the given path, one entry per line.
func (s *FileStore) Save(path string, journal *Journal) error {
	if err := os.WriteFile(path, []byte(journal.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save journal to %s: %w", path, err)
	}
	return nil
}

// Load reads a journal from the given path.
func (s *FileStore) Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal from %s: %w", path, err)
	}

	journal := NewJournal()
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := journal.Add(line); err != nil {
			return nil, fmt.Errorf("failed to restore journal entry: %w", err)
		}
	}
	return journal, nil
}
