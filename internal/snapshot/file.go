package snapshot

import (
	"fmt"
	"os"
)

// FileStore writes the snapshot to a single flat JSON file, overwriting any
// previous save. This is the default driver and matches the draft_state.json
// the tool has always produced.
type FileStore struct {
	path string
}

// NewFileStore returns a store targeting the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the target file path
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(sessionID string, data []byte) (string, error) {
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return s.path, nil
}

func (s *FileStore) Load(sessionID string) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}
