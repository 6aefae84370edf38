package bankroll

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore keeps each record in its own "<key>.json" file inside a folder.
type DirStore struct {
	path string
}

// NewDirStore creates the folder if needed.
func NewDirStore(path string) (*DirStore, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", path, err)
	}
	return &DirStore{path: path}, nil
}

func (s *DirStore) file(key string) string { return filepath.Join(s.path, key+".json") }

// Get reads the record file.
func (s *DirStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("record %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read record %q: %w", key, err)
	}
	return data, nil
}

// Put replaces the record file. The content is written to a temporary file
// first, so an interrupted write never truncates the previous record.
func (s *DirStore) Put(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("error opening record %q for writing: %w", key, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write record %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.file(key)); err != nil {
		return fmt.Errorf("could not replace record %q: %w", key, err)
	}
	return nil
}

// Close does nothing, files are closed after each operation.
func (s *DirStore) Close() error { return nil }
