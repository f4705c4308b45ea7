package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store holds uploaded document files keyed by their storage filename.
type Store interface {
	Save(filename string, r io.Reader) error
	Open(filename string) (io.ReadCloser, error)
	Remove(filename string) error
}

// DiskStore keeps files in a single flat directory. The tree structure
// lives in the database; the store only needs unique filenames.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the content to a new file. Filenames are generated by the
// caller and must not already exist.
func (s *DiskStore) Save(filename string, r io.Reader) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	return nil
}

// Open returns the stored content for reading.
func (s *DiskStore) Open(filename string) (io.ReadCloser, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", filename, err)
	}

	return f, nil
}

// Remove deletes a stored file. Removing a file that is already gone is
// not an error.
func (s *DiskStore) Remove(filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file %s: %w", filename, err)
	}

	return nil
}

// resolve rejects anything that could escape the store directory.
func (s *DiskStore) resolve(filename string) (string, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}
