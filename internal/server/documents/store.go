// Package documents holds the static JSON documents the fixture server
// publishes: users, members, events and relics.
package documents

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
)

//go:embed data/*.json
var embedded embed.FS

// Names lists every document the store serves.
var Names = []string{"users.json", "members.json", "events.json", "relics.json"}

// ErrNotFound is returned for names outside Names and for documents missing
// from the backing directory.
var ErrNotFound = errors.New("document not found")

// Store serves documents from a file system. Documents are read on every
// call, so edits to a directory show up without a restart.
type Store struct {
	fsys fs.FS
}

// Embedded returns a store over the built-in document set.
func Embedded() *Store {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// Dir returns a store over the documents in dir.
func Dir(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("documents dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("documents dir: %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

// New returns a store over fsys.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Get returns the raw bytes of the document name.
func (s *Store) Get(name string) ([]byte, error) {
	if !slices.Contains(Names, name) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	b, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// Check reports every document that is missing or not a JSON array. The
// server still serves such documents as they are; Check only feeds the
// startup log.
func (s *Store) Check() error {
	var errs []error
	for _, name := range Names {
		b, err := s.Get(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			errs = append(errs, fmt.Errorf("%s: not a JSON array: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
