// Package store persists activity events (LLM calls, generation runs) in a
// local Badger database. Generated content itself is session-scoped and never
// stored; events carry metadata only.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
)

// Store wraps the Badger database.
type Store struct {
	db *badger.DB
}

// Open creates or opens the event database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open event store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store with no disk persistence, for tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DropAll deletes every event. Used by the reset command.
func (s *Store) DropAll() error {
	return s.db.DropAll()
}

// DefaultDir resolves the database directory in priority order:
// EDUFORGE_DATA, $XDG_DATA_HOME/eduforge, ~/.local/share/eduforge.
func DefaultDir() (string, error) {
	if p := os.Getenv("EDUFORGE_DATA"); p != "" {
		return p, os.MkdirAll(p, 0o755)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "eduforge")
	return p, os.MkdirAll(p, 0o755)
}
