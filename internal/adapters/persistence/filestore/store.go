// Package filestore backs the record store with one JSON blob per entity
// type. Every mutation is a full read-modify-write of the blob under the
// store lock, which assumes a single process owning the data directory.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"masterdesk/internal/adapters/persistence/repositories"
)

// Store owns the data directory and serializes access to the blobs.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New opens (creating if needed) a file store rooted at dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DocumentTypes returns the document type repository backed by this store.
func (s *Store) DocumentTypes() repositories.DocumentTypeRepository {
	return &documentTypeStore{store: s}
}

// Products returns the product repository backed by this store.
func (s *Store) Products() repositories.ProductRepository {
	return &productStore{store: s}
}

// Users returns the user repository backed by this store.
func (s *Store) Users() repositories.UserRepository {
	return &userStore{store: s}
}

// RefreshTokens returns the refresh token repository backed by this store.
func (s *Store) RefreshTokens() repositories.RefreshTokenRepository {
	return &refreshTokenStore{store: s}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// loadBlob reads the blob into records. Seeds the blob with seed() the first
// time it is touched. Caller must hold s.mu.
func loadBlob[T any](s *Store, name string, seed func() []T) ([]T, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		records := seed()
		if err := saveBlob(s, name, records); err != nil {
			return nil, err
		}
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", name, err)
	}
	return records, nil
}

// saveBlob writes the full record list, using a temp file + rename so a crash
// mid-write never truncates the blob. Caller must hold s.mu.
func saveBlob[T any](s *Store, name string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode %s: %w", name, err)
	}

	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("filestore: commit %s: %w", name, err)
	}
	return nil
}

func emptySeed[T any]() []T { return nil }
