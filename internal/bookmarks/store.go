// Package bookmarks persists the user's bookmarked tweet ids in a single
// durable local slot: one JSON file holding an insertion-ordered list.
package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultPath returns the default bookmark slot location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".xhire", "bookmarks.json"), nil
}

// Store is an insertion-ordered set of tweet ids persisted synchronously after
// every mutation. It enforces no size cap and never expires entries.
type Store struct {
	path string

	mu      sync.Mutex
	ids     []string
	present map[string]bool
}

// Open loads the bookmark set from the slot at path, creating the parent
// directory if needed. A missing file yields an empty set.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bookmark directory: %w", err)
	}

	s := &Store{path: path, present: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks from %s: %w", path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks file %s: %w", path, err)
	}
	for _, id := range ids {
		if !s.present[id] {
			s.ids = append(s.ids, id)
			s.present[id] = true
		}
	}
	return s, nil
}

// Add records a bookmark. Adding an id that is already present is a no-op.
func (s *Store) Add(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.present[id] {
		return nil
	}
	s.ids = append(s.ids, id)
	s.present[id] = true
	return s.save()
}

// Remove deletes a bookmark, preserving the order of the remaining entries.
// Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.present[id] {
		return nil
	}
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	delete(s.present, id)
	return s.save()
}

// List returns the bookmarked ids in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// IsBookmarked reports whether the id is in the set.
func (s *Store) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.present[id]
}

// save writes the slot. Callers hold the mutex.
func (s *Store) save() error {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bookmarks to %s: %w", s.path, err)
	}
	return nil
}
