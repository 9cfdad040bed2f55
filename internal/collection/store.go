// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collection implements the client-side in-memory collection of
// entries that belong to the active user.
//
// A [Store] keeps at most one entry per id. Storage order is the order in
// which entries arrived (page order for appends, newest first for creates)
// and has no meaning for display; display order is produced by the sorting
// package. A Store must not be shared between users: create a new one when
// the user scope changes.
package collection

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-entry-keeper/models"
)

// Store is a mutex-guarded, id-unique collection of entries.
// The zero value is not usable; call [New].
type Store struct {
	mu      sync.RWMutex
	entries []models.Entry
	index   map[string]int
}

// New returns an empty Store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// AppendPage adds every entry whose id is not held yet, in page order.
// Entries with an already known id are left untouched: overlapping pages can
// redeliver them when writes happen during a scan.
// It returns the number of entries actually added.
func (s *Store) AppendPage(entries []models.Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, e := range entries {
		if _, ok := s.index[e.ID]; ok {
			continue
		}
		s.index[e.ID] = len(s.entries)
		s.entries = append(s.entries, e)
		added++
	}
	return added
}

// InsertOne adds a freshly created entry in front of the collection.
func (s *Store) InsertOne(e models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[e.ID]; ok {
		return fmt.Errorf("insert %q: %w", e.ID, ErrDuplicateID)
	}

	s.entries = slices.Insert(s.entries, 0, e)
	s.reindex()
	return nil
}

// ReplaceOne swaps the held entry with the same id for e, keeping its position.
func (s *Store) ReplaceOne(e models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[e.ID]
	if !ok {
		return fmt.Errorf("replace %q: %w", e.ID, ErrNotFound)
	}

	s.entries[pos] = e
	return nil
}

// RemoveOne drops the entry with the given id.
func (s *Store) RemoveOne(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}

	s.entries = slices.Delete(s.entries, pos, pos+1)
	delete(s.index, id)
	s.reindex()
	return nil
}

// Reset empties the store.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.index = make(map[string]int)
}

// ResetWith replaces the whole collection with the given first page in one
// step. Duplicate ids inside entries are kept once.
func (s *Store) ResetWith(entries []models.Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]models.Entry, 0, len(entries))
	s.index = make(map[string]int, len(entries))
	for _, e := range entries {
		if _, ok := s.index[e.ID]; ok {
			continue
		}
		s.index[e.ID] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return len(s.entries)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Entry{}, false
	}
	return s.entries[pos], true
}

// Has reports whether an entry with the given id is held.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[id]
	return ok
}

// Len returns the number of held entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Entries returns a copy of the held entries in storage order.
func (s *Store) Entries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries)
}

// reindex rebuilds the id -> position map. Callers hold the write lock.
func (s *Store) reindex() {
	clear(s.index)
	for i, e := range s.entries {
		s.index[e.ID] = i
	}
}
