package store

import (
	"fmt"

	"github.com/vk/brewdoc/internal/entity"
)

// MemStore keeps everything in per-kind ordered slices. It is the default
// store for tests and for dry-run imports.
type MemStore struct {
	nextID int64
	rows   map[string][]entity.Entity
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1, rows: make(map[string][]entity.Entity)}
}

// Insert implements Store.
func (s *MemStore) Insert(e entity.Entity) (int64, error) {
	id := s.nextID
	s.nextID++
	e.SetID(id)
	s.rows[e.Kind()] = append(s.rows[e.Kind()], e)
	return id, nil
}

// restore re-seats a row that already owns an id, keeping the counter ahead
// of every id seen. Rows must arrive in id order to preserve scan order.
func (s *MemStore) restore(e entity.Entity) {
	s.rows[e.Kind()] = append(s.rows[e.Kind()], e)
	if e.ID() >= s.nextID {
		s.nextID = e.ID() + 1
	}
}

// Delete implements Store.
func (s *MemStore) Delete(kind string, id int64) error {
	rows := s.rows[kind]
	for i, e := range rows {
		if e.ID() == id {
			s.rows[kind] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store: no %s row with id %d", kind, id)
}

// FindFirst implements Store.
func (s *MemStore) FindFirst(kind string, pred func(entity.Entity) bool) (entity.Entity, bool) {
	for _, e := range s.rows[kind] {
		if pred(e) {
			return e, true
		}
	}
	return nil, false
}

// All implements Store.
func (s *MemStore) All(kind string) []entity.Entity {
	out := make([]entity.Entity, len(s.rows[kind]))
	copy(out, s.rows[kind])
	return out
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }
