package testutil

import (
	"fmt"

	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/store"
)

// FailingStore wraps a real store and rejects inserts of one kind,
// optionally only after the first few succeed. Everything else passes
// through, so rollback paths can be driven deterministically.
type FailingStore struct {
	store.Store

	// FailKind is the kind whose inserts fail.
	FailKind string

	// AllowFirst is how many inserts of FailKind succeed before failures
	// start.
	AllowFirst int

	seen int
}

// Insert fails for the configured kind and otherwise delegates.
func (s *FailingStore) Insert(e entity.Entity) (int64, error) {
	if e.Kind() == s.FailKind {
		s.seen++
		if s.seen > s.AllowFirst {
			return 0, fmt.Errorf("testutil: refusing to insert %s %q", e.Kind(), e.Name())
		}
	}
	return s.Store.Insert(e)
}
