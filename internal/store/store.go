// Package store defines the persistent-store collaborator the engine talks
// to, plus two implementations: a pure in-memory store and a SQLite-backed
// one. The engine itself never speaks a storage wire protocol; it only
// inserts, deletes, and scans.
package store

import (
	"fmt"
	"strings"

	"github.com/vk/brewdoc/internal/entity"
)

// Store is the persistence contract of the engine. Calls are synchronous;
// the surrounding application serializes imports, so implementations need
// no locking on the engine's behalf.
type Store interface {
	// Insert persists the entity, assigns its id via SetID, and returns
	// the id.
	Insert(e entity.Entity) (int64, error)

	// Delete removes a previously inserted row. Deleting an unknown id is
	// an error.
	Delete(kind string, id int64) error

	// FindFirst returns the first stored entity of the kind, in insertion
	// order, for which pred holds.
	FindFirst(kind string, pred func(entity.Entity) bool) (entity.Entity, bool)

	// All returns the stored entities of the kind in insertion order.
	All(kind string) []entity.Entity

	Close() error
}

// Hydrator rebuilds a live entity from one durable row's kind, name, and
// decoded payload. Reopening a SQLite database replays every stored row
// through it so in-process scans, duplicate checks, and name normalization
// see the rows of earlier runs.
type Hydrator func(kind, name string, props map[string]any) (entity.Entity, error)

// Open selects an implementation from a DSN: "memory" for the in-memory
// store, "sqlite:<path>" for the SQLite store. hydrate is only consulted by
// the SQLite store, and only when the database already holds rows.
func Open(dsn string, hydrate Hydrator) (Store, error) {
	switch {
	case dsn == "" || dsn == "memory":
		return NewMemStore(), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return OpenSQLite(strings.TrimPrefix(dsn, "sqlite:"), hydrate)
	default:
		return nil, fmt.Errorf("store: unrecognized DSN %q", dsn)
	}
}
