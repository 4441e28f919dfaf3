package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vk/brewdoc/internal/entity"
)

// ddl is the single-table layout: one row per entity, with the scalar
// properties flattened into a JSON payload. Predicate scans run against the
// warm in-memory mirror, not SQL.
const ddl = `
CREATE TABLE IF NOT EXISTS entities (
    kind  TEXT    NOT NULL,
    id    INTEGER NOT NULL,
    name  TEXT    NOT NULL,
    props TEXT    NOT NULL,
    PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS idx_entities_kind_name ON entities(kind, name);
`

// SQLiteStore persists rows through database/sql while keeping an
// insert-through in-memory mirror for ordered scans and duplicate checks.
// Domain equality needs live entities, not JSON payloads, so the mirror is
// authoritative for reads within one process.
type SQLiteStore struct {
	db     *sql.DB
	mirror *MemStore
}

// OpenSQLite opens (or creates) the database file, prepares the schema, and
// replays any existing rows into the mirror through hydrate. A nil hydrate
// leaves the mirror cold but still seeds the id counter past every stored
// row, so inserts never collide with earlier runs.
func OpenSQLite(path string, hydrate Hydrator) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %q: %w", path, err)
	}
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: prepare schema: %w", err)
	}
	s := &SQLiteStore{db: db, mirror: NewMemStore()}
	if err := s.replay(hydrate); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// replay walks the stored rows in id order, rebuilding each into the mirror
// so duplicate checks and name normalization see earlier runs.
func (s *SQLiteStore) replay(hydrate Hydrator) error {
	rows, err := s.db.Query(`SELECT kind, id, name, props FROM entities ORDER BY id`)
	if err != nil {
		return fmt.Errorf("store: scan existing rows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			kind, name, payload string
			id                  int64
		)
		if err := rows.Scan(&kind, &id, &name, &payload); err != nil {
			return fmt.Errorf("store: scan existing rows: %w", err)
		}
		if hydrate == nil {
			if id >= s.mirror.nextID {
				s.mirror.nextID = id + 1
			}
			continue
		}
		var props map[string]any
		if err := json.Unmarshal([]byte(payload), &props); err != nil {
			return fmt.Errorf("store: payload of %s row %d: %w", kind, id, err)
		}
		e, err := hydrate(kind, name, props)
		if err != nil {
			return fmt.Errorf("store: rebuild %s row %d: %w", kind, id, err)
		}
		e.SetID(id)
		e.SetName(name)
		s.mirror.restore(e)
	}
	return rows.Err()
}

// Insert implements Store.
func (s *SQLiteStore) Insert(e entity.Entity) (int64, error) {
	id, err := s.mirror.Insert(e)
	if err != nil {
		return 0, err
	}
	payload, err := json.Marshal(snapshot(e))
	if err != nil {
		return 0, fmt.Errorf("store: snapshot %s %q: %w", e.Kind(), e.Name(), err)
	}
	_, err = s.db.Exec(
		`INSERT INTO entities (kind, id, name, props) VALUES (?, ?, ?, ?)`,
		e.Kind(), id, e.Name(), string(payload),
	)
	if err != nil {
		// Keep mirror and disk consistent on rejection.
		_ = s.mirror.Delete(e.Kind(), id)
		return 0, fmt.Errorf("store: insert %s %q: %w", e.Kind(), e.Name(), err)
	}
	return id, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(kind string, id int64) error {
	if err := s.mirror.Delete(kind, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM entities WHERE kind = ? AND id = ?`, kind, id); err != nil {
		return fmt.Errorf("store: delete %s id %d: %w", kind, id, err)
	}
	return nil
}

// FindFirst implements Store.
func (s *SQLiteStore) FindFirst(kind string, pred func(entity.Entity) bool) (entity.Entity, bool) {
	return s.mirror.FindFirst(kind, pred)
}

// All implements Store.
func (s *SQLiteStore) All(kind string) []entity.Entity {
	return s.mirror.All(kind)
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }
