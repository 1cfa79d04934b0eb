// Package savestore persists named grid snapshots in a SQLite database.
package savestore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"sandfall/internal/sand"
)

// ErrNotFound reports a missing save slot.
var ErrNotFound = errors.New("save slot not found")

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	cells      BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// Store owns one save database.
type Store struct {
	db  *sql.DB
	log *log.Logger
}

// Slot describes one saved snapshot.
type Slot struct {
	Name          string
	Width, Height int
	CreatedAt     time.Time
}

// Open creates or opens the database at path and ensures the schema exists.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init save db %s: %w", path, err)
	}
	return &Store{db: db, log: logger}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save upserts a snapshot under name.
func (s *Store) Save(name string, snap sand.Snapshot) error {
	if name == "" {
		return errors.New("save: empty slot name")
	}
	if len(snap.Cells) != snap.Width*snap.Height {
		return fmt.Errorf("save %q: %d cells for a %dx%d grid", name, len(snap.Cells), snap.Width, snap.Height)
	}
	blob := make([]byte, len(snap.Cells))
	for i, e := range snap.Cells {
		blob[i] = byte(e)
	}
	_, err := s.db.Exec(`
		INSERT INTO slots (name, width, height, cells, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			cells = excluded.cells,
			created_at = excluded.created_at`,
		name, snap.Width, snap.Height, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	s.log.Info("saved scene", "slot", name, "grid", fmt.Sprintf("%dx%d", snap.Width, snap.Height))
	return nil
}

// Load returns the snapshot stored under name. Corrupt rows surface as
// errors; the caller's world is never touched.
func (s *Store) Load(name string) (sand.Snapshot, error) {
	var (
		width, height int
		blob          []byte
	)
	err := s.db.QueryRow(`SELECT width, height, cells FROM slots WHERE name = ?`, name).
		Scan(&width, &height, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return sand.Snapshot{}, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return sand.Snapshot{}, fmt.Errorf("load %q: %w", name, err)
	}
	if width <= 0 || height <= 0 || len(blob) != width*height {
		return sand.Snapshot{}, fmt.Errorf("load %q: corrupt row: %d bytes for a %dx%d grid", name, len(blob), width, height)
	}
	cells := make([]sand.Element, len(blob))
	for i, b := range blob {
		if b >= byte(sand.NumElements) {
			return sand.Snapshot{}, fmt.Errorf("load %q: corrupt row: cell %d holds unknown element %d", name, i, b)
		}
		cells[i] = sand.Element(b)
	}
	return sand.Snapshot{Width: width, Height: height, Cells: cells}, nil
}

// List returns every slot, newest first.
func (s *Store) List() ([]Slot, error) {
	rows, err := s.db.Query(`SELECT name, width, height, created_at FROM slots ORDER BY created_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out []Slot
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.Name, &sl.Width, &sl.Height, &sl.CreatedAt); err != nil {
			return nil, fmt.Errorf("list slots: %w", err)
		}
		out = append(out, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return out, nil
}

// Delete removes a slot by name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM slots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	s.log.Info("deleted scene", "slot", name)
	return nil
}
