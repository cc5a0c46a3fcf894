// Package sqlite provides file-backed session persistence using modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/delve/internal/game/session"
	"github.com/cory-johannsen/delve/internal/storage"
)

// Store persists session snapshots in a single SQLite file.
type Store struct {
	db *sql.DB
}

var _ storage.SaveRepository = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	id         TEXT    PRIMARY KEY,
	hero       TEXT    NOT NULL,
	hero_level INTEGER NOT NULL,
	depth      INTEGER NOT NULL,
	gold       INTEGER NOT NULL,
	state      TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Open opens (creating if necessary) the SQLite database at path and
// ensures the saves table exists.
//
// Precondition: path must be non-empty and writable.
// Postcondition: Returns a ready Store or a non-nil error.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path must not be empty")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating saves table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
//
// Postcondition: The store is no longer usable after calling Close.
func (s *Store) Close() error {
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Save upserts the snapshot keyed by its session ID. The original
// created_at survives rewrites.
//
// Postcondition: A row with snap.ID exists holding the marshalled snapshot.
func (s *Store) Save(ctx context.Context, snap session.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	now := toMillis(time.Now())
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saves (id, hero, hero_level, depth, gold, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET hero = excluded.hero, hero_level = excluded.hero_level,
		    depth = excluded.depth, gold = excluded.gold,
		    state = excluded.state, updated_at = excluded.updated_at`,
		snap.ID, snap.Hero.Name, snap.Hero.Level, snap.Depth, snap.Hero.Gold,
		string(state), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting save: %w", err)
	}
	return nil
}

// Load retrieves a snapshot by session ID.
//
// Postcondition: Returns the stored Snapshot or storage.ErrSaveNotFound.
func (s *Store) Load(ctx context.Context, id string) (session.Snapshot, error) {
	var state string
	err := s.db.QueryRowContext(ctx, `SELECT state FROM saves WHERE id = ?`, id).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Snapshot{}, storage.ErrSaveNotFound
		}
		return session.Snapshot{}, fmt.Errorf("querying save: %w", err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("unmarshalling save state: %w", err)
	}
	return snap, nil
}

// List returns summaries of every stored save, most recently written first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (s *Store) List(ctx context.Context) ([]storage.SaveSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hero, hero_level, depth, gold, updated_at
		FROM saves ORDER BY updated_at DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	defer rows.Close()

	summaries := make([]storage.SaveSummary, 0)
	for rows.Next() {
		var row storage.SaveSummary
		var updatedAt int64
		if err := rows.Scan(&row.ID, &row.Hero, &row.Level, &row.Depth, &row.Gold, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning save row: %w", err)
		}
		row.UpdatedAt = fromMillis(updatedAt)
		summaries = append(summaries, row)
	}
	return summaries, rows.Err()
}

// Delete removes a save by session ID.
//
// Postcondition: Returns nil on success, storage.ErrSaveNotFound if no row matched.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting save: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrSaveNotFound
	}
	return nil
}
