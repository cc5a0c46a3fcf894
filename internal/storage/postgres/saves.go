package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/delve/internal/game/session"
	"github.com/cory-johannsen/delve/internal/storage"
)

// SaveRepository persists session snapshots as JSONB rows.
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

var _ storage.SaveRepository = (*SaveRepository)(nil)

// Save upserts the snapshot keyed by its session ID.
//
// Precondition: snap.ID must be a valid UUID string.
// Postcondition: A row with snap.ID exists holding the marshalled snapshot.
func (r *SaveRepository) Save(ctx context.Context, snap session.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO saves (id, hero, hero_level, depth, gold, state)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET hero = EXCLUDED.hero, hero_level = EXCLUDED.hero_level,
		    depth = EXCLUDED.depth, gold = EXCLUDED.gold,
		    state = EXCLUDED.state, updated_at = NOW()`,
		snap.ID, snap.Hero.Name, snap.Hero.Level, snap.Depth, snap.Hero.Gold, state,
	)
	if err != nil {
		return fmt.Errorf("inserting save: %w", err)
	}
	return nil
}

// Load retrieves a snapshot by session ID.
//
// Postcondition: Returns the stored Snapshot or storage.ErrSaveNotFound.
func (r *SaveRepository) Load(ctx context.Context, id string) (session.Snapshot, error) {
	var state []byte
	err := r.db.QueryRow(ctx, `SELECT state FROM saves WHERE id = $1`, id).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Snapshot{}, storage.ErrSaveNotFound
		}
		return session.Snapshot{}, fmt.Errorf("querying save: %w", err)
	}

	var snap session.Snapshot
	if err := json.Unmarshal(state, &snap); err != nil {
		return session.Snapshot{}, fmt.Errorf("unmarshalling save state: %w", err)
	}
	return snap, nil
}

// List returns summaries of every stored save, most recently written first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *SaveRepository) List(ctx context.Context) ([]storage.SaveSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, hero, hero_level, depth, gold, updated_at
		FROM saves ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	defer rows.Close()

	summaries := make([]storage.SaveSummary, 0)
	for rows.Next() {
		var s storage.SaveSummary
		if err := rows.Scan(&s.ID, &s.Hero, &s.Level, &s.Depth, &s.Gold, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning save row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Delete removes a save by session ID.
//
// Postcondition: Returns nil on success, storage.ErrSaveNotFound if no row matched.
func (r *SaveRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting save: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrSaveNotFound
	}
	return nil
}
