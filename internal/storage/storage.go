// Package storage defines persistence contracts for delve session saves.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/cory-johannsen/delve/internal/game/session"
)

// ErrSaveNotFound is returned when a save lookup yields no results.
var ErrSaveNotFound = errors.New("save not found")

// SaveSummary describes a stored session without carrying its full state.
type SaveSummary struct {
	ID        string
	Hero      string
	Level     int
	Depth     int
	Gold      int
	UpdatedAt time.Time
}

// SaveRepository persists session snapshots keyed by session ID.
// Save upserts: writing an ID that already exists replaces the stored state.
type SaveRepository interface {
	// Save writes the snapshot, replacing any existing save with the same ID.
	Save(ctx context.Context, snap session.Snapshot) error
	// Load retrieves a snapshot by session ID, or ErrSaveNotFound.
	Load(ctx context.Context, id string) (session.Snapshot, error)
	// List returns summaries of every stored save, most recently written first.
	List(ctx context.Context) ([]SaveSummary, error)
	// Delete removes a save by session ID, or returns ErrSaveNotFound.
	Delete(ctx context.Context, id string) error
}
