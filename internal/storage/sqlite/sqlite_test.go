package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/delve/internal/game/item"
	"github.com/cory-johannsen/delve/internal/game/session"
	"github.com/cory-johannsen/delve/internal/storage"
	"github.com/cory-johannsen/delve/internal/storage/sqlite"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleSnapshot(id string) session.Snapshot {
	return session.Snapshot{
		ID:    id,
		Depth: 12,
		Hero: session.HeroSnapshot{
			Name:       "Rook",
			Level:      4,
			Experience: 120,
			CurrentHP:  55,
			MaxHP:      60,
			CurrentMP:  20,
			MaxMP:      25,
			Strength:   16,
			Speed:      8,
			Gold:       340,
			Sword:      &session.EquipmentSnapshot{Kind: "sword", Level: 10},
			LeftRing:   "attack",
			Inventory:  []item.Record{{Key: item.KeyPotion, Level: 4}, {Key: item.KeyRemedy}},
		},
		RingPool: []item.RingKind{item.RingVoid, item.RingLife},
		Tombstones: map[int]session.ChestSnapshot{
			7: {Gold: 90, Items: []item.Record{{Key: item.KeyEther, Level: 4}}},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot(uuid.NewString())
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestStore_SaveUpserts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot(uuid.NewString())
	require.NoError(t, store.Save(ctx, snap))

	snap.Depth = 30
	snap.Hero.Gold = 999
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.Depth)
	assert.Equal(t, 999, loaded.Hero.Gold)

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestStore_LoadMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Load(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrSaveNotFound)
}

func TestStore_ListSummaries(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := sampleSnapshot(uuid.NewString())
	require.NoError(t, store.Save(ctx, first))

	time.Sleep(10 * time.Millisecond)

	second := sampleSnapshot(uuid.NewString())
	second.Hero.Name = "Vex"
	second.Depth = 3
	require.NoError(t, store.Save(ctx, second))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, second.ID, summaries[0].ID)
	assert.Equal(t, "Vex", summaries[0].Hero)
	assert.Equal(t, 3, summaries[0].Depth)
	assert.Equal(t, first.ID, summaries[1].ID)
	assert.Equal(t, 340, summaries[1].Gold)
	assert.Equal(t, 4, summaries[1].Level)
	assert.False(t, summaries[1].UpdatedAt.IsZero())
}

func TestStore_ListEmpty(t *testing.T) {
	store := openTestStore(t)
	summaries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestStore_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot(uuid.NewString())
	require.NoError(t, store.Save(ctx, snap))
	require.NoError(t, store.Delete(ctx, snap.ID))

	_, err := store.Load(ctx, snap.ID)
	assert.ErrorIs(t, err, storage.ErrSaveNotFound)

	err = store.Delete(ctx, snap.ID)
	assert.ErrorIs(t, err, storage.ErrSaveNotFound)
}

func TestStore_OpenEmptyPath(t *testing.T) {
	_, err := sqlite.Open("")
	assert.Error(t, err)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saves.db")
	ctx := context.Background()

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	snap := sampleSnapshot(uuid.NewString())
	require.NoError(t, store.Save(ctx, snap))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

// Property: Save followed by Load round-trips arbitrary scalar state.
func TestProperty_SaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		snap := sampleSnapshot(uuid.NewString())
		snap.Depth = rapid.IntRange(0, 500).Draw(rt, "depth")
		snap.Hero.Level = rapid.IntRange(1, 99).Draw(rt, "level")
		snap.Hero.Gold = rapid.IntRange(0, 1_000_000).Draw(rt, "gold")
		snap.Hero.Name = fmt.Sprintf("hero_%d", rapid.IntRange(0, 1<<30).Draw(rt, "tag"))

		require.NoError(t, store.Save(ctx, snap))
		loaded, err := store.Load(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, snap, loaded)
	})
}
