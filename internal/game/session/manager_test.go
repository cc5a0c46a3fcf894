package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/delve/internal/game/loot"
)

func newTestManager() *Manager {
	return NewManager(loot.NewGenerator(fixedSource{value: missEverything}, nil), zap.NewNop())
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager()

	g := m.Create("brynn")
	require.NotNil(t, g)
	assert.Equal(t, "brynn", g.Hero.Name)
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(g.ID)
	require.True(t, ok)
	assert.Same(t, g, got)

	_, ok = m.Get(uuid.New())
	assert.False(t, ok)
}

func TestManager_Remove(t *testing.T) {
	m := newTestManager()
	g := m.Create("brynn")

	require.NoError(t, m.Remove(g.ID))
	assert.Equal(t, 0, m.Count())

	err := m.Remove(g.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestManager_Adopt(t *testing.T) {
	m := newTestManager()
	g := NewGame(uuid.New(), "brynn", loot.NewGenerator(fixedSource{}, nil), nil)

	require.NoError(t, m.Adopt(g))
	assert.Equal(t, 1, m.Count())

	err := m.Adopt(g)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestManager_ConcurrentCreateRemove(t *testing.T) {
	m := newTestManager()
	const n = 100

	ids := make(chan uuid.UUID, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			g := m.Create(fmt.Sprintf("hero%d", i))
			ids <- g.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	assert.Equal(t, n, m.Count())

	wg.Add(n)
	for id := range ids {
		go func(id uuid.UUID) {
			defer wg.Done()
			assert.NoError(t, m.Remove(id))
		}(id)
	}
	wg.Wait()
	assert.Equal(t, 0, m.Count())
}

func TestPropertyRegistryCountConsistent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := newTestManager()

		numCreate := rapid.IntRange(1, 20).Draw(rt, "num_create")
		ids := make([]uuid.UUID, 0, numCreate)
		for i := 0; i < numCreate; i++ {
			ids = append(ids, m.Create(fmt.Sprintf("hero%d", i)).ID)
		}

		removed := 0
		numRemove := rapid.IntRange(0, numCreate).Draw(rt, "num_remove")
		for i := 0; i < numRemove; i++ {
			idx := rapid.IntRange(0, numCreate-1).Draw(rt, "remove_idx")
			if err := m.Remove(ids[idx]); err == nil {
				removed++
			}
		}

		if m.Count() != numCreate-removed {
			rt.Fatalf("count %d after %d creates and %d removes", m.Count(), numCreate, removed)
		}
	})
}
