package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/delve/internal/game/loot"
)

// Manager tracks all active game sessions. All methods are safe for
// concurrent use; the Games it hands out are not shared between callers.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*Game
	generator *loot.Generator
	logger    *zap.Logger
}

// NewManager creates an empty session Manager. Every session it creates
// rolls against the given generator.
func NewManager(generator *loot.Generator, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions:  make(map[uuid.UUID]*Game),
		generator: generator,
		logger:    logger,
	}
}

// Create starts a new session for the named hero and registers it.
//
// Postcondition: the returned Game is registered under a fresh ID.
func (m *Manager) Create(heroName string) *Game {
	g := NewGame(uuid.New(), heroName, m.generator, m.logger)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[g.ID] = g
	return g
}

// Adopt registers a session restored from a save.
//
// Postcondition: returns an error if the session ID is already
// registered; the registry is unchanged in that case.
func (m *Manager) Adopt(g *Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[g.ID]; exists {
		return fmt.Errorf("session %q already registered", g.ID)
	}
	m.sessions[g.ID] = g
	return nil
}

// Get returns the session with the given ID.
//
// Postcondition: returns (session, true) if found, or (nil, false)
// otherwise.
func (m *Manager) Get(id uuid.UUID) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.sessions[id]
	return g, ok
}

// Remove unregisters a session.
//
// Postcondition: returns an error if no such session is registered.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("session %q not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
