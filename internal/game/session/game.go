// Package session owns live game state: one Game per playing hero, the
// save snapshot format, and a concurrent Manager registry.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/delve/internal/game/hero"
	"github.com/cory-johannsen/delve/internal/game/item"
	"github.com/cory-johannsen/delve/internal/game/loot"
)

// ErrNoSuchItem is returned when using an item the hero does not hold.
var ErrNoSuchItem = errors.New("session: item not held")

// Game is one hero's expedition: current depth, the undiscovered ring
// pool, and any tombstones left behind by earlier deaths.
//
// A Game belongs to a single caller at a time and is not safe for
// concurrent use; the Manager provides the concurrent registry around
// it.
type Game struct {
	ID    uuid.UUID
	Hero  *hero.Hero
	Depth int

	rings      *item.Pool
	tombstones map[int]*loot.Chest
	generator  *loot.Generator
	logger     *zap.Logger
}

// NewGame starts a fresh expedition: a level 1 hero at the surface with
// a full ring pool and no tombstones.
func NewGame(id uuid.UUID, heroName string, generator *loot.Generator, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		ID:         id,
		Hero:       hero.New(heroName),
		rings:      item.NewPool(),
		tombstones: make(map[int]*loot.Chest),
		generator:  generator,
		logger:     logger.With(zap.String("session", id.String())),
	}
}

// Descend moves one level deeper and returns the new depth.
func (g *Game) Descend() int {
	g.Depth++
	return g.Depth
}

// Ascend moves one level up, stopping at the surface.
func (g *Game) Ascend() int {
	if g.Depth > 0 {
		g.Depth--
	}
	return g.Depth
}

// Inspect searches the current location. A chest may be generated for
// the spot, and any tombstone resting at this depth is merged into the
// find; everything discovered is picked up immediately. The second
// return is false when there was nothing here.
//
// Tombstone recovery ignores the evade ring: evading suppresses new
// chests, not the recovery of what the hero already lost.
func (g *Game) Inspect() (*loot.Pickup, bool) {
	chest := g.generator.Generate(g.Hero, g.Depth, g.rings)

	if tomb, ok := g.tombstones[g.Depth]; ok {
		if chest == nil {
			chest = tomb
		} else {
			chest.Extend(tomb)
		}
		delete(g.tombstones, g.Depth)
		g.logger.Debug("tombstone recovered", zap.Int("depth", g.Depth))
	}

	if chest == nil {
		return nil, false
	}
	return g.collect(chest), true
}

// BattleSpoils rolls and collects the reward for a battle won at the
// current depth. Spoils never include gold, and tombstones stay buried;
// only Inspect digs them up.
func (g *Game) BattleSpoils() (*loot.Pickup, bool) {
	chest := g.generator.BattleLoot(g.Hero, g.Depth, g.rings)
	if chest == nil {
		return nil, false
	}
	return g.collect(chest), true
}

func (g *Game) collect(chest *loot.Chest) *loot.Pickup {
	counts, gold := chest.PickUp(g.Hero)
	pickup := &loot.Pickup{Items: counts, Gold: gold}
	g.logger.Info("loot collected",
		zap.Int("depth", g.Depth),
		zap.Int("gold", gold),
		zap.Int("items", pickup.TotalItems()),
	)
	return pickup
}

// Die drops everything the hero carries into a tombstone at the current
// depth, absorbing any tombstone already resting there, and respawns the
// hero at the surface fully restored. Level and stats survive death;
// carried wealth does not.
func (g *Game) Die() {
	depth := g.Depth
	tomb := loot.DropFromHero(g.Hero)
	tomb.Extend(g.tombstones[depth])
	g.tombstones[depth] = tomb

	g.Depth = 0
	g.Hero.RestoreToFull()
	g.logger.Info("hero fell",
		zap.Int("depth", depth),
		zap.Int("gold_lost", tomb.Gold),
		zap.Int("items_lost", len(tomb.Items)),
	)
}

// UseItem pops one item with the given key from the inventory and
// applies its effect to this session.
func (g *Game) UseItem(key item.Key) error {
	it, ok := g.Hero.TakeItem(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchItem, key)
	}
	it.Apply(g)
	g.logger.Debug("item used", zap.String("item", string(key)))
	return nil
}

// RingsRemaining reports how many rings are still undiscovered.
func (g *Game) RingsRemaining() int {
	return g.rings.Len()
}

// TombstoneCount reports how many tombstones lie unrecovered.
func (g *Game) TombstoneCount() int {
	return len(g.tombstones)
}

var _ item.Receiver = (*Game)(nil)

// The Receiver surface items act through. Most effects pass straight to
// the hero; escape tokens also move the expedition.

func (g *Game) RestoreHealth(points int) { g.Hero.RestoreHealth(points) }
func (g *Game) RestoreMagic(points int)  { g.Hero.RestoreMagic(points) }
func (g *Game) Cure()                    { g.Hero.Cure() }

func (g *Game) ReturnHome() {
	g.Depth = 0
	g.Hero.RestoreToFull()
}

func (g *Game) RaiseMaxHealth(points int) { g.Hero.RaiseMaxHealth(points) }
func (g *Game) RaiseMaxMagic(points int)  { g.Hero.RaiseMaxMagic(points) }
func (g *Game) RaiseStrength(points int)  { g.Hero.RaiseStrength(points) }
func (g *Game) RaiseSpeed(points int)     { g.Hero.RaiseSpeed(points) }
func (g *Game) GainLevel()                { g.Hero.GainLevel() }
func (g *Game) EquipRing(r item.Ring)     { g.Hero.EquipRing(r) }
