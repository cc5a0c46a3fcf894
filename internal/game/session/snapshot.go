package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/delve/internal/game/equipment"
	"github.com/cory-johannsen/delve/internal/game/hero"
	"github.com/cory-johannsen/delve/internal/game/item"
	"github.com/cory-johannsen/delve/internal/game/loot"
)

// Snapshot is the serializable form of a Game. Inventory and chest item
// order carries no meaning; equipment is optional; the ring pool is the
// set of kinds still undiscovered.
type Snapshot struct {
	ID         string                `json:"id"`
	Hero       HeroSnapshot          `json:"hero"`
	Depth      int                   `json:"depth"`
	RingPool   []item.RingKind       `json:"ring_pool"`
	Tombstones map[int]ChestSnapshot `json:"tombstones,omitempty"`
}

// HeroSnapshot mirrors hero.Hero field by field, with items flattened to
// their records and rings stored by kind.
type HeroSnapshot struct {
	Name       string             `json:"name"`
	Level      int                `json:"level"`
	Experience int                `json:"experience"`
	CurrentHP  int                `json:"current_hp"`
	MaxHP      int                `json:"max_hp"`
	CurrentMP  int                `json:"current_mp"`
	MaxMP      int                `json:"max_mp"`
	Strength   int                `json:"strength"`
	Speed      int                `json:"speed"`
	Gold       int                `json:"gold"`
	Ailment    string             `json:"ailment,omitempty"`
	Sword      *EquipmentSnapshot `json:"sword,omitempty"`
	Shield     *EquipmentSnapshot `json:"shield,omitempty"`
	LeftRing   string             `json:"left_ring,omitempty"`
	RightRing  string             `json:"right_ring,omitempty"`
	Inventory  []item.Record      `json:"inventory,omitempty"`
}

// EquipmentSnapshot stores one equipment piece.
type EquipmentSnapshot struct {
	Kind  string `json:"kind"`
	Level int    `json:"level"`
}

// ChestSnapshot stores a tombstone chest.
type ChestSnapshot struct {
	Items  []item.Record      `json:"items,omitempty"`
	Sword  *EquipmentSnapshot `json:"sword,omitempty"`
	Shield *EquipmentSnapshot `json:"shield,omitempty"`
	Gold   int                `json:"gold,omitempty"`
}

// Snapshot captures the game for persistence. The game keeps running;
// the snapshot is an independent copy.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       g.ID.String(),
		Depth:    g.Depth,
		RingPool: g.rings.Kinds(),
		Hero: HeroSnapshot{
			Name:       g.Hero.Name,
			Level:      g.Hero.Level,
			Experience: g.Hero.Experience,
			CurrentHP:  g.Hero.CurrentHP,
			MaxHP:      g.Hero.MaxHP,
			CurrentMP:  g.Hero.CurrentMP,
			MaxMP:      g.Hero.MaxMP,
			Strength:   g.Hero.Strength,
			Speed:      g.Hero.Speed,
			Gold:       g.Hero.Gold,
			Ailment:    string(g.Hero.Ailment),
			Sword:      snapshotEquipment(g.Hero.Sword),
			Shield:     snapshotEquipment(g.Hero.Shield),
			Inventory:  snapshotItems(g.Hero.InventoryItems()),
		},
	}
	if g.Hero.LeftRing != nil {
		snap.Hero.LeftRing = string(g.Hero.LeftRing.Kind)
	}
	if g.Hero.RightRing != nil {
		snap.Hero.RightRing = string(g.Hero.RightRing.Kind)
	}
	if len(g.tombstones) > 0 {
		snap.Tombstones = make(map[int]ChestSnapshot, len(g.tombstones))
		for depth, chest := range g.tombstones {
			snap.Tombstones[depth] = ChestSnapshot{
				Items:  snapshotItems(chest.Items),
				Sword:  snapshotEquipment(chest.Sword),
				Shield: snapshotEquipment(chest.Shield),
				Gold:   chest.Gold,
			}
		}
	}
	return snap
}

// Restore rebuilds a Game from its snapshot.
func Restore(snap Snapshot, generator *loot.Generator, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	id, err := uuid.Parse(snap.ID)
	if err != nil {
		return nil, fmt.Errorf("restoring session id: %w", err)
	}

	h := hero.New(snap.Hero.Name)
	h.Level = snap.Hero.Level
	h.Experience = snap.Hero.Experience
	h.CurrentHP = snap.Hero.CurrentHP
	h.MaxHP = snap.Hero.MaxHP
	h.CurrentMP = snap.Hero.CurrentMP
	h.MaxMP = snap.Hero.MaxMP
	h.Strength = snap.Hero.Strength
	h.Speed = snap.Hero.Speed
	h.Gold = snap.Hero.Gold
	h.Ailment = hero.Ailment(snap.Hero.Ailment)

	if h.Sword, err = restoreEquipment(snap.Hero.Sword); err != nil {
		return nil, fmt.Errorf("restoring sword: %w", err)
	}
	if h.Shield, err = restoreEquipment(snap.Hero.Shield); err != nil {
		return nil, fmt.Errorf("restoring shield: %w", err)
	}
	if h.LeftRing, err = restoreRing(snap.Hero.LeftRing); err != nil {
		return nil, fmt.Errorf("restoring left ring: %w", err)
	}
	if h.RightRing, err = restoreRing(snap.Hero.RightRing); err != nil {
		return nil, fmt.Errorf("restoring right ring: %w", err)
	}
	for _, rec := range snap.Hero.Inventory {
		it, err := item.New(rec.Key, rec.Level)
		if err != nil {
			return nil, fmt.Errorf("restoring inventory: %w", err)
		}
		h.AddItem(it)
	}

	for _, kind := range snap.RingPool {
		if _, ok := item.ParseRingKind(string(kind)); !ok {
			return nil, fmt.Errorf("restoring ring pool: unknown kind %q", kind)
		}
	}

	g := &Game{
		ID:         id,
		Hero:       h,
		Depth:      snap.Depth,
		rings:      item.NewPoolOf(snap.RingPool...),
		tombstones: make(map[int]*loot.Chest, len(snap.Tombstones)),
		generator:  generator,
		logger:     logger.With(zap.String("session", id.String())),
	}

	for depth, cs := range snap.Tombstones {
		chest := &loot.Chest{Gold: cs.Gold}
		if chest.Sword, err = restoreEquipment(cs.Sword); err != nil {
			return nil, fmt.Errorf("restoring tombstone at depth %d: %w", depth, err)
		}
		if chest.Shield, err = restoreEquipment(cs.Shield); err != nil {
			return nil, fmt.Errorf("restoring tombstone at depth %d: %w", depth, err)
		}
		for _, rec := range cs.Items {
			it, err := item.New(rec.Key, rec.Level)
			if err != nil {
				return nil, fmt.Errorf("restoring tombstone at depth %d: %w", depth, err)
			}
			chest.Items = append(chest.Items, it)
		}
		g.tombstones[depth] = chest
	}

	return g, nil
}

func snapshotItems(items []item.Item) []item.Record {
	if len(items) == 0 {
		return nil
	}
	records := make([]item.Record, 0, len(items))
	for _, it := range items {
		records = append(records, item.Snapshot(it))
	}
	return records
}

func snapshotEquipment(e *equipment.Equipment) *EquipmentSnapshot {
	if e == nil {
		return nil
	}
	return &EquipmentSnapshot{Kind: string(e.Kind), Level: e.Level}
}

func restoreEquipment(es *EquipmentSnapshot) (*equipment.Equipment, error) {
	if es == nil {
		return nil, nil
	}
	kind := equipment.Kind(es.Kind)
	if kind != equipment.KindSword && kind != equipment.KindShield {
		return nil, fmt.Errorf("unknown equipment kind %q", es.Kind)
	}
	return &equipment.Equipment{Kind: kind, Level: es.Level}, nil
}

func restoreRing(kind string) (*item.Ring, error) {
	if kind == "" {
		return nil, nil
	}
	parsed, ok := item.ParseRingKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown ring kind %q", kind)
	}
	return &item.Ring{Kind: parsed}, nil
}
