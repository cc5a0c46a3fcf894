// Package hero holds the player character: stats, equipment slots,
// rings, gold, and the item inventory the loot engine fills and drains.
package hero

import (
	"github.com/cory-johannsen/delve/internal/game/equipment"
	"github.com/cory-johannsen/delve/internal/game/item"
)

// Ailment is a lingering status condition. The zero value means healthy.
type Ailment string

const (
	AilmentNone   Ailment = ""
	AilmentPoison Ailment = "poison"
	AilmentBurn   Ailment = "burn"
)

// Per-level growth applied on GainLevel.
const (
	healthPerLevel   = 10
	magicPerLevel    = 5
	strengthPerLevel = 2
	speedPerLevel    = 1
)

// Starting stats for a fresh hero.
const (
	baseHealth   = 30
	baseMagic    = 10
	baseStrength = 10
	baseSpeed    = 5
)

// Hero is the player character. A Hero is owned by exactly one game
// session and is not safe for concurrent use on its own.
type Hero struct {
	Name       string
	Level      int
	Experience int

	CurrentHP int
	MaxHP     int
	CurrentMP int
	MaxMP     int

	Strength int
	Speed    int

	Gold    int
	Ailment Ailment

	Sword  *equipment.Equipment
	Shield *equipment.Equipment

	LeftRing  *item.Ring
	RightRing *item.Ring

	inventory map[item.Key][]item.Item
}

// New returns a level 1 hero with base stats, empty slots, and an empty
// inventory.
func New(name string) *Hero {
	return &Hero{
		Name:      name,
		Level:     1,
		CurrentHP: baseHealth,
		MaxHP:     baseHealth,
		CurrentMP: baseMagic,
		MaxMP:     baseMagic,
		Strength:  baseStrength,
		Speed:     baseSpeed,
		inventory: make(map[item.Key][]item.Item),
	}
}

// Evades reports whether the evade ring is worn on either hand. While it
// is, locations yield no loot at all.
func (h *Hero) Evades() bool {
	return h.wears(item.RingEvade)
}

// DoubleLoot reports whether the fortune ring is worn on either hand.
func (h *Hero) DoubleLoot() bool {
	return h.wears(item.RingFortune)
}

func (h *Hero) wears(kind item.RingKind) bool {
	if h.LeftRing != nil && h.LeftRing.Kind == kind {
		return true
	}
	return h.RightRing != nil && h.RightRing.Kind == kind
}

// RoundedLevel returns the level rounded down to the nearest multiple of
// five, never below one. Generated consumables are leveled by it so their
// strength moves in steps rather than every level.
func (h *Hero) RoundedLevel() int {
	rounded := (h.Level / 5) * 5
	if rounded < 1 {
		rounded = 1
	}
	return rounded
}

// EquipRing puts the ring on: left hand first, then right, and once both
// hands are full the right ring is displaced back into the inventory.
func (h *Hero) EquipRing(r item.Ring) {
	ring := r
	if h.LeftRing == nil {
		h.LeftRing = &ring
		return
	}
	if h.RightRing == nil {
		h.RightRing = &ring
		return
	}
	displaced := *h.RightRing
	h.RightRing = &ring
	h.AddItem(displaced)
}

// RestoreHealth heals up to points, clamped at MaxHP, and returns the
// amount actually restored.
func (h *Hero) RestoreHealth(points int) int {
	if points < 0 {
		return 0
	}
	restored := points
	if h.CurrentHP+restored > h.MaxHP {
		restored = h.MaxHP - h.CurrentHP
	}
	h.CurrentHP += restored
	return restored
}

// RestoreMagic recovers up to points, clamped at MaxMP, and returns the
// amount actually recovered.
func (h *Hero) RestoreMagic(points int) int {
	if points < 0 {
		return 0
	}
	restored := points
	if h.CurrentMP+restored > h.MaxMP {
		restored = h.MaxMP - h.CurrentMP
	}
	h.CurrentMP += restored
	return restored
}

// Cure clears any active ailment.
func (h *Hero) Cure() {
	h.Ailment = AilmentNone
}

// RaiseMaxHealth permanently raises MaxHP, lifting CurrentHP with it.
func (h *Hero) RaiseMaxHealth(points int) {
	h.MaxHP += points
	h.CurrentHP += points
}

// RaiseMaxMagic permanently raises MaxMP, lifting CurrentMP with it.
func (h *Hero) RaiseMaxMagic(points int) {
	h.MaxMP += points
	h.CurrentMP += points
}

// RaiseStrength permanently raises strength.
func (h *Hero) RaiseStrength(points int) {
	h.Strength += points
}

// RaiseSpeed permanently raises speed.
func (h *Hero) RaiseSpeed(points int) {
	h.Speed += points
}

// GainLevel advances one level and applies the per-level stat growth.
func (h *Hero) GainLevel() {
	h.Level++
	h.MaxHP += healthPerLevel
	h.CurrentHP += healthPerLevel
	h.MaxMP += magicPerLevel
	h.CurrentMP += magicPerLevel
	h.Strength += strengthPerLevel
	h.Speed += speedPerLevel
}

// GainExperience adds experience and levels up every time the running
// total crosses the next threshold.
func (h *Hero) GainExperience(points int) {
	h.Experience += points
	for h.Experience >= h.ExperienceForNextLevel() {
		h.Experience -= h.ExperienceForNextLevel()
		h.GainLevel()
	}
}

// ExperienceForNextLevel returns the experience required to advance from
// the current level.
func (h *Hero) ExperienceForNextLevel() int {
	return h.Level * 100
}

// RestoreToFull brings health and magic back to their maximums and
// clears any ailment. Level, stats, and equipment are untouched.
func (h *Hero) RestoreToFull() {
	h.CurrentHP = h.MaxHP
	h.CurrentMP = h.MaxMP
	h.Ailment = AilmentNone
}
