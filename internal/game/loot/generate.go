package loot

import (
	"github.com/cory-johannsen/delve/internal/game/dice"
	"github.com/cory-johannsen/delve/internal/game/equipment"
	"github.com/cory-johannsen/delve/internal/game/hero"
	"github.com/cory-johannsen/delve/internal/game/item"
)

const (
	// levelSlack is how far the hero may outlevel a location before its
	// chests stop appearing. Cheap victories earn nothing.
	levelSlack = 10

	// baseItemAttempts is the number of independent item rolls per
	// generation; the fortune ring doubles it.
	baseItemAttempts = 3

	// maxEquipmentLevel is the long-shot jackpot entry in the equipment
	// table.
	maxEquipmentLevel = 100
)

// Generator rolls chests. One generator serves a whole session; it is as
// safe for concurrent use as its Source.
type Generator struct {
	src    dice.Source
	tuning *Tuning
}

// NewGenerator returns a generator rolling against src with the given
// tuning. A nil tuning falls back to the shipped defaults.
func NewGenerator(src dice.Source, tuning *Tuning) *Generator {
	if tuning == nil {
		tuning = DefaultTuning()
	}
	return &Generator{src: src, tuning: tuning}
}

// Generate rolls a chest for the hero at the given distance from home.
// Nil means nothing was found, which is the common case; a returned
// chest is never empty.
//
// Each reward dimension (gold, equipment, ring, items) triggers on its
// own independent distance-scaled roll, so deep chests tend to combine
// several kinds of content. Wearing the evade ring suppresses generation
// entirely, and so does outleveling the location by more than the fixed
// slack. Wearing the fortune ring grants every dimension a second roll
// and doubles the item attempts.
func (g *Generator) Generate(h *hero.Hero, distance int, rings *item.Pool) *Chest {
	if h.Evades() {
		return nil
	}
	if h.Level > distance+levelSlack {
		return nil
	}

	goldFound := dice.Chance(g.src, g.tuning.Gold, distance)
	equipmentFound := dice.Chance(g.src, g.tuning.Equipment, distance)
	ringFound := dice.Chance(g.src, g.tuning.Ring, distance)
	itemAttempts := baseItemAttempts

	if h.DoubleLoot() {
		goldFound = goldFound || dice.Chance(g.src, g.tuning.Gold, distance)
		equipmentFound = equipmentFound || dice.Chance(g.src, g.tuning.Equipment, distance)
		ringFound = ringFound || dice.Chance(g.src, g.tuning.Ring, distance)
		itemAttempts *= 2
	}

	chest := &Chest{}

	if goldFound {
		chest.Gold = g.goldAmount(h.Level, distance)
	}
	if equipmentFound {
		chest.Sword, chest.Shield = g.randomEquipment(distance)
	}
	if ringFound {
		// Rings are unique, so only draw once a ring is certain to be
		// included. An exhausted pool clears the trigger: that roll
		// found nothing, it did not find an empty chest.
		if ring, ok := rings.TakeRandom(g.src); ok {
			chest.Items = append(chest.Items, ring)
		} else {
			ringFound = false
		}
	}

	itemFound := false
	for i := 0; i < itemAttempts; i++ {
		if dice.Chance(g.src, g.tuning.Item, distance) {
			itemFound = true
			chest.Items = append(chest.Items, g.randomItem(h.RoundedLevel()))
		}
	}

	if goldFound || equipmentFound || ringFound || itemFound {
		return chest
	}
	return nil
}

// BattleLoot rolls the spoils for a won battle: the same tables as
// Generate with the gold stripped out afterwards. Enemies carry loot,
// not purses.
func (g *Generator) BattleLoot(h *hero.Hero, distance int, rings *item.Pool) *Chest {
	chest := g.Generate(h, distance, rings)
	if chest != nil {
		chest.Gold = 0
	}
	return chest
}

func (g *Generator) goldAmount(level, distance int) int {
	scale := level + distance
	return dice.Between(g.src, g.tuning.GoldPerLevelMin*scale, g.tuning.GoldPerLevelMax*scale)
}

// randomEquipment draws one piece from the fixed table. Most results sit
// at the distance-derived level, a minority five levels above it, and a
// single weight in the table is the level-100 sword.
func (g *Generator) randomEquipment(distance int) (*equipment.Equipment, *equipment.Equipment) {
	level := (distance / 5) * 5
	if level < 1 {
		level = 1
	}

	type entry struct {
		weight int
		sword  *equipment.Equipment
		shield *equipment.Equipment
	}
	table := []entry{
		{weight: 100, sword: equipment.NewSword(level)},
		{weight: 80, shield: equipment.NewShield(level)},
		{weight: 30, sword: equipment.NewSword(level + 5)},
		{weight: 20, shield: equipment.NewShield(level + 5)},
		{weight: 1, sword: equipment.NewSword(maxEquipmentLevel)},
	}

	weights := make([]int, len(table))
	for i, e := range table {
		weights[i] = e.weight
	}
	chosen := table[dice.WeightedIndex(g.src, weights)]
	return chosen.sword, chosen.shield
}

// randomItem draws one consumable from the fixed category table. Potions
// dominate, restoratives are common, stones are rare, and the level
// stone is the rarest thing in the game short of the level-100 sword.
func (g *Generator) randomItem(level int) item.Item {
	type entry struct {
		weight int
		it     item.Item
	}
	table := []entry{
		{weight: 150, it: item.Potion{Level: level}},
		{weight: 10, it: item.Remedy{}},
		{weight: 10, it: item.Escape{}},
		{weight: 50, it: item.Ether{Level: level}},
		{weight: 5, it: item.HealthStone{}},
		{weight: 5, it: item.MagicStone{}},
		{weight: 5, it: item.PowerStone{}},
		{weight: 5, it: item.SpeedStone{}},
		{weight: 1, it: item.LevelStone{}},
	}

	weights := make([]int, len(table))
	for i, e := range table {
		weights[i] = e.weight
	}
	return table[dice.WeightedIndex(g.src, weights)].it
}
