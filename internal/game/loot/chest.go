// Package loot implements chest generation and resolution: randomized
// rewards for inspecting locations and winning battles, tombstone
// extraction on defeat, and the merge and pickup rules that move loot
// between chests and the hero.
package loot

import (
	"github.com/cory-johannsen/delve/internal/game/equipment"
	"github.com/cory-johannsen/delve/internal/game/hero"
	"github.com/cory-johannsen/delve/internal/game/item"
)

// Chest is a bag of rewards: an item multiset, at most one sword and one
// shield, and a non-negative pile of gold. Chests appear on inspection,
// drop from defeated enemies, and hold everything a dead hero carried.
type Chest struct {
	Items  []item.Item
	Sword  *equipment.Equipment
	Shield *equipment.Equipment
	Gold   int
}

// Pickup reports what a hero gained from a chest: per-key item tallies
// (equipment upgrades tally under the sword/shield keys) and gold.
type Pickup struct {
	Items map[item.Key]int
	Gold  int
}

// TotalItems returns the number of items gained, equipment included.
func (p *Pickup) TotalItems() int {
	total := 0
	for _, n := range p.Items {
		total += n
	}
	return total
}

// Empty reports whether the chest holds nothing at all.
func (c *Chest) Empty() bool {
	return c.Gold == 0 && c.Sword == nil && c.Shield == nil && len(c.Items) == 0
}

// Extend merges other into c and empties other. Equipment follows the
// upgrade-only policy; a losing piece is discarded outright rather than
// kept as a spare. Items are appended with multiplicity and gold is
// summed.
//
// Postcondition: other is empty; the combined gold and item totals are
// conserved.
func (c *Chest) Extend(other *Chest) {
	if other == nil {
		return
	}
	equipment.Upgrade(&c.Sword, &other.Sword)
	equipment.Upgrade(&c.Shield, &other.Shield)
	c.Items = append(c.Items, other.Items...)
	other.Items = nil
	c.Gold += other.Gold
	other.Gold = 0
}

// PickUp transfers the chest contents to the hero. Equipment replaces
// the hero's gear only when strictly better (tallying one under the
// sword/shield key); items and gold transfer unconditionally.
//
// Postcondition: the chest is empty; the returned gold equals the amount
// added to the hero.
func (c *Chest) PickUp(h *hero.Hero) (map[item.Key]int, int) {
	counts := make(map[item.Key]int)

	if equipment.Upgrade(&h.Sword, &c.Sword) {
		counts[item.KeySword] = 1
	}
	if equipment.Upgrade(&h.Shield, &c.Shield) {
		counts[item.KeyShield] = 1
	}

	for _, it := range c.Items {
		counts[it.Key()]++
		h.AddItem(it)
	}
	c.Items = nil

	gold := c.Gold
	h.Gold += gold
	c.Gold = 0

	return counts, gold
}

// DropFromHero strips the hero of everything carried and returns it as
// a chest: the whole inventory, both equipment slots, any equipped rings
// (dropped as loose items), and all gold. Never nil, even for a hero
// with nothing.
//
// Postcondition: the hero has an empty inventory, empty slots, and zero
// gold; level and stats are untouched.
func DropFromHero(h *hero.Hero) *Chest {
	c := &Chest{Items: h.DrainInventory()}

	c.Sword, h.Sword = h.Sword, nil
	c.Shield, h.Shield = h.Shield, nil

	if h.LeftRing != nil {
		c.Items = append(c.Items, *h.LeftRing)
		h.LeftRing = nil
	}
	if h.RightRing != nil {
		c.Items = append(c.Items, *h.RightRing)
		h.RightRing = nil
	}

	c.Gold, h.Gold = h.Gold, 0
	return c
}
