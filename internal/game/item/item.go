// Package item defines the consumable and collectible contents of loot
// chests: leveled restoratives, permanent stat stones, and the nine
// unique rings drawn from a shared pool.
package item

import (
	"errors"
	"fmt"
)

// Key is the stable identity of an item variant. Inventory tallies,
// pickup reports, and save records are all keyed by it.
type Key string

const (
	KeyPotion Key = "potion"
	KeyRemedy Key = "remedy"
	KeyEscape Key = "escape"
	KeyEther  Key = "ether"

	KeyHealthStone Key = "health-stone"
	KeyMagicStone  Key = "magic-stone"
	KeyPowerStone  Key = "power-stone"
	KeySpeedStone  Key = "speed-stone"
	KeyLevelStone  Key = "level-stone"

	// KeySword and KeyShield appear in pickup tallies only. Equipment
	// lives in dedicated slots, never in the item inventory.
	KeySword  Key = "sword"
	KeyShield Key = "shield"
)

// Receiver is the surface an item mutates when used. The game session
// implements it on behalf of the hero.
type Receiver interface {
	// RestoreHealth heals up to points, clamped at the health maximum.
	RestoreHealth(points int)
	// RestoreMagic recovers up to points, clamped at the magic maximum.
	RestoreMagic(points int)
	// Cure removes any active status ailment.
	Cure()
	// ReturnHome moves the expedition back to the surface and fully
	// restores the hero.
	ReturnHome()
	// RaiseMaxHealth permanently raises the health maximum.
	RaiseMaxHealth(points int)
	// RaiseMaxMagic permanently raises the magic maximum.
	RaiseMaxMagic(points int)
	// RaiseStrength permanently raises strength.
	RaiseStrength(points int)
	// RaiseSpeed permanently raises speed.
	RaiseSpeed(points int)
	// GainLevel advances the hero one level.
	GainLevel()
	// EquipRing puts the ring on the hero.
	EquipRing(ring Ring)
}

// Item is a single chest or inventory entry.
type Item interface {
	// Key returns the variant identity.
	Key() Key
	// Apply consumes the item's effect against the receiver. The item
	// itself is gone afterwards; removal from the inventory is the
	// caller's job.
	Apply(r Receiver)
}

// Record is the storable form of an item: its key plus the level for
// leveled variants. Records with a zero level denote unleveled items.
type Record struct {
	Key   Key `json:"key" yaml:"key"`
	Level int `json:"level,omitempty" yaml:"level,omitempty"`
}

// ErrUnknownKey reports a key that names no item variant.
var ErrUnknownKey = errors.New("item: unknown key")

// New constructs the item variant identified by key. The level is only
// meaningful for potions and ethers and is ignored elsewhere. Equipment
// keys are rejected: swords and shields are not inventory items.
func New(key Key, level int) (Item, error) {
	switch key {
	case KeyPotion:
		return Potion{Level: level}, nil
	case KeyEther:
		return Ether{Level: level}, nil
	case KeyRemedy:
		return Remedy{}, nil
	case KeyEscape:
		return Escape{}, nil
	case KeyHealthStone:
		return HealthStone{}, nil
	case KeyMagicStone:
		return MagicStone{}, nil
	case KeyPowerStone:
		return PowerStone{}, nil
	case KeySpeedStone:
		return SpeedStone{}, nil
	case KeyLevelStone:
		return LevelStone{}, nil
	}
	if kind, ok := ringKindForKey(key); ok {
		return Ring{Kind: kind}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Snapshot renders an item as its storable record.
func Snapshot(it Item) Record {
	switch v := it.(type) {
	case Potion:
		return Record{Key: KeyPotion, Level: v.Level}
	case Ether:
		return Record{Key: KeyEther, Level: v.Level}
	default:
		return Record{Key: it.Key()}
	}
}
