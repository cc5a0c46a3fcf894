package item

import (
	"strings"

	"github.com/cory-johannsen/delve/internal/game/dice"
)

// RingKind enumerates the nine unique rings. Exactly one ring of each
// kind exists per game; once drawn from the pool a kind never reappears.
type RingKind string

const (
	RingVoid    RingKind = "void"
	RingAttack  RingKind = "attack"
	RingDeflect RingKind = "deflect"
	RingSpeed   RingKind = "speed"
	RingMagic   RingKind = "magic"
	RingMana    RingKind = "mana"
	RingLife    RingKind = "life"
	// RingEvade suppresses chest generation entirely while worn.
	RingEvade RingKind = "evade"
	// RingFortune doubles every loot chance while worn.
	RingFortune RingKind = "fortune"
)

// RingKinds returns every kind in declaration order.
func RingKinds() []RingKind {
	return []RingKind{
		RingVoid,
		RingAttack,
		RingDeflect,
		RingSpeed,
		RingMagic,
		RingMana,
		RingLife,
		RingEvade,
		RingFortune,
	}
}

var _ Item = Ring{}

// Ring is a unique collectible. Loose rings travel through chests and
// inventories like any other item; using one equips it.
type Ring struct {
	Kind RingKind `json:"kind" yaml:"kind"`
}

const ringKeySuffix = "-ring"

// Key returns the inventory key for the ring, e.g. "evade-ring".
func (r Ring) Key() Key {
	return Key(string(r.Kind) + ringKeySuffix)
}

func (r Ring) Apply(rc Receiver) {
	rc.EquipRing(r)
}

// ParseRingKind returns the kind named by s, false when no such ring
// exists.
func ParseRingKind(s string) (RingKind, bool) {
	kind := RingKind(s)
	for _, k := range RingKinds() {
		if k == kind {
			return kind, true
		}
	}
	return "", false
}

func ringKindForKey(key Key) (RingKind, bool) {
	name, ok := strings.CutSuffix(string(key), ringKeySuffix)
	if !ok {
		return "", false
	}
	return ParseRingKind(name)
}

// Pool holds the rings that remain undiscovered. It is seeded once at
// game start with one ring of every kind and is never refilled.
//
// Pool is not safe for concurrent use; the owning session serializes
// access to it.
type Pool struct {
	rings []Ring
}

// NewPool returns a pool holding one ring of every kind.
func NewPool() *Pool {
	kinds := RingKinds()
	rings := make([]Ring, 0, len(kinds))
	for _, kind := range kinds {
		rings = append(rings, Ring{Kind: kind})
	}
	return &Pool{rings: rings}
}

// NewPoolOf returns a pool holding exactly the given kinds, in order.
// Restoring a saved game rebuilds its pool this way.
func NewPoolOf(kinds ...RingKind) *Pool {
	rings := make([]Ring, 0, len(kinds))
	for _, kind := range kinds {
		rings = append(rings, Ring{Kind: kind})
	}
	return &Pool{rings: rings}
}

// TakeRandom removes and returns a uniformly chosen ring. The second
// return is false when the pool is empty, the normal state once every
// ring has been found.
//
// Postcondition: on a true return the pool shrank by one and the
// returned kind will never be offered again.
func (p *Pool) TakeRandom(src dice.Source) (Ring, bool) {
	if len(p.rings) == 0 {
		return Ring{}, false
	}
	i := src.Intn(len(p.rings))
	ring := p.rings[i]
	p.rings = append(p.rings[:i], p.rings[i+1:]...)
	return ring, true
}

// Len reports how many rings remain.
func (p *Pool) Len() int {
	return len(p.rings)
}

// Empty reports whether every ring has been drawn.
func (p *Pool) Empty() bool {
	return len(p.rings) == 0
}

// Kinds returns the remaining kinds in pool order.
func (p *Pool) Kinds() []RingKind {
	kinds := make([]RingKind, 0, len(p.rings))
	for _, ring := range p.rings {
		kinds = append(kinds, ring.Kind)
	}
	return kinds
}
