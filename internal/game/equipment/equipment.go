// Package equipment defines the hero's wearable gear and the
// upgrade-only replacement policy shared by chest pickup and chest merge.
package equipment

import "fmt"

// Kind identifies an equipment category.
type Kind string

const (
	// KindSword is the weapon slot category.
	KindSword Kind = "sword"
	// KindShield is the defensive slot category.
	KindShield Kind = "shield"
)

// Equipment is a single piece of gear: a category and a power level.
// A piece is exclusively owned by whichever slot currently holds it;
// moving it between slots transfers ownership, never duplicates it.
type Equipment struct {
	Kind  Kind
	Level int
}

// NewSword returns a sword of the given level.
//
// Precondition: level >= 1.
func NewSword(level int) *Equipment {
	return &Equipment{Kind: KindSword, Level: level}
}

// NewShield returns a shield of the given level.
//
// Precondition: level >= 1.
func NewShield(level int) *Equipment {
	return &Equipment{Kind: KindShield, Level: level}
}

// IsUpgradeFrom reports whether e should replace current: true when the
// slot is empty or when e's level strictly exceeds the held level.
// Equal levels never upgrade.
func (e *Equipment) IsUpgradeFrom(current *Equipment) bool {
	if current == nil {
		return true
	}
	return e.Level > current.Level
}

// String renders the piece as "sword[12]".
func (e *Equipment) String() string {
	return fmt.Sprintf("%s[%d]", e.Kind, e.Level)
}

// Upgrade applies the upgrade-only replacement policy between two slots.
// The candidate slot is always emptied: on upgrade the piece moves into
// the current slot, otherwise it is discarded. Equal levels do not
// upgrade.
//
// Precondition: current and candidate are non-nil slot addresses (the
// slots themselves may hold nil).
// Postcondition: *candidate == nil; *current changed iff the result is
// true.
func Upgrade(current, candidate **Equipment) bool {
	challenger := *candidate
	*candidate = nil
	if challenger == nil {
		return false
	}
	if challenger.IsUpgradeFrom(*current) {
		*current = challenger
		return true
	}
	return false
}
