package dice

import "fmt"

// chanceResolution is the integer granularity of a chance roll.
const chanceResolution = 1 << 20

// Odds describes a distance-scaled probability curve for a yes/no loot
// roll. The effective probability starts at Base and climbs toward Cap
// as distance grows, gaining half of the remaining headroom by the time
// distance reaches Midpoint.
type Odds struct {
	// Base is the probability at distance zero, in (0, 1].
	Base float64 `yaml:"base"`
	// Cap is the asymptotic probability bound, in [Base, 1). The curve
	// approaches Cap but never reaches it, so deep progress never turns
	// a reward into a certainty.
	Cap float64 `yaml:"cap"`
	// Midpoint is the distance at which half of (Cap - Base) has been
	// added. Must be >= 1.
	Midpoint int `yaml:"midpoint"`
}

// Probability returns the effective probability at the given distance.
//
// Postcondition: result is strictly increasing in distance for
// distance >= 0, equals Base at distance 0, and is always < Cap + epsilon
// (sub-linear saturation: Base + (Cap-Base)*d/(d+Midpoint)).
func (o Odds) Probability(distance int) float64 {
	if distance <= 0 {
		return o.Base
	}
	d := float64(distance)
	return o.Base + (o.Cap-o.Base)*d/(d+float64(o.Midpoint))
}

// Chance rolls a distance-scaled boolean: true with probability
// o.Probability(distance).
//
// Each call consumes entropy from src and is independent of every other
// call; there is no state carried between rolls.
//
// Precondition: src is non-nil; o has been validated (0 < Base <= Cap < 1,
// Midpoint >= 1).
func Chance(src Source, o Odds, distance int) bool {
	threshold := int(o.Probability(distance) * chanceResolution)
	if threshold <= 0 {
		return false
	}
	if threshold >= chanceResolution {
		threshold = chanceResolution - 1
	}
	return src.Intn(chanceResolution) < threshold
}

// Validate checks the curve parameters against the bounds Chance
// assumes.
func (o Odds) Validate() error {
	if o.Base <= 0 {
		return fmt.Errorf("base must be positive, got %v", o.Base)
	}
	if o.Cap < o.Base {
		return fmt.Errorf("cap %v is below base %v", o.Cap, o.Base)
	}
	if o.Cap >= 1 {
		return fmt.Errorf("cap must stay below 1, got %v", o.Cap)
	}
	if o.Midpoint < 1 {
		return fmt.Errorf("midpoint must be at least 1, got %d", o.Midpoint)
	}
	return nil
}
