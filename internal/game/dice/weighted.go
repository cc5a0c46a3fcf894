package dice

// WeightedIndex selects one index from weights with probability
// proportional to its weight.
//
// Precondition: weights is non-empty, every weight is >= 0, and the sum
// of all weights is > 0. Panics with "dice: ..." otherwise; a
// non-positive total means a reward table is misconfigured.
// Postcondition: the returned index i satisfies 0 <= i < len(weights)
// and weights[i] > 0.
func WeightedIndex(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w < 0 {
			panic("dice: weighted selection called with a negative weight")
		}
		total += w
	}
	if total <= 0 {
		panic("dice: weighted selection requires a positive total weight")
	}

	roll := src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	// Unreachable: roll < total and the cumulative sum reaches total.
	return len(weights) - 1
}

// Between returns a uniform random int in [min, max] inclusive.
//
// Postcondition: min <= result <= max when min < max; result == min
// when max <= min.
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}
