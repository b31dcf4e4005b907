// Package generators produces fixed-length columns of mock values.
//
// Every generator that accepts a count N returns N+1 values: the count is an
// inclusive upper loop bound, not a length. Randomness always comes from the
// *rand.Rand passed by the caller, so a seeded source reproduces a column.
package generators

import "math/rand"

// DefaultCount yields ten values per column.
const DefaultCount = 9

// Column widens a typed column so columns of different kinds can be collated together.
func Column[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func checkCommon(rng *rand.Rand, count int) error {
	if rng == nil {
		return invalidf("random source is required")
	}
	return checkCount(count)
}

func checkCount(count int) error {
	if count < 0 {
		return invalidf("count must be >= 0, got %d", count)
	}
	return nil
}
