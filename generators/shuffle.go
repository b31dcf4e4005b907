package generators

import "math/rand"

// DefaultShuffleItems is the lowercase alphabet.
var DefaultShuffleItems = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

type ShuffleOptions struct {
	// Items defaults to DefaultShuffleItems when nil; a non-nil empty slice
	// shuffles to an empty result.
	Items []string
	// Count is accepted for symmetry with the other generators; the output
	// always has exactly len(Items) elements.
	Count int
}

func DefaultShuffleOptions() ShuffleOptions {
	return ShuffleOptions{Items: DefaultShuffleItems, Count: DefaultCount}
}

// Shuffle returns a random permutation of a copy of opts.Items.
func Shuffle(rng *rand.Rand, opts ShuffleOptions) ([]string, error) {
	if rng == nil {
		return nil, invalidf("random source is required")
	}
	items := opts.Items
	if items == nil {
		items = DefaultShuffleItems
	}
	out := append(make([]string, 0, len(items)), items...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out, nil
}
