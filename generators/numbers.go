package generators

import "math/rand"

// DefaultMaxRetries bounds the rejection sampler per drawn value.
const DefaultMaxRetries = 10000

type NumberOptions struct {
	Start int
	End   int
	Count int
	// Random draws from [Start, End); otherwise the literal sequence
	// Start..End is returned and Count is ignored.
	Random     bool
	MaxRetries int
}

func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		Start:      1,
		End:        100,
		Count:      DefaultCount,
		Random:     true,
		MaxRetries: DefaultMaxRetries,
	}
}

// Numbers returns Count+1 values drawn from [Start, End) in random mode, or the
// sequence Start..End inclusive otherwise, ignoring Count.
func Numbers(rng *rand.Rand, opts NumberOptions) ([]int, error) {
	if !opts.Random {
		return sequence(opts.Start, opts.End)
	}
	if err := checkCommon(rng, opts.Count); err != nil {
		return nil, err
	}
	if opts.End <= 0 {
		return nil, invalidf("number end must be > 0, got %d", opts.End)
	}
	if opts.Start >= opts.End {
		return nil, invalidf("number start (%d) must be less than end (%d)", opts.Start, opts.End)
	}
	if opts.MaxRetries < 1 {
		return nil, invalidf("max retries must be >= 1, got %d", opts.MaxRetries)
	}

	out := make([]int, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		v, err := rejectBelow(rng, opts.Start, opts.End, opts.MaxRetries)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// rejectBelow draws from [0, end) until the value reaches start.
func rejectBelow(rng *rand.Rand, start, end, maxRetries int) (int, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		if v := rng.Intn(end); v >= start {
			return v, nil
		}
	}
	return 0, failedf("no value in [%d, %d) after %d draws", start, end, maxRetries)
}

func sequence(start, end int) ([]int, error) {
	if start > end {
		return nil, invalidf("sequence start (%d) is after end (%d)", start, end)
	}
	out := make([]int, 0, end-start+1)
	for v := start; v <= end; v++ {
		out = append(out, v)
	}
	return out, nil
}
