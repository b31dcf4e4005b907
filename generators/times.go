package generators

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time expressed as an offset from midnight.
type Clock time.Duration

// NewClock builds the clock time hour:min:sec.
func NewClock(hour, min, sec int) Clock {
	return Clock(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second)
}

// ClockOf returns the wall-clock part of t.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute(), t.Second())
}

// ParseClock accepts HH:MM:SS or HH:MM.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, invalidf("clock must be HH:MM[:SS], got %q", s)
	}
	limits := []int{24, 60, 60}
	vals := []int{0, 0, 0}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n >= limits[i] {
			return 0, invalidf("clock must be HH:MM[:SS], got %q", s)
		}
		vals[i] = n
	}
	return NewClock(vals[0], vals[1], vals[2]), nil
}

func (c Clock) Seconds() int64 {
	return int64(time.Duration(c) / time.Second)
}

func (c Clock) String() string {
	secs := c.Seconds()
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

type TimeOptions struct {
	Start Clock
	End   Clock
	Count int
	// Stamp selects raw offset seconds instead of formatted clock strings.
	// Times and TimeOffsets ignore it; the dataset layer uses it to pick one.
	Stamp bool
}

// DefaultTimeOptions covers midnight through the current clock time.
func DefaultTimeOptions() TimeOptions {
	return TimeOptions{
		Start: 0,
		End:   ClockOf(time.Now()),
		Count: DefaultCount,
	}
}

// TimeOffsets draws Count+1 offsets, in seconds, uniformly from [0, End-Start).
func TimeOffsets(rng *rand.Rand, opts TimeOptions) ([]int64, error) {
	if err := checkCommon(rng, opts.Count); err != nil {
		return nil, err
	}
	span := opts.End.Seconds() - opts.Start.Seconds()
	if span <= 0 {
		return nil, invalidf("time start %s must be before end %s", opts.Start, opts.End)
	}

	out := make([]int64, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		out = append(out, rng.Int63n(span))
	}
	return out, nil
}

// Times is TimeOffsets rendered as HH:MM:SS clock times after Start.
func Times(rng *rand.Rand, opts TimeOptions) ([]string, error) {
	offsets, err := TimeOffsets(rng, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(offsets))
	for i, off := range offsets {
		out[i] = (opts.Start + Clock(time.Duration(off)*time.Second)).String()
	}
	return out, nil
}
