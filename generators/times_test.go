package generators

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"
)

var clockRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:30")
	if err != nil {
		t.Fatal(err)
	}
	if c.Seconds() != 8*3600+30*60 {
		t.Fatalf("unexpected seconds: %d", c.Seconds())
	}
	if c.String() != "08:30:00" {
		t.Fatalf("unexpected format: %s", c)
	}

	for _, bad := range []string{"", "8", "24:00", "12:60", "aa:bb", "1:2:3:4"} {
		if _, err := ParseClock(bad); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected %q to be rejected, got %v", bad, err)
		}
	}
}

func TestTimes_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	opts := TimeOptions{Start: NewClock(9, 0, 0), End: NewClock(9, 0, 10), Count: 30}

	got, err := Times(rng, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 31 {
		t.Fatalf("expected 31 times, got %d", len(got))
	}
	for _, s := range got {
		if !clockRe.MatchString(s) {
			t.Fatalf("unexpected time format %q", s)
		}
		if s < "09:00:00" || s >= "09:00:10" {
			t.Fatalf("time %s outside range", s)
		}
	}
}

func TestTimeOffsets_RawSeconds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	opts := TimeOptions{Start: NewClock(1, 0, 0), End: NewClock(2, 0, 0), Count: 9, Stamp: true}

	got, err := TimeOffsets(rng, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 offsets, got %d", len(got))
	}
	for _, off := range got {
		if off < 0 || off >= 3600 {
			t.Fatalf("offset %d outside [0, 3600)", off)
		}
	}
}

func TestTimes_RejectsEmptyRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	opts := TimeOptions{Start: NewClock(10, 0, 0), End: NewClock(10, 0, 0)}
	if _, err := Times(rng, opts); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}
