package generators

import (
	"math/rand"
	"time"
)

// DateLayout is the YYYY-MM-DD format of every generated date.
const DateLayout = "2006-01-02"

// Epoch is the default first day of a date range.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

type DateOptions struct {
	Start time.Time
	End   time.Time
	Count int
}

// DefaultDateOptions covers Epoch through today (UTC).
func DefaultDateOptions() DateOptions {
	return DateOptions{
		Start: Epoch,
		End:   time.Now().UTC(),
		Count: DefaultCount,
	}
}

// Dates draws Count+1 calendar days between Start and End, both inclusive.
// Only the calendar date of Start and End is considered.
func Dates(rng *rand.Rand, opts DateOptions) ([]string, error) {
	if err := checkCommon(rng, opts.Count); err != nil {
		return nil, err
	}
	start := dateOnly(opts.Start)
	end := dateOnly(opts.End)
	if start.After(end) {
		return nil, invalidf("date start %s is after end %s", start.Format(DateLayout), end.Format(DateLayout))
	}

	days := DaysBetween(start, end) + 1
	out := make([]string, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		offset := rng.Intn(days)
		out = append(out, start.AddDate(0, 0, offset).Format(DateLayout))
	}
	return out, nil
}

// DaysBetween returns the number of whole days from a to b. It counts in Unix
// seconds, so ranges longer than a time.Duration can hold stay exact.
func DaysBetween(a, b time.Time) int {
	return int((dateOnly(b).Unix() - dateOnly(a).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
