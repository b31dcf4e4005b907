package dataset

import (
	"io"
	"time"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/logging"
)

type Option func(*Builder)

// WithSeed sets the seed used when a plan carries none.
func WithSeed(seed int64) Option {
	return func(b *Builder) { b.cfg.Seed = &seed }
}

// WithCount sets the count used when neither the plan nor a column sets one.
func WithCount(count int) Option {
	return func(b *Builder) { b.cfg.Count = count }
}

func WithMaxRetries(n int) Option {
	return func(b *Builder) { b.cfg.MaxRetries = n }
}

func WithCountry(country string) Option {
	return func(b *Builder) { b.cfg.Country = country }
}

// WithNameProvider replaces the faker-backed name source.
func WithNameProvider(p generators.NameProvider) Option {
	return func(b *Builder) { b.names = p }
}

// WithClock fixes the time relative dates and the default time window are
// computed from.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithLogOutput sends JSON logs at level to w.
func WithLogOutput(w io.Writer, level string) Option {
	return func(b *Builder) { b.logger = logging.NewLoggerWithWriter(level, w).WithComponent("dataset") }
}

// WithoutLogs drops all builder log output.
func WithoutLogs() Option {
	return func(b *Builder) { b.logger = logging.Discard() }
}
