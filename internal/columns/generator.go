package columns

import (
	"math/rand"
	"time"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type Generator interface {
	Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error)
	// Validate checks the params of spec without generating a full column.
	Validate(spec domain.ColumnSpec, ctx GeneratorContext) error
	ColumnType(spec domain.ColumnSpec) domain.ColumnType
}

// GeneratorContext carries plan-wide defaults and the columns built so far.
type GeneratorContext struct {
	Count        int
	Now          time.Time
	MaxRetries   int
	Country      string
	Names        generators.NameProvider
	ColumnValues map[string][]any
}

// DependsOn returns the column this one reads its input from, if any.
func DependsOn(spec domain.ColumnSpec) (string, bool) {
	v, ok := spec.Param("from")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// NewContext returns a context with the package defaults, computing relative
// dates and the default time window from now.
func NewContext(now time.Time) GeneratorContext {
	return GeneratorContext{
		Count:        generators.DefaultCount,
		Now:          now,
		MaxRetries:   generators.DefaultMaxRetries,
		ColumnValues: map[string][]any{},
	}
}

func countParam(spec domain.ColumnSpec, ctx GeneratorContext) (int, error) {
	return intParam(spec, "count", ctx.Count)
}
