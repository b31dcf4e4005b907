package columns

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/mmrzaf/mockdata/internal/timeutil"
)

type DateGenerator struct{}

func (g *DateGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.Dates(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *DateGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return err
	}
	opts.Count = 0
	_, err = generators.Dates(rand.New(rand.NewSource(1)), opts)
	return err
}

func (g *DateGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeDate
}

func (g *DateGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.DateOptions, error) {
	opts := generators.DefaultDateOptions()
	opts.End = ctx.Now.UTC()

	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if s, ok := spec.Param("start"); ok {
		if opts.Start, err = parseDateParam("start", s, ctx); err != nil {
			return opts, err
		}
	}
	if s, ok := spec.Param("end"); ok {
		if opts.End, err = parseDateParam("end", s, ctx); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func parseDateParam(key string, v interface{}, ctx GeneratorContext) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		t, err := timeutil.ParseDate(val, ctx.Now)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid %s date: %w", key, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("'%s' must be a date string", key)
	}
}
