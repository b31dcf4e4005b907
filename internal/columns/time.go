package columns

import (
	"fmt"
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type TimeGenerator struct{}

func (g *TimeGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	if opts.Stamp {
		offsets, err := generators.TimeOffsets(rng, opts)
		if err != nil {
			return nil, err
		}
		return generators.Column(offsets), nil
	}
	values, err := generators.Times(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *TimeGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return err
	}
	opts.Count = 0
	_, err = generators.TimeOffsets(rand.New(rand.NewSource(1)), opts)
	return err
}

func (g *TimeGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	if stamp, _ := boolParam(spec, "stamp", false); stamp {
		return domain.ColumnTypeInt
	}
	return domain.ColumnTypeString
}

func (g *TimeGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.TimeOptions, error) {
	opts := generators.DefaultTimeOptions()
	opts.End = generators.ClockOf(ctx.Now)

	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if opts.Stamp, err = boolParam(spec, "stamp", false); err != nil {
		return opts, err
	}
	if opts.Start, err = clockParam(spec, "start", opts.Start); err != nil {
		return opts, err
	}
	if opts.End, err = clockParam(spec, "end", opts.End); err != nil {
		return opts, err
	}
	return opts, nil
}

func clockParam(spec domain.ColumnSpec, key string, def generators.Clock) (generators.Clock, error) {
	if _, ok := spec.Param(key); !ok {
		return def, nil
	}
	s, err := stringParam(spec, key, "")
	if err != nil {
		return 0, err
	}
	c, err := generators.ParseClock(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s time: %w", key, err)
	}
	return c, nil
}
