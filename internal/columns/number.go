package columns

import (
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type NumberGenerator struct{}

func (g *NumberGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.Numbers(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *NumberGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return err
	}
	// Generating a single value runs every range check without a long draw.
	opts.Count = 0
	if opts.Random {
		_, err = generators.Numbers(rand.New(rand.NewSource(1)), opts)
		if err != nil && !isGenerationFailure(err) {
			return err
		}
		return nil
	}
	_, err = generators.Numbers(nil, opts)
	return err
}

func (g *NumberGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeInt
}

func (g *NumberGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.NumberOptions, error) {
	opts := generators.DefaultNumberOptions()
	opts.MaxRetries = ctx.MaxRetries

	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if opts.Start, err = intParam(spec, "start", opts.Start); err != nil {
		return opts, err
	}
	if opts.End, err = intParam(spec, "end", opts.End); err != nil {
		return opts, err
	}
	if opts.Random, err = boolParam(spec, "random", opts.Random); err != nil {
		return opts, err
	}
	if opts.MaxRetries, err = intParam(spec, "max_retries", opts.MaxRetries); err != nil {
		return opts, err
	}
	return opts, nil
}
