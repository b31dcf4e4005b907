package columns

import (
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

// ShuffleGenerator emits one value per item; the count param is ignored.
type ShuffleGenerator struct{}

func (g *ShuffleGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.Shuffle(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *ShuffleGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	_, err := g.options(spec, ctx)
	return err
}

func (g *ShuffleGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeString
}

func (g *ShuffleGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.ShuffleOptions, error) {
	opts := generators.DefaultShuffleOptions()
	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if opts.Items, err = stringsParam(spec, "items", opts.Items); err != nil {
		return opts, err
	}
	if opts.Items == nil {
		opts.Items = []string{}
	}
	return opts, nil
}
