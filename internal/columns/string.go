package columns

import (
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type StringGenerator struct{}

func (g *StringGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.Strings(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *StringGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return err
	}
	opts.Count = 0
	_, err = generators.Strings(rand.New(rand.NewSource(1)), opts)
	return err
}

func (g *StringGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeString
}

func (g *StringGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.StringOptions, error) {
	opts := generators.DefaultStringOptions()
	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if opts.Length, err = intParam(spec, "length", opts.Length); err != nil {
		return opts, err
	}
	charset, err := stringParam(spec, "charset", string(opts.CharSet))
	if err != nil {
		return opts, err
	}
	opts.CharSet = generators.CharSet(charset)
	return opts, nil
}
