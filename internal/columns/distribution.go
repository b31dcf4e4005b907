package columns

import (
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type DistributionGenerator struct{}

func (g *DistributionGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.Distribution(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *DistributionGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return err
	}
	opts.Count = 0
	_, err = generators.Distribution(rand.New(rand.NewSource(1)), opts)
	return err
}

func (g *DistributionGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeFloat
}

func (g *DistributionGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.DistributionOptions, error) {
	opts := generators.DefaultDistributionOptions()
	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	code, err := stringParam(spec, "type", "n")
	if err != nil {
		return opts, err
	}
	opts.Kind = generators.ParseDistKind(code)
	if opts.Precision, err = intParam(spec, "precision", opts.Precision); err != nil {
		return opts, err
	}
	if opts.DoF, err = stringParam(spec, "dof", opts.DoF); err != nil {
		return opts, err
	}
	return opts, nil
}
