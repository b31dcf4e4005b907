package columns

import (
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type ImageGenerator struct{}

func (g *ImageGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.Images(rng, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *ImageGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return err
	}
	opts.Count = 0
	_, err = generators.Images(rand.New(rand.NewSource(1)), opts)
	return err
}

func (g *ImageGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeBlob
}

func (g *ImageGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.ImageOptions, error) {
	opts := generators.DefaultImageOptions()
	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if opts.Size, err = intParam(spec, "size", opts.Size); err != nil {
		return opts, err
	}
	return opts, nil
}
