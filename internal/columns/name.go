package columns

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type NameGenerator struct{}

func (g *NameGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	opts, err := g.options(spec, ctx)
	if err != nil {
		return nil, err
	}
	provider := ctx.Names
	if provider == nil {
		provider = generators.FakerNames{}
	}
	values, err := generators.Names(provider, opts)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *NameGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	_, err := g.options(spec, ctx)
	return err
}

func (g *NameGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeString
}

func (g *NameGenerator) options(spec domain.ColumnSpec, ctx GeneratorContext) (generators.NameOptions, error) {
	opts := generators.DefaultNameOptions()
	if ctx.Country != "" {
		opts.Country = ctx.Country
	}

	var err error
	if opts.Count, err = countParam(spec, ctx); err != nil {
		return opts, err
	}
	if opts.Country, err = stringParam(spec, "country", opts.Country); err != nil {
		return opts, err
	}
	sex, err := stringParam(spec, "sex", "both")
	if err != nil {
		return opts, err
	}
	if opts.Sex, err = generators.ParseSex(sex); err != nil {
		return opts, err
	}
	if opts.Parts, err = partsParam(spec, opts.Parts); err != nil {
		return opts, err
	}
	return opts, nil
}

// partsParam accepts 1/2/3 or last/first_last/full.
func partsParam(spec domain.ColumnSpec, def generators.NameParts) (generators.NameParts, error) {
	v, ok := spec.Param("parts")
	if !ok {
		return def, nil
	}
	if s, isString := v.(string); isString {
		switch strings.ToLower(s) {
		case "last":
			return generators.LastName, nil
		case "first_last":
			return generators.FirstLast, nil
		case "full":
			return generators.FullName, nil
		}
	}
	n, err := intParam(spec, "parts", int(def))
	if err != nil {
		return 0, err
	}
	if n < int(generators.LastName) || n > int(generators.FullName) {
		return 0, errors.New("'parts' must be 1, 2, 3, last, first_last or full")
	}
	return generators.NameParts(n), nil
}
