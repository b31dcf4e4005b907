package columns

import (
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type UUIDGenerator struct{}

func (g *UUIDGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	count, err := countParam(spec, ctx)
	if err != nil {
		return nil, err
	}
	values, err := generators.UUIDs(rng, count)
	if err != nil {
		return nil, err
	}
	return generators.Column(values), nil
}

func (g *UUIDGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	_, err := countParam(spec, ctx)
	return err
}

func (g *UUIDGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeUUID
}
