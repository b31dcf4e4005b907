package columns

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mmrzaf/mockdata/generators"
	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/spf13/cast"
)

// EmailGenerator derives addresses from the names in another column.
type EmailGenerator struct{}

func (g *EmailGenerator) Generate(rng *rand.Rand, spec domain.ColumnSpec, ctx GeneratorContext) ([]any, error) {
	from, ok := DependsOn(spec)
	if !ok {
		return nil, errors.New("email requires 'from' param")
	}
	values, ok := ctx.ColumnValues[from]
	if !ok {
		return nil, fmt.Errorf("no values found for source column: %s", from)
	}

	names := make([]string, len(values))
	for i, v := range values {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("source column %s, value %d: %w", from, i, err)
		}
		names[i] = s
	}

	emails, err := generators.Emails(rng, names)
	if err != nil {
		return nil, err
	}
	return generators.Column(emails), nil
}

func (g *EmailGenerator) Validate(spec domain.ColumnSpec, ctx GeneratorContext) error {
	if _, ok := DependsOn(spec); !ok {
		return errors.New("email requires 'from' param naming a source column")
	}
	return nil
}

func (g *EmailGenerator) ColumnType(spec domain.ColumnSpec) domain.ColumnType {
	return domain.ColumnTypeString
}
