package dataset

import (
	"path/filepath"

	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/mmrzaf/mockdata/internal/infra/repos/plans"
)

type (
	Plan       = domain.Plan
	ColumnSpec = domain.ColumnSpec
)

const (
	FormatYAML = plans.FormatYAML
	FormatJSON = plans.FormatJSON
)

// ParsePlan decodes a YAML or JSON plan document. An empty format means YAML.
func ParsePlan(data []byte, format string) (*Plan, error) {
	return plans.Decode(data, format)
}

// LoadPlan reads a plan file; the format follows the file extension.
func LoadPlan(path string) (*Plan, error) {
	repo := plans.NewFileRepository(filepath.Dir(path))
	return repo.GetByPath(filepath.Base(path))
}

// LoadPlans reads every plan file in dir.
func LoadPlans(dir string) ([]*Plan, error) {
	return plans.NewFileRepository(dir).List()
}
