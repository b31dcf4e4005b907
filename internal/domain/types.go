package domain

// Plan describes a dataset: one generated column per entry, all drawn from
// one seed.
type Plan struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Seed        *int64       `json:"seed,omitempty" yaml:"seed,omitempty"`
	Count       *int         `json:"count,omitempty" yaml:"count,omitempty"`
	Columns     []ColumnSpec `json:"columns" yaml:"columns"`
}

type ColumnSpec struct {
	Name   string                 `json:"name" yaml:"name"`
	Kind   string                 `json:"kind" yaml:"kind"`
	Params map[string]interface{} `json:"params,omitempty" yaml:"params,omitempty"`
}

const (
	KindDate         = "date"
	KindTime         = "time"
	KindNumber       = "number"
	KindName         = "name"
	KindEmail        = "email"
	KindShuffle      = "shuffle"
	KindString       = "string"
	KindImage        = "image"
	KindDistribution = "distribution"
	KindUUID         = "uuid"
)

// ColumnType is the storage type of a generated column.
type ColumnType string

const (
	ColumnTypeInt    ColumnType = "int"
	ColumnTypeFloat  ColumnType = "float"
	ColumnTypeString ColumnType = "string"
	ColumnTypeDate   ColumnType = "date"
	ColumnTypeBlob   ColumnType = "blob"
	ColumnTypeUUID   ColumnType = "uuid"
)

// Param returns a column parameter and whether it was set.
func (c ColumnSpec) Param(key string) (interface{}, bool) {
	if c.Params == nil {
		return nil, false
	}
	v, ok := c.Params[key]
	return v, ok
}
