package dataset

import (
	"github.com/mmrzaf/mockdata/collate"
	"github.com/mmrzaf/mockdata/internal/domain"
)

// Dataset is the output of one build: named columns in plan order.
type Dataset struct {
	ID          string
	Name        string
	Seed        int64
	Count       int
	Fingerprint string

	columns []string
	types   map[string]domain.ColumnType
	values  map[string][]any
}

// Columns returns the column names in plan order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

func (d *Dataset) Column(name string) ([]any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Values returns every column in plan order.
func (d *Dataset) Values() [][]any {
	out := make([][]any, len(d.columns))
	for i, name := range d.columns {
		out[i] = d.values[name]
	}
	return out
}

// Rows zips the columns into rows. Columns of different lengths give ragged
// rows: row i holds the i-th value of every column that has one.
func (d *Dataset) Rows() [][]any {
	return collate.Collate(d.Values()...)
}

// Ragged reports whether the columns differ in length.
func (d *Dataset) Ragged() bool {
	for i := 1; i < len(d.columns); i++ {
		if len(d.values[d.columns[i]]) != len(d.values[d.columns[0]]) {
			return true
		}
	}
	return false
}
