// Package collate transposes column-oriented data into rows.
package collate

import (
	"errors"
	"fmt"
)

var ErrRaggedColumns = errors.New("columns have different lengths")

// Collate appends value i of every column to row i, in column order. Rows
// grow lazily, so columns of different lengths produce ragged rows: with
// [[1 2 3] [a]] the rows are [1 a], [2], [3].
func Collate[T any](columns ...[]T) [][]T {
	var rows [][]T
	for _, col := range columns {
		for i, v := range col {
			if i == len(rows) {
				rows = append(rows, make([]T, 0, len(columns)))
			}
			rows[i] = append(rows[i], v)
		}
	}
	return rows
}

// Strict is Collate for columns that must all have the same length.
func Strict[T any](columns ...[]T) ([][]T, error) {
	for i := 1; i < len(columns); i++ {
		if len(columns[i]) != len(columns[0]) {
			return nil, fmt.Errorf("%w: column 0 has %d values, column %d has %d",
				ErrRaggedColumns, len(columns[0]), i, len(columns[i]))
		}
	}
	return Collate(columns...), nil
}
