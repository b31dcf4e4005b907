package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmrzaf/mockdata/collate"
	"github.com/mmrzaf/mockdata/internal/config"
	"github.com/mmrzaf/mockdata/internal/sqltarget"
	"github.com/mmrzaf/mockdata/internal/validation"
)

type seedOptions struct {
	batchSize int
	truncate  bool
	schema    string
}

type SeedOption func(*seedOptions)

// WithBatchSize sets how many rows go into one insert batch. The default
// comes from MOCKDATA_BATCH_SIZE.
func WithBatchSize(n int) SeedOption {
	return func(o *seedOptions) { o.batchSize = n }
}

// WithTruncate empties the table before inserting.
func WithTruncate() SeedOption {
	return func(o *seedOptions) { o.truncate = true }
}

// WithSchema selects the postgres schema; sqlite ignores it.
func WithSchema(schema string) SeedOption {
	return func(o *seedOptions) { o.schema = schema }
}

// Open connects to a sqlite or postgres database.
func Open(ctx context.Context, dialect, dsn string) (*sql.DB, error) {
	d, err := sqltarget.ParseDialect(dialect)
	if err != nil {
		return nil, err
	}
	return sqltarget.Open(ctx, d, dsn)
}

// Seed creates table if missing and inserts every row of ds. All columns must
// have the same length. It returns the number of rows written.
func Seed(ctx context.Context, db *sql.DB, dialect, table string, ds *Dataset, opts ...SeedOption) (int, error) {
	o := seedOptions{batchSize: config.Load().BatchSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batchSize < 1 {
		return 0, fmt.Errorf("batch size must be >= 1, got %d", o.batchSize)
	}
	if !validation.IsValidIdentifier(table) {
		return 0, fmt.Errorf("invalid table identifier: %s", table)
	}
	if o.schema != "" && !validation.IsValidIdentifier(o.schema) {
		return 0, fmt.Errorf("invalid schema identifier: %s", o.schema)
	}

	d, err := sqltarget.ParseDialect(dialect)
	if err != nil {
		return 0, err
	}
	target, err := sqltarget.New(db, d, o.schema)
	if err != nil {
		return 0, err
	}

	rows, err := collate.Strict(ds.Values()...)
	if err != nil {
		return 0, fmt.Errorf("dataset '%s': %w", ds.Name, err)
	}

	names := ds.Columns()
	cols := make([]sqltarget.Column, len(names))
	for i, name := range names {
		cols[i] = sqltarget.Column{Name: name, Type: ds.types[name]}
	}

	if err := target.CreateTableIfNotExists(ctx, table, cols); err != nil {
		return 0, fmt.Errorf("failed to create table '%s': %w", table, err)
	}
	if o.truncate {
		if err := target.TruncateTable(ctx, table); err != nil {
			return 0, fmt.Errorf("failed to truncate table '%s': %w", table, err)
		}
	}

	written := 0
	for start := 0; start < len(rows); start += o.batchSize {
		end := start + o.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := target.InsertBatch(ctx, table, names, rows[start:end]); err != nil {
			return written, fmt.Errorf("failed to insert batch for table '%s': %w", table, err)
		}
		written += end - start
	}
	return written, nil
}
