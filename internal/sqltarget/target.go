// Package sqltarget writes generated columns into SQL tables.
package sqltarget

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Column is one destination column and the storage type of its values.
type Column struct {
	Name string
	Type domain.ColumnType
}

type Target interface {
	CreateTableIfNotExists(ctx context.Context, table string, columns []Column) error
	TruncateTable(ctx context.Context, table string) error
	InsertBatch(ctx context.Context, table string, columns []string, rows [][]any) error
}

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported dialect: %s", s)
	}
}

func (d Dialect) driverName() string {
	if d == DialectSQLite {
		return "sqlite3"
	}
	return string(d)
}

// Open connects to dsn with the driver for d and pings it.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s %s: %w", d, RedactDSN(dsn), err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s %s: %w", d, RedactDSN(dsn), err)
	}
	return db, nil
}

// New wraps an open database. schema is only used by postgres and defaults to public.
func New(db *sql.DB, d Dialect, schema string) (Target, error) {
	switch d {
	case DialectSQLite:
		return &SQLiteTarget{db: db}, nil
	case DialectPostgres:
		if schema == "" {
			schema = "public"
		}
		return &PostgresTarget{db: db, schema: schema}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", d)
	}
}

func quoteIdent(name string) string {
	return pq.QuoteIdentifier(name)
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = quoteIdent(n)
	}
	return out
}
