package sqltarget

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mmrzaf/mockdata/internal/domain"
)

// maxParams is the bind parameter limit of the postgres wire protocol.
const maxParams = 65535

type PostgresTarget struct {
	db     *sql.DB
	schema string
}

func (t *PostgresTarget) CreateTableIfNotExists(ctx context.Context, table string, columns []Column) error {
	var exists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	)`
	if err := t.db.QueryRowContext(ctx, query, t.schema, table).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err := t.db.ExecContext(ctx, postgresCreateTable(t.schema, table, columns))
	return err
}

func postgresCreateTable(schema, table string, columns []Column) string {
	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		columnDefs[i] = fmt.Sprintf("%s %s NOT NULL", quoteIdent(col.Name), postgresColumnType(col.Type))
	}
	return fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		quoteIdent(schema), quoteIdent(table), strings.Join(columnDefs, ", "))
}

func postgresColumnType(colType domain.ColumnType) string {
	switch colType {
	case domain.ColumnTypeInt:
		return "BIGINT"
	case domain.ColumnTypeFloat:
		return "DOUBLE PRECISION"
	case domain.ColumnTypeDate:
		return "DATE"
	case domain.ColumnTypeBlob:
		return "BYTEA"
	case domain.ColumnTypeUUID:
		return "UUID"
	default:
		return "TEXT"
	}
}

func (t *PostgresTarget) TruncateTable(ctx context.Context, table string) error {
	_, err := t.db.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s.%s", quoteIdent(t.schema), quoteIdent(table)))
	return err
}

// InsertBatch sends multi-row INSERTs, split so no statement exceeds maxParams.
// A batch that needs more than one statement runs in a single transaction.
func (t *PostgresTarget) InsertBatch(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 || len(columns) == 0 {
		return nil
	}

	perStmt, err := postgresRowsPerStmt(len(columns))
	if err != nil {
		return err
	}
	if len(rows) <= perStmt {
		insertSQL, args, err := postgresInsert(t.schema, table, columns, rows)
		if err != nil {
			return err
		}
		_, err = t.db.ExecContext(ctx, insertSQL, args...)
		return err
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for start := 0; start < len(rows); start += perStmt {
		end := start + perStmt
		if end > len(rows) {
			end = len(rows)
		}
		insertSQL, args, err := postgresInsert(t.schema, table, columns, rows[start:end])
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func postgresRowsPerStmt(columns int) (int, error) {
	if columns > maxParams {
		return 0, fmt.Errorf("too many columns: %d exceeds the %d parameter limit", columns, maxParams)
	}
	return maxParams / columns, nil
}

func postgresInsert(schema, table string, columns []string, rows [][]any) (string, []any, error) {
	placeholders := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(columns))

	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(columns))
		}
		rowPlaceholders := make([]string, len(columns))
		for j := range columns {
			rowPlaceholders[j] = fmt.Sprintf("$%d", i*len(columns)+j+1)
			args = append(args, row[j])
		}
		placeholders[i] = "(" + strings.Join(rowPlaceholders, ", ") + ")"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		quoteIdent(schema), quoteIdent(table), strings.Join(quoteAll(columns), ", "), strings.Join(placeholders, ", "))
	return insertSQL, args, nil
}
