package sqltarget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/mockdata/internal/domain"
)

type SQLiteTarget struct {
	db *sql.DB
}

func (t *SQLiteTarget) CreateTableIfNotExists(ctx context.Context, table string, columns []Column) error {
	query := `SELECT name FROM sqlite_master WHERE type='table' AND name=?`
	var name string
	err := t.db.QueryRowContext(ctx, query, table).Scan(&name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = t.db.ExecContext(ctx, sqliteCreateTable(table, columns))
	return err
}

func sqliteCreateTable(table string, columns []Column) string {
	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		columnDefs[i] = fmt.Sprintf("%s %s NOT NULL", quoteIdent(col.Name), sqliteColumnType(col.Type))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(columnDefs, ", "))
}

func sqliteColumnType(colType domain.ColumnType) string {
	switch colType {
	case domain.ColumnTypeInt:
		return "INTEGER"
	case domain.ColumnTypeFloat:
		return "REAL"
	case domain.ColumnTypeBlob:
		return "BLOB"
	default:
		return "TEXT"
	}
}

func (t *SQLiteTarget) TruncateTable(ctx context.Context, table string) error {
	_, err := t.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", quoteIdent(table)))
	return err
}

// InsertBatch inserts rows through one prepared statement in a transaction.
func (t *SQLiteTarget) InsertBatch(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "?"
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoteAll(columns), ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row has %d values, expected %d", len(row), len(columns))
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return err
		}
	}

	return tx.Commit()
}
