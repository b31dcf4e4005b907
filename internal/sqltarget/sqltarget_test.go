package sqltarget

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), DialectSQLite, ":memory:")
	require.NoError(t, err)
	// one connection so every statement sees the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteTarget_CreateAndInsert(t *testing.T) {
	ctx := context.Background()
	db := memoryDB(t)
	target, err := New(db, DialectSQLite, "")
	require.NoError(t, err)

	cols := []Column{
		{Name: "id", Type: domain.ColumnTypeInt},
		{Name: "score", Type: domain.ColumnTypeFloat},
		{Name: "full_name", Type: domain.ColumnTypeString},
		{Name: "avatar", Type: domain.ColumnTypeBlob},
	}
	require.NoError(t, target.CreateTableIfNotExists(ctx, "people", cols))
	// second call is a no-op
	require.NoError(t, target.CreateTableIfNotExists(ctx, "people", cols))

	rows := [][]any{
		{1, 0.5, "Jane Doe", []byte{0x47, 0x49, 0x46}},
		{2, -1.25, "John Roe", []byte{0x3b}},
	}
	names := []string{"id", "score", "full_name", "avatar"}
	require.NoError(t, target.InsertBatch(ctx, "people", names, rows))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&count))
	assert.Equal(t, 2, count)

	var name string
	var score float64
	var avatar []byte
	require.NoError(t, db.QueryRow(`SELECT full_name, score, avatar FROM people WHERE id = 2`).Scan(&name, &score, &avatar))
	assert.Equal(t, "John Roe", name)
	assert.Equal(t, -1.25, score)
	assert.Equal(t, []byte{0x3b}, avatar)

	require.NoError(t, target.TruncateTable(ctx, "people"))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSQLiteTarget_RejectsShortRow(t *testing.T) {
	ctx := context.Background()
	db := memoryDB(t)
	target, err := New(db, DialectSQLite, "")
	require.NoError(t, err)

	require.NoError(t, target.CreateTableIfNotExists(ctx, "t", []Column{{Name: "a", Type: domain.ColumnTypeInt}, {Name: "b", Type: domain.ColumnTypeInt}}))
	err = target.InsertBatch(ctx, "t", []string{"a", "b"}, [][]any{{1}})
	assert.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM t`).Scan(&count))
	assert.Equal(t, 0, count, "failed batch must roll back")
}

func TestPostgresCreateTable(t *testing.T) {
	got := postgresCreateTable("public", "people", []Column{
		{Name: "id", Type: domain.ColumnTypeUUID},
		{Name: "born", Type: domain.ColumnTypeDate},
		{Name: "n", Type: domain.ColumnTypeInt},
		{Name: "x", Type: domain.ColumnTypeFloat},
		{Name: "img", Type: domain.ColumnTypeBlob},
		{Name: "s", Type: domain.ColumnTypeString},
	})
	want := `CREATE TABLE "public"."people" ("id" UUID NOT NULL, "born" DATE NOT NULL, "n" BIGINT NOT NULL, ` +
		`"x" DOUBLE PRECISION NOT NULL, "img" BYTEA NOT NULL, "s" TEXT NOT NULL)`
	assert.Equal(t, want, got)
}

func TestPostgresInsert_NumbersPlaceholders(t *testing.T) {
	sqlText, args, err := postgresInsert("public", "people", []string{"a", "b"}, [][]any{{1, "x"}, {2, "y"}})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "public"."people" ("a", "b") VALUES ($1, $2), ($3, $4)`, sqlText)
	assert.Equal(t, []any{1, "x", 2, "y"}, args)

	_, _, err = postgresInsert("public", "people", []string{"a", "b"}, [][]any{{1}})
	assert.Error(t, err)
}

func TestPostgresRowsPerStmt(t *testing.T) {
	n, err := postgresRowsPerStmt(2)
	require.NoError(t, err)
	assert.Equal(t, 32767, n)

	n, err = postgresRowsPerStmt(maxParams)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = postgresRowsPerStmt(maxParams + 1)
	assert.Error(t, err)
}

func TestPostgresInsertBatch_RejectsTooManyColumns(t *testing.T) {
	columns := make([]string, maxParams+1)
	row := make([]any, maxParams+1)
	for i := range columns {
		columns[i] = fmt.Sprintf("c%d", i)
	}

	target := &PostgresTarget{schema: "public"}
	err := target.InsertBatch(context.Background(), "wide", columns, [][]any{row})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many columns")
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("PostgreSQL")
	require.NoError(t, err)
	assert.Equal(t, DialectPostgres, d)

	d, err = ParseDialect("sqlite3")
	require.NoError(t, err)
	assert.Equal(t, DialectSQLite, d)

	_, err = ParseDialect("oracle")
	assert.Error(t, err)

	_, err = New(nil, Dialect("oracle"), "")
	assert.Error(t, err)
}
