package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

// --- Fakes ---

type benchmarkRow struct {
	industry, category, metric string
	value                      float64
}

type fakeRows struct {
	pgx.Rows
	rows []benchmarkRow
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	*dest[0].(*string) = row.industry
	*dest[1].(*string) = row.category
	*dest[2].(*string) = row.metric
	*dest[3].(*float64) = row.value
	return nil
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return r.err }

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

type fakeTx struct {
	pgx.Tx
	defaultRow fakeRow
	rows       *fakeRows
	queryErr   error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return tx.defaultRow
}

func (tx *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if tx.queryErr != nil {
		return nil, tx.queryErr
	}
	return tx.rows, nil
}

func (tx *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	tx   *fakeTx
	opts pgx.TxOptions
}

func (db *fakeDB) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	db.opts = opts
	return db.tx, nil
}

// --- Tests ---

func TestNewBenchmarkRepository(t *testing.T) {
	t.Run("creates repository with nil pool", func(t *testing.T) {
		repo := NewBenchmarkRepository(nil)
		assert.NotNil(t, repo)
		assert.Nil(t, repo.db)
	})
}

func TestBenchmarkRepository_Load(t *testing.T) {
	rows := []benchmarkRow{
		{"retail", "liquidity", "current_ratio", 1.2},
		{"services", "liquidity", "current_ratio", 1.5},
		{"services", "solvency", "debt_to_equity", 0.5},
	}

	t.Run("builds the table in a read-only transaction", func(t *testing.T) {
		db := &fakeDB{tx: &fakeTx{defaultRow: fakeRow{value: "services"}, rows: &fakeRows{rows: rows}}}

		table, err := NewBenchmarkRepository(db).Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, pgx.ReadOnly, db.opts.AccessMode)
		assert.True(t, db.tx.committed)
		assert.Equal(t, "services", table.DefaultIndustry())
		assert.Equal(t, []string{"retail", "services"}, table.Industries())
		v, ok := table.Lookup("services", valueobject.CategorySolvency, "debt_to_equity")
		require.True(t, ok)
		assert.Equal(t, 0.5, v)
	})

	t.Run("missing default row falls back to services", func(t *testing.T) {
		db := &fakeDB{tx: &fakeTx{defaultRow: fakeRow{err: pgx.ErrNoRows}, rows: &fakeRows{rows: rows}}}

		table, err := NewBenchmarkRepository(db).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "services", table.DefaultIndustry())
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		bad := []benchmarkRow{{"services", "growth", "revenue_growth", 0.1}}
		db := &fakeDB{tx: &fakeTx{defaultRow: fakeRow{value: "services"}, rows: &fakeRows{rows: bad}}}

		_, err := NewBenchmarkRepository(db).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid metric category")
		assert.True(t, db.tx.rolledBack)
	})

	t.Run("query failure rolls back", func(t *testing.T) {
		boom := errors.New("relation does not exist")
		db := &fakeDB{tx: &fakeTx{defaultRow: fakeRow{value: "services"}, queryErr: boom}}

		_, err := NewBenchmarkRepository(db).Load(context.Background())
		require.ErrorIs(t, err, boom)
		assert.True(t, db.tx.rolledBack)
		assert.False(t, db.tx.committed)
	})

	t.Run("empty table is invalid", func(t *testing.T) {
		db := &fakeDB{tx: &fakeTx{defaultRow: fakeRow{value: "services"}, rows: &fakeRows{}}}

		_, err := NewBenchmarkRepository(db).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid benchmark rows")
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := Migrations.ReadDir(MigrationsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}
