package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Kishanjee7/finhealth/internal/domain/model"
	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
	pgpkg "github.com/Kishanjee7/finhealth/pkg/postgres"
)

const (
	selectDefaultIndustry = `SELECT code FROM industries WHERE is_default`

	selectBenchmarks = `
		SELECT industry, category, metric, value
		FROM industry_benchmarks
		ORDER BY industry, metric
	`
)

// BenchmarkRepository implements port.BenchmarkSource using PostgreSQL. The
// table is read once at startup inside a read-only transaction.
type BenchmarkRepository struct {
	db pgpkg.TxBeginner
}

// NewBenchmarkRepository creates a new PostgreSQL-backed benchmark source.
func NewBenchmarkRepository(db pgpkg.TxBeginner) *BenchmarkRepository {
	return &BenchmarkRepository{db: db}
}

// Load reads every benchmark row and builds the table.
func (r *BenchmarkRepository) Load(ctx context.Context) (model.BenchmarkTable, error) {
	var (
		defaultIndustry string
		entries         []model.BenchmarkEntry
	)

	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgpkg.WithTransaction(ctx, r.db, opts, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, selectDefaultIndustry).Scan(&defaultIndustry)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			defaultIndustry = model.DefaultIndustry
		case err != nil:
			return fmt.Errorf("failed to query default industry: %w", err)
		}

		entries, err = scanBenchmarks(ctx, tx)
		return err
	})
	if err != nil {
		return model.BenchmarkTable{}, err
	}

	table, err := model.NewBenchmarkTable(defaultIndustry, entries)
	if err != nil {
		return model.BenchmarkTable{}, fmt.Errorf("invalid benchmark rows: %w", err)
	}
	return table, nil
}

func scanBenchmarks(ctx context.Context, q pgpkg.Querier) ([]model.BenchmarkEntry, error) {
	rows, err := q.Query(ctx, selectBenchmarks)
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmarks: %w", err)
	}
	defer rows.Close()

	var entries []model.BenchmarkEntry
	for rows.Next() {
		var (
			industry, categoryStr, metric string
			value                         float64
		)
		if err := rows.Scan(&industry, &categoryStr, &metric, &value); err != nil {
			return nil, fmt.Errorf("failed to scan benchmark row: %w", err)
		}
		category, err := valueobject.CategoryFromString(categoryStr)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s/%s: %w", industry, metric, err)
		}
		entries = append(entries, model.BenchmarkEntry{
			Industry: industry,
			Category: category,
			Metric:   metric,
			Value:    value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benchmark rows: %w", err)
	}
	return entries, nil
}
