//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishanjee7/finhealth/internal/infrastructure/benchmark"
	"github.com/Kishanjee7/finhealth/internal/infrastructure/postgres"
	pkgpostgres "github.com/Kishanjee7/finhealth/pkg/postgres"
	"github.com/Kishanjee7/finhealth/pkg/testutil"
)

func TestBenchmarkRepository_MatchesEmbeddedTable(t *testing.T) {
	ctx := context.Background()

	pg := testutil.NewPostgresContainer(ctx, t)
	pg.Migrate(t, postgres.Migrations, postgres.MigrationsDir)
	require.NoError(t, pkgpostgres.HealthCheck(ctx, pg.Pool))

	table, err := postgres.NewBenchmarkRepository(pg.Pool).Load(ctx)
	require.NoError(t, err)

	embedded, err := benchmark.EmbeddedSource{}.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, embedded.Industries(), table.Industries())
	assert.Equal(t, embedded.DefaultIndustry(), table.DefaultIndustry())
	assert.ElementsMatch(t, embedded.Entries(), table.Entries())
}

func TestMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()

	pg := testutil.NewPostgresContainer(ctx, t)
	pg.Migrate(t, postgres.Migrations, postgres.MigrationsDir)
	pg.Migrate(t, postgres.Migrations, postgres.MigrationsDir)

	var count int
	require.NoError(t, pg.Pool.QueryRow(ctx, "SELECT count(*) FROM industries WHERE is_default").Scan(&count))
	assert.Equal(t, 1, count)
}
