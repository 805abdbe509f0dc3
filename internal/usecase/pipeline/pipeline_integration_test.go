package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/aggregate"
	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/schema"
	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/stage"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/internal/usecase/aggregator"
	"github.com/esplo/pikmin-aggregator/internal/usecase/pipeline"
	"github.com/esplo/pikmin-aggregator/internal/usecase/stager"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

type pipelineFixture struct {
	client        postgres.StoreClient
	schemaRepo    *schema.Repository
	aggregateRepo *aggregate.Repository
	usecase       *pipeline.Usecase
}

func newPipelineFixture(t *testing.T, batchSize int) *pipelineFixture {
	helper := postgres.NewTestHelper(t)
	client := helper.Client()

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	schemaRepo := schema.NewRepository(client)
	stageRepo := stage.NewRepository(client)
	aggregateRepo := aggregate.NewRepository(client)

	stagerUsecase := stager.NewUsecase(schemaRepo, stageRepo, log, batchSize)
	aggregatorUsecase := aggregator.NewUsecase(client, aggregateRepo, log, batchSize)

	return &pipelineFixture{
		client:        client,
		schemaRepo:    schemaRepo,
		aggregateRepo: aggregateRepo,
		usecase:       pipeline.NewUsecase(schemaRepo, stagerUsecase, aggregatorUsecase, log),
	}
}

func (f *pipelineFixture) seedTrades(t *testing.T, ctx context.Context, names naming.Names) {
	require.NoError(t, f.schemaRepo.CreateSourceTable(ctx, names.Source))

	insert := `INSERT INTO ` + names.Source + ` (traded_at, amount, price) VALUES ($1, $2, $3)`
	rows := []struct {
		tradedAt string
		amount   float64
		price    float64
	}{
		{"2021-01-01 00:00:00.000", 1.0, 100.0},
		{"2021-01-01 00:00:00.000", 2.0, 102.0},
		{"2021-01-01 00:00:00.500", 5.0, 50.0},
	}
	for _, row := range rows {
		ts, err := time.Parse("2006-01-02 15:04:05.000", row.tradedAt)
		require.NoError(t, err)
		_, err = f.client.Exec(ctx, insert, ts, row.amount, row.price)
		require.NoError(t, err)
	}
}

func (f *pipelineFixture) assertPublished(t *testing.T, ctx context.Context, names naming.Names) {
	trades, err := f.aggregateRepo.List(ctx, names.Target)
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), trades[0].TradedAt.UTC())
	assert.True(t, trades[0].Amount.Equal(decimal.NewFromInt(3)), "amount %s", trades[0].Amount)
	assert.True(t, trades[0].Price.Equal(decimal.NewFromInt(101)), "price %s", trades[0].Price)

	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 500e6, time.UTC), trades[1].TradedAt.UTC())
	assert.True(t, trades[1].Amount.Equal(decimal.NewFromInt(5)), "amount %s", trades[1].Amount)
	assert.True(t, trades[1].Price.Equal(decimal.NewFromInt(50)), "price %s", trades[1].Price)

	// No working tables survive a completed run.
	for _, table := range []string{names.Index, names.WorkingIndex, names.Staging} {
		exists, err := f.schemaRepo.TableExists(ctx, table)
		require.NoError(t, err)
		assert.False(t, exists, "table %s should be gone", table)
	}
}

func TestPipelineIntegration_Run(t *testing.T) {
	ctx := context.Background()
	fixture := newPipelineFixture(t, 100000)

	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	fixture.seedTrades(t, ctx, names)

	require.NoError(t, fixture.usecase.Run(ctx, "bffx"))
	fixture.assertPublished(t, ctx, names)

	// A second run sees the published target and changes nothing.
	require.NoError(t, fixture.usecase.Run(ctx, "bffx"))
	fixture.assertPublished(t, ctx, names)
}

func TestPipelineIntegration_RunSingleRowBatches(t *testing.T) {
	ctx := context.Background()
	fixture := newPipelineFixture(t, 1)

	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	fixture.seedTrades(t, ctx, names)

	require.NoError(t, fixture.usecase.Run(ctx, "bffx"))
	fixture.assertPublished(t, ctx, names)
}

func TestPipelineIntegration_ResumesAfterPartialAggregation(t *testing.T) {
	ctx := context.Background()
	fixture := newPipelineFixture(t, 1)

	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	fixture.seedTrades(t, ctx, names)

	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)

	// Simulate a run interrupted after the index was published and one
	// aggregation batch committed.
	stagerUsecase := stager.NewUsecase(fixture.schemaRepo, stage.NewRepository(fixture.client), log, 1)
	require.NoError(t, stagerUsecase.BuildIndex(ctx, "bffx", names))
	require.NoError(t, fixture.schemaRepo.CreateAggregateTable(ctx, names.Staging))

	txCtx, err := postgres.Begin(ctx, fixture.client)
	require.NoError(t, err)
	moved, err := fixture.aggregateRepo.MoveBatch(txCtx, aggregate.BatchParams{
		SourceTable:  names.Source,
		IndexTable:   names.Index,
		StagingTable: names.Staging,
		Limit:        1,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, moved)
	require.NoError(t, postgres.Commit(txCtx))

	// The rerun must pick up the surviving index and staging table and
	// finish without double-counting the committed batch.
	require.NoError(t, fixture.usecase.Run(ctx, "bffx"))
	fixture.assertPublished(t, ctx, names)
}

func TestPipelineIntegration_RebuildPurgesAbandonedStaging(t *testing.T) {
	ctx := context.Background()
	fixture := newPipelineFixture(t, 100000)

	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	fixture.seedTrades(t, ctx, names)

	// A staging table without a surviving index belongs to an abandoned
	// run; seed it with a poison row that must not reach the target.
	require.NoError(t, fixture.schemaRepo.CreateAggregateTable(ctx, names.Staging))
	_, err = fixture.client.Exec(ctx,
		`INSERT INTO `+names.Staging+` (traded_at, amount, price) VALUES ($1, $2, $3)`,
		time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC), 999.0, 999.0)
	require.NoError(t, err)

	require.NoError(t, fixture.usecase.Run(ctx, "bffx"))
	fixture.assertPublished(t, ctx, names)
}
