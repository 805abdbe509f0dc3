package aggregator

import (
	"context"

	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/aggregate"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/pkg/errors"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// Usecase drains the timestamp index into the staging table in bounded
// transactional batches. One batch inserts the aggregates for up to
// batchSize timestamps and deletes those timestamps from the index inside
// a single transaction, so a crash at any point either loses nothing
// (rolled back, index intact) or a full batch is committed consistently.
// Batches run strictly one at a time; the index is both read and mutated,
// and overlapping batches could double-count or skip timestamps.
type Usecase struct {
	client              postgres.StoreClient
	aggregateRepository aggregate.AggregateRepository
	logger              logger.Interface
	batchSize           int
}

// NewUsecase creates a new aggregator usecase.
func NewUsecase(client postgres.StoreClient, aggregateRepository aggregate.AggregateRepository, logger logger.Interface, batchSize int) *Usecase {
	return &Usecase{
		client:              client,
		aggregateRepository: aggregateRepository,
		logger:              logger,
		batchSize:           batchSize,
	}
}

// Drain runs batches until one reports zero inserted rows, which means the
// index is exhausted.
func (u *Usecase) Drain(ctx context.Context, names naming.Names) error {
	for round := 0; ; round++ {
		moved, err := u.runBatch(ctx, names)
		if err != nil {
			return err
		}

		if moved == 0 {
			return nil
		}

		u.logger.Debug("aggregated batch",
			logger.NewField("staging", names.Staging),
			logger.NewField("round", round),
			logger.NewField("timestamps", moved),
		)
	}
}

func (u *Usecase) runBatch(ctx context.Context, names naming.Names) (int64, error) {
	txCtx, err := postgres.Begin(ctx, u.client)
	if err != nil {
		return 0, errors.TracerFromError(err)
	}

	moved, err := u.aggregateRepository.MoveBatch(txCtx, aggregate.BatchParams{
		SourceTable:  names.Source,
		IndexTable:   names.Index,
		StagingTable: names.Staging,
		Limit:        u.batchSize,
	})
	if err != nil {
		if rbErr := postgres.Rollback(txCtx); rbErr != nil {
			u.logger.Warn("rollback failed", logger.NewField("error", rbErr.Error()))
		}
		return 0, errors.TracerFromError(err)
	}

	if err := postgres.Commit(txCtx); err != nil {
		return 0, errors.TracerFromError(err)
	}

	return moved, nil
}
