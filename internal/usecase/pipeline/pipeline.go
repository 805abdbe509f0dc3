package pipeline

import (
	"context"

	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/schema"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/pkg/errors"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
)

// IndexBuilder builds the timestamp index for one source.
type IndexBuilder interface {
	BuildIndex(ctx context.Context, source string, names naming.Names) error
}

// IndexDrainer consumes the timestamp index into the staging table.
type IndexDrainer interface {
	Drain(ctx context.Context, names naming.Names) error
}

// Usecase sequences one source's aggregation run: build the timestamp
// index if it does not survive from a prior attempt, aggregate the index
// to exhaustion, publish the staging table under the target name, drop the
// index. Which phases run is decided purely from which tables exist, so a
// rerun after a crash resumes from durable state, and a published target
// short-circuits the whole run.
type Usecase struct {
	schemaRepository schema.SchemaRepository
	stager           IndexBuilder
	aggregator       IndexDrainer
	logger           logger.Interface
}

// NewUsecase creates a new pipeline usecase.
func NewUsecase(schemaRepository schema.SchemaRepository, stager IndexBuilder, aggregator IndexDrainer, logger logger.Interface) *Usecase {
	return &Usecase{
		schemaRepository: schemaRepository,
		stager:           stager,
		aggregator:       aggregator,
		logger:           logger,
	}
}

// Run aggregates one data source to completion. It is idempotent: running
// it again after success is a no-op, and running it after any failure
// resumes without double-counting or losing timestamps.
func (u *Usecase) Run(ctx context.Context, source string) error {
	names, err := naming.ForSource(source)
	if err != nil {
		return err
	}

	log := u.logger.WithFields(logger.NewField("source", source))
	log.Info("starting aggregation",
		logger.NewField("original", names.Source),
		logger.NewField("target", names.Target),
	)

	targetExists, err := u.schemaRepository.TableExists(ctx, names.Target)
	if err != nil {
		return errors.NewPipelineError(errors.StoreStatementError, err)
	}
	if targetExists {
		log.Info("target already published, nothing to do")
		return nil
	}

	indexExists, err := u.schemaRepository.TableExists(ctx, names.Index)
	if err != nil {
		return errors.NewPipelineError(errors.StoreStatementError, err)
	}
	if !indexExists {
		// Without a surviving index, a leftover staging table belongs to an
		// abandoned run and would collide with the rebuilt index's batches.
		if err := u.schemaRepository.DropTable(ctx, names.Staging); err != nil {
			return errors.NewPipelineError(errors.StoreStatementError, err)
		}
		if err := u.stager.BuildIndex(ctx, source, names); err != nil {
			return errors.NewPipelineError(errors.StageBuildError, err)
		}
		log.Info("timestamp index built", logger.NewField("index", names.Index))
	} else {
		log.Info("resuming with surviving timestamp index", logger.NewField("index", names.Index))
	}

	// A surviving staging table holds exactly the committed aggregates of
	// index entries already consumed, so it is kept, not rebuilt.
	stagingExists, err := u.schemaRepository.TableExists(ctx, names.Staging)
	if err != nil {
		return errors.NewPipelineError(errors.StoreStatementError, err)
	}
	if !stagingExists {
		if err := u.schemaRepository.CreateAggregateTable(ctx, names.Staging); err != nil {
			return errors.NewPipelineError(errors.StoreStatementError, err)
		}
	}

	if err := u.aggregator.Drain(ctx, names); err != nil {
		return errors.NewPipelineError(errors.AggregateBatchError, err)
	}

	if err := u.schemaRepository.RenameTable(ctx, names.Staging, names.Target); err != nil {
		return errors.NewPipelineError(errors.PublishError, err)
	}
	if err := u.schemaRepository.DropTable(ctx, names.Index); err != nil {
		return errors.NewPipelineError(errors.PublishError, err)
	}

	log.Info("aggregation finished", logger.NewField("target", names.Target))
	return nil
}
