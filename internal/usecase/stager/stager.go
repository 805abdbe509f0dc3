package stager

import (
	"context"

	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/schema"
	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/stage"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/pkg/errors"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
)

// Usecase builds the timestamp index for one data source: every distinct
// traded_at in the source table, deduplicated and ordered, staged in bulk
// batches into a working table that is renamed into place once complete.
// The rename is what marks the index as valid; a crash mid-build leaves
// only the working table, and the next run starts the build over.
type Usecase struct {
	schemaRepository schema.SchemaRepository
	stageRepository  stage.StageRepository
	logger           logger.Interface
	batchSize        int
}

// NewUsecase creates a new stager usecase.
func NewUsecase(schemaRepository schema.SchemaRepository, stageRepository stage.StageRepository, logger logger.Interface, batchSize int) *Usecase {
	return &Usecase{
		schemaRepository: schemaRepository,
		stageRepository:  stageRepository,
		logger:           logger,
		batchSize:        batchSize,
	}
}

// BuildIndex builds names.Index from scratch. Any leftover working table
// from an interrupted build is discarded first.
func (u *Usecase) BuildIndex(ctx context.Context, source string, names naming.Names) error {
	if err := u.schemaRepository.DropTable(ctx, names.WorkingIndex); err != nil {
		return errors.TracerFromError(err)
	}
	if err := u.schemaRepository.CreateTimestampIndexTable(ctx, names.WorkingIndex); err != nil {
		return errors.TracerFromError(err)
	}

	for round := 0; ; round++ {
		moved, err := u.stageRepository.StageNextBatch(ctx, stage.BatchParams{
			SourceTable: names.Source,
			IndexTable:  names.WorkingIndex,
			DumpFile:    naming.DumpFile(source),
			Limit:       u.batchSize,
		})
		if err != nil {
			return errors.TracerFromError(err)
		}

		u.logger.Debug("staged timestamp batch",
			logger.NewField("source", source),
			logger.NewField("round", round),
			logger.NewField("timestamps", moved),
		)

		if moved == 0 {
			break
		}
	}

	if err := u.schemaRepository.RenameTable(ctx, names.WorkingIndex, names.Index); err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}
