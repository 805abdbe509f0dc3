package bootstrap

import (
	aggregatorUc "github.com/esplo/pikmin-aggregator/internal/usecase/aggregator"
	pipelineUc "github.com/esplo/pikmin-aggregator/internal/usecase/pipeline"
	stagerUc "github.com/esplo/pikmin-aggregator/internal/usecase/stager"
)

// Usecase holds the pipeline's usecases.
type Usecase struct {
	StagerUsecase     *stagerUc.Usecase
	AggregatorUsecase *aggregatorUc.Usecase
	PipelineUsecase   *pipelineUc.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.StagerUsecase = stagerUc.NewUsecase(
		b.Repository.SchemaRepository,
		b.Repository.StageRepository,
		b.Logger,
		b.Pipeline.StageBatchSize,
	)
	b.Usecase.AggregatorUsecase = aggregatorUc.NewUsecase(
		b.Postgres,
		b.Repository.AggregateRepository,
		b.Logger,
		b.Pipeline.AggregateBatchSize,
	)
	b.Usecase.PipelineUsecase = pipelineUc.NewUsecase(
		b.Repository.SchemaRepository,
		b.Usecase.StagerUsecase,
		b.Usecase.AggregatorUsecase,
		b.Logger,
	)
}
