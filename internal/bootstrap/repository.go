package bootstrap

import (
	aggregateInfra "github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/aggregate"
	schemaInfra "github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/schema"
	stageInfra "github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/stage"
)

// Repository holds the pipeline's repositories.
type Repository struct {
	SchemaRepository    schemaInfra.SchemaRepository
	StageRepository     stageInfra.StageRepository
	AggregateRepository aggregateInfra.AggregateRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.SchemaRepository = schemaInfra.NewRepository(b.Postgres)
	b.Repository.StageRepository = stageInfra.NewRepository(b.Postgres)
	b.Repository.AggregateRepository = aggregateInfra.NewRepository(b.Postgres)
}
