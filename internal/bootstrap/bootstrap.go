package bootstrap

import (
	"github.com/esplo/pikmin-aggregator/pkg/config"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// Bootstrap wires the store client into repositories and usecases.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	Repository Repository

	Postgres postgres.StoreClient
	Pipeline config.PipelineConfig
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Postgres postgres.StoreClient
	Logger   logger.Interface
	Pipeline config.PipelineConfig
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Postgres = config.Postgres
	b.Logger = config.Logger
	b.Pipeline = config.Pipeline

	b.registerRepository()
	b.registerUsecase()

	return *b
}
