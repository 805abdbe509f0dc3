package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig       `envPrefix:"APP_"`
	Postgres postgres.Config `envPrefix:"POSTGRES_"`
	Pipeline PipelineConfig  `envPrefix:"PIPELINE_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"pikmin-aggregator"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// PipelineConfig represents the aggregation pipeline configuration.
type PipelineConfig struct {
	// Sources lists the exchange identifiers to process, one worker each.
	Sources []string `env:"SOURCES" envSeparator:"," envDefault:"bffx,liquid,mex"`

	// StageBatchSize bounds one bulk extract/load round trip of distinct timestamps.
	StageBatchSize int `env:"STAGE_BATCH_SIZE" envDefault:"100000"`
	// AggregateBatchSize bounds one aggregation transaction.
	AggregateBatchSize int `env:"AGGREGATE_BATCH_SIZE" envDefault:"100000"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
