package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/esplo/pikmin-aggregator/internal/bootstrap"
	"github.com/esplo/pikmin-aggregator/pkg/config"
	pkgerrors "github.com/esplo/pikmin-aggregator/pkg/errors"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	client, err := postgres.NewClient(ctx, cfg.Postgres)
	if err != nil {
		appLogger.Error(pkgerrors.NewPipelineError(pkgerrors.StoreConnectionError, err))
		appLogger.Sync()
		os.Exit(1)
	}
	defer client.Close()

	app := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Postgres: client,
		Logger:   appLogger,
		Pipeline: cfg.Pipeline,
	})

	appLogger.Info("aggregation run starting",
		logger.NewField("app", cfg.App.Name),
		logger.NewField("environment", cfg.App.Environment),
		logger.NewField("sources", cfg.Pipeline.Sources),
	)

	if failed := run(ctx, app, cfg.Pipeline.Sources); failed > 0 {
		appLogger.Info("aggregation run finished with failures", logger.NewField("failed", failed))
		appLogger.Sync()
		os.Exit(1)
	}

	appLogger.Info("aggregation run finished")
}

// run aggregates every source concurrently and returns the number of
// sources that failed. A failed source never stops the others; each run is
// independently resumable.
func run(ctx context.Context, app bootstrap.Bootstrap, sources []string) int {
	var wg sync.WaitGroup
	errs := make(chan error, len(sources))

	for _, source := range sources {
		wg.Add(1)
		go func(source string) {
			defer wg.Done()

			sourceLogger := app.Logger.WithFields(logger.NewField("source", source))
			if err := app.Usecase.PipelineUsecase.Run(ctx, source); err != nil {
				if code, ok := pkgerrors.CodeOf(err); ok {
					sourceLogger.Error(err, logger.NewField("code", code))
				} else {
					sourceLogger.Error(err)
				}
				errs <- err
			}
		}(source)
	}

	wg.Wait()
	close(errs)

	return len(errs)
}
