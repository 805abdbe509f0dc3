package main

import (
	"context"
	"log"

	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/schema"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/pkg/config"
	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// Creates the raw trade tables for every configured source. The aggregation
// run itself never creates source tables; ingestion normally provisions
// them, and this command covers fresh environments.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := postgres.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to initialize store client: %v", err)
	}
	defer client.Close()

	schemaRepo := schema.NewRepository(client)

	for _, source := range cfg.Pipeline.Sources {
		names, err := naming.ForSource(source)
		if err != nil {
			log.Fatalf("Invalid source %q: %v", source, err)
		}

		log.Printf("Creating source table: %s", names.Source)
		if err := schemaRepo.CreateSourceTable(ctx, names.Source); err != nil {
			log.Fatalf("Failed to create source table %s: %v", names.Source, err)
		}
	}

	log.Println("Migrations completed successfully")
}
