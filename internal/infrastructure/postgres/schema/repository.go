package schema

import (
	"context"
	"fmt"

	"github.com/esplo/pikmin-aggregator/pkg/postgres"
)

// Repository manages the tables the pipeline creates, renames and drops.
// Table names must come from the naming package; they are spliced into DDL,
// where placeholders are not supported.
type Repository struct {
	client postgres.StoreClient
}

// NewRepository creates a new schema repository.
func NewRepository(client postgres.StoreClient) *Repository {
	return &Repository{
		client: client,
	}
}

// TableExists reports whether a table of the given name exists.
func (r *Repository) TableExists(ctx context.Context, table string) (bool, error) {
	query := `SELECT to_regclass($1) IS NOT NULL`

	var exists bool
	if err := r.client.QueryRow(ctx, query, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of %s: %w", table, err)
	}
	return exists, nil
}

// CreateTimestampIndexTable creates the work-queue table of distinct
// not-yet-aggregated timestamps.
func (r *Repository) CreateTimestampIndexTable(ctx context.Context, table string) error {
	query := fmt.Sprintf(`CREATE TABLE %s (
		traded_at TIMESTAMP(3) NOT NULL PRIMARY KEY
	)`, table)

	if _, err := r.client.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create timestamp index table %s: %w", table, err)
	}
	return nil
}

// CreateAggregateTable creates the staging table aggregated rows are
// written to before publish.
func (r *Repository) CreateAggregateTable(ctx context.Context, table string) error {
	query := fmt.Sprintf(`CREATE TABLE %s (
		traded_at TIMESTAMP(3) NOT NULL PRIMARY KEY,
		amount NUMERIC NOT NULL,
		price NUMERIC NOT NULL
	)`, table)

	if _, err := r.client.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create aggregate table %s: %w", table, err)
	}
	return nil
}

// CreateSourceTable creates a raw execution table. The pipeline itself never
// writes source tables; this backs the migrate command and tests.
func (r *Repository) CreateSourceTable(ctx context.Context, table string) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		traded_at TIMESTAMP(3) NOT NULL,
		amount NUMERIC NOT NULL,
		price NUMERIC NOT NULL
	)`, table)

	if _, err := r.client.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create source table %s: %w", table, err)
	}
	return nil
}

// RenameTable renames from to to. Used both to move a completed working
// index into place and to publish the staging table atomically.
func (r *Repository) RenameTable(ctx context.Context, from, to string) error {
	query := fmt.Sprintf(`ALTER TABLE %s RENAME TO %s`, from, to)

	if _, err := r.client.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to rename table %s to %s: %w", from, to, err)
	}
	return nil
}

// DropTable drops the table if it exists.
func (r *Repository) DropTable(ctx context.Context, table string) error {
	query := fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)

	if _, err := r.client.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}
