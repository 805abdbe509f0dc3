package schema

import (
	"context"
)

// SchemaRepository is the interface for the schema repository.
//
//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock
type SchemaRepository interface {
	TableExists(ctx context.Context, table string) (bool, error)
	CreateTimestampIndexTable(ctx context.Context, table string) error
	CreateAggregateTable(ctx context.Context, table string) error
	CreateSourceTable(ctx context.Context, table string) error
	RenameTable(ctx context.Context, from, to string) error
	DropTable(ctx context.Context, table string) error
}
