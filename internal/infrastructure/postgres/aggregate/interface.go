package aggregate

import (
	"context"
)

// AggregateRepository is the interface for the aggregate repository.
//
//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock
type AggregateRepository interface {
	MoveBatch(ctx context.Context, params BatchParams) (int64, error)
	List(ctx context.Context, table string) ([]*AggregatedTrade, error)
}
