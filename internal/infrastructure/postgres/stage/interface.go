package stage

import (
	"context"
)

// StageRepository is the interface for the stage repository.
//
//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock
type StageRepository interface {
	StageNextBatch(ctx context.Context, params BatchParams) (int64, error)
}
