package aggregator

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/aggregate"
	aggregatemock "github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/aggregate/mock"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
	"github.com/esplo/pikmin-aggregator/pkg/postgres"
	clientmock "github.com/esplo/pikmin-aggregator/pkg/postgres/mock"
)

func newTestLogger(t *testing.T) logger.Interface {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestAggregatorUsecase_Drain(t *testing.T) {
	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mockFn   func(client *clientmock.MockStoreClient, repo *aggregatemock.MockAggregateRepository, tx *postgres.FakeTx)
		assertFn func(t *testing.T, tx *postgres.FakeTx, err error)
	}{
		{
			name: "commits batches until the index is exhausted",
			mockFn: func(client *clientmock.MockStoreClient, repo *aggregatemock.MockAggregateRepository, tx *postgres.FakeTx) {
				client.EXPECT().Begin(gomock.Any()).Return(tx, nil).Times(3)
				gomock.InOrder(
					repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).Return(int64(100000), nil),
					repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).Return(int64(81), nil),
					repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).Return(int64(0), nil),
				)
			},
			assertFn: func(t *testing.T, tx *postgres.FakeTx, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, tx.Commits)
				assert.Equal(t, 0, tx.Rollbacks)
			},
		},
		{
			name: "failed batch rolls back and aborts",
			mockFn: func(client *clientmock.MockStoreClient, repo *aggregatemock.MockAggregateRepository, tx *postgres.FakeTx) {
				client.EXPECT().Begin(gomock.Any()).Return(tx, nil).Times(2)
				gomock.InOrder(
					repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).Return(int64(50), nil),
					repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("constraint violation")),
				)
			},
			assertFn: func(t *testing.T, tx *postgres.FakeTx, err error) {
				assert.Error(t, err)
				assert.Equal(t, 1, tx.Commits)
				assert.Equal(t, 1, tx.Rollbacks)
			},
		},
		{
			name: "begin failure aborts immediately",
			mockFn: func(client *clientmock.MockStoreClient, repo *aggregatemock.MockAggregateRepository, tx *postgres.FakeTx) {
				client.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("connection lost"))
			},
			assertFn: func(t *testing.T, tx *postgres.FakeTx, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, tx.Commits)
			},
		},
		{
			name: "commit failure aborts",
			mockFn: func(client *clientmock.MockStoreClient, repo *aggregatemock.MockAggregateRepository, tx *postgres.FakeTx) {
				tx.CommitErr = errors.New("commit failed")
				client.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).Return(int64(50), nil)
			},
			assertFn: func(t *testing.T, tx *postgres.FakeTx, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := clientmock.NewMockStoreClient(ctrl)
			repo := aggregatemock.NewMockAggregateRepository(ctrl)
			tx := &postgres.FakeTx{}
			tc.mockFn(client, repo, tx)

			usecase := NewUsecase(client, repo, newTestLogger(t), 100000)
			tc.assertFn(t, tx, usecase.Drain(context.Background(), names))
		})
	}
}

func TestAggregatorUsecase_DrainParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	client := clientmock.NewMockStoreClient(ctrl)
	repo := aggregatemock.NewMockAggregateRepository(ctrl)
	tx := &postgres.FakeTx{}

	client.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	repo.EXPECT().MoveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params aggregate.BatchParams) (int64, error) {
			assert.Equal(t, names.Source, params.SourceTable)
			assert.Equal(t, names.Index, params.IndexTable)
			assert.Equal(t, names.Staging, params.StagingTable)
			assert.Equal(t, 250, params.Limit)
			return 0, nil
		})

	usecase := NewUsecase(client, repo, newTestLogger(t), 250)
	require.NoError(t, usecase.Drain(context.Background(), names))
	assert.Equal(t, 1, tx.Commits)
}
