package stager

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schemamock "github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/schema/mock"
	"github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/stage"
	stagemock "github.com/esplo/pikmin-aggregator/internal/infrastructure/postgres/stage/mock"
	"github.com/esplo/pikmin-aggregator/internal/naming"
	"github.com/esplo/pikmin-aggregator/pkg/logger"
)

func newTestLogger(t *testing.T) logger.Interface {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestStagerUsecase_BuildIndex(t *testing.T) {
	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mockFn   func(schemaRepo *schemamock.MockSchemaRepository, stageRepo *stagemock.MockStageRepository)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "loops until a batch stages zero timestamps",
			mockFn: func(schemaRepo *schemamock.MockSchemaRepository, stageRepo *stagemock.MockStageRepository) {
				gomock.InOrder(
					schemaRepo.EXPECT().DropTable(gomock.Any(), names.WorkingIndex).Return(nil),
					schemaRepo.EXPECT().CreateTimestampIndexTable(gomock.Any(), names.WorkingIndex).Return(nil),
					stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).Return(int64(100000), nil),
					stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).Return(int64(137), nil),
					stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).Return(int64(0), nil),
					schemaRepo.EXPECT().RenameTable(gomock.Any(), names.WorkingIndex, names.Index).Return(nil),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "empty source still publishes an empty index",
			mockFn: func(schemaRepo *schemamock.MockSchemaRepository, stageRepo *stagemock.MockStageRepository) {
				gomock.InOrder(
					schemaRepo.EXPECT().DropTable(gomock.Any(), names.WorkingIndex).Return(nil),
					schemaRepo.EXPECT().CreateTimestampIndexTable(gomock.Any(), names.WorkingIndex).Return(nil),
					stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).Return(int64(0), nil),
					schemaRepo.EXPECT().RenameTable(gomock.Any(), names.WorkingIndex, names.Index).Return(nil),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "batch failure aborts without renaming",
			mockFn: func(schemaRepo *schemamock.MockSchemaRepository, stageRepo *stagemock.MockStageRepository) {
				gomock.InOrder(
					schemaRepo.EXPECT().DropTable(gomock.Any(), names.WorkingIndex).Return(nil),
					schemaRepo.EXPECT().CreateTimestampIndexTable(gomock.Any(), names.WorkingIndex).Return(nil),
					stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("copy failed")),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "create failure aborts before staging",
			mockFn: func(schemaRepo *schemamock.MockSchemaRepository, stageRepo *stagemock.MockStageRepository) {
				gomock.InOrder(
					schemaRepo.EXPECT().DropTable(gomock.Any(), names.WorkingIndex).Return(nil),
					schemaRepo.EXPECT().CreateTimestampIndexTable(gomock.Any(), names.WorkingIndex).Return(errors.New("create failed")),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			schemaRepo := schemamock.NewMockSchemaRepository(ctrl)
			stageRepo := stagemock.NewMockStageRepository(ctrl)
			tc.mockFn(schemaRepo, stageRepo)

			usecase := NewUsecase(schemaRepo, stageRepo, newTestLogger(t), 100000)
			tc.assertFn(t, usecase.BuildIndex(context.Background(), "bffx", names))
		})
	}
}

func TestStagerUsecase_BuildIndexParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	names, err := naming.ForSource("bffx")
	require.NoError(t, err)

	schemaRepo := schemamock.NewMockSchemaRepository(ctrl)
	stageRepo := stagemock.NewMockStageRepository(ctrl)

	schemaRepo.EXPECT().DropTable(gomock.Any(), names.WorkingIndex).Return(nil)
	schemaRepo.EXPECT().CreateTimestampIndexTable(gomock.Any(), names.WorkingIndex).Return(nil)
	schemaRepo.EXPECT().RenameTable(gomock.Any(), names.WorkingIndex, names.Index).Return(nil)

	var seen []stage.BatchParams
	gomock.InOrder(
		stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params stage.BatchParams) (int64, error) {
				seen = append(seen, params)
				return 1, nil
			}),
		stageRepo.EXPECT().StageNextBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params stage.BatchParams) (int64, error) {
				seen = append(seen, params)
				return 0, nil
			}),
	)

	usecase := NewUsecase(schemaRepo, stageRepo, newTestLogger(t), 5000)
	require.NoError(t, usecase.BuildIndex(context.Background(), "bffx", names))

	require.Len(t, seen, 2)
	for _, params := range seen {
		assert.Equal(t, names.Source, params.SourceTable)
		assert.Equal(t, names.WorkingIndex, params.IndexTable)
		assert.Equal(t, 5000, params.Limit)
		assert.Contains(t, params.DumpFile, "bffx")
	}
	// each round trip gets its own dump file
	assert.NotEqual(t, seen[0].DumpFile, seen[1].DumpFile)
}
