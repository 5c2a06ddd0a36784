package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockRepo "taskboard/internal/mocks/repository"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	taskRepo *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTaskService(TaskServiceParams{
		TaskRepo: taskRepo,
		Logger:   logger,
	})

	return taskServiceFixtures{
		service:  service,
		taskRepo: taskRepo,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	input := &usecase.TaskInput{
		Title:       "Write report",
		Description: strPtr("quarterly numbers"),
		OwnerID:     1,
	}

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			task.ID = 42
		}).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, int64(42), task.ID)
	assert.Equal(t, input.Title, task.Title)
	assert.Equal(t, input.Description, task.Description)
	assert.Equal(t, input.OwnerID, task.OwnerID)
}

func TestTaskService_CreateTask_NilDescription(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	input := &usecase.TaskInput{
		Title:   "No description",
		OwnerID: 1,
	}

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, task.Description)
}

func TestTaskService_ListTasks_PassesPagination(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	expected := []*entity.Task{{ID: 1, Title: "a", OwnerID: 1}}

	fx.taskRepo.EXPECT().List(ctx, 5, 20).Return(expected, nil)

	tasks, err := fx.service.ListTasks(ctx, &usecase.ListTasksInput{Skip: 5, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
}

func TestTaskService_ListTasks_ClampsOutOfRangeInputs(t *testing.T) {
	testCases := []struct {
		name          string
		skip          int
		limit         int
		expectedSkip  int
		expectedLimit int
	}{
		{name: "negative skip", skip: -3, limit: 20, expectedSkip: 0, expectedLimit: 20},
		{name: "zero limit uses default", skip: 0, limit: 0, expectedSkip: 0, expectedLimit: 10},
		{name: "negative limit uses default", skip: 0, limit: -1, expectedSkip: 0, expectedLimit: 10},
		{name: "limit capped", skip: 0, limit: 500, expectedSkip: 0, expectedLimit: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestTaskService(t)
			ctx := context.Background()

			fx.taskRepo.EXPECT().
				List(ctx, tc.expectedSkip, tc.expectedLimit).
				Return([]*entity.Task{}, nil)

			_, err := fx.service.ListTasks(ctx, &usecase.ListTasksInput{Skip: tc.skip, Limit: tc.limit})

			require.NoError(t, err)
		})
	}
}

func TestTaskService_UpdateTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	existing := &entity.Task{ID: 42, Title: "old title", Description: strPtr("old"), OwnerID: 1}
	input := &usecase.TaskInput{Title: "new title", Description: nil, OwnerID: 1}

	fx.taskRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil)
	fx.taskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			assert.Equal(t, "new title", task.Title)
			assert.Nil(t, task.Description)
		}).
		Return(nil)

	task, err := fx.service.UpdateTask(ctx, 42, input)

	require.NoError(t, err)
	assert.Equal(t, "new title", task.Title)
	// A nil description clears the stored one.
	assert.Nil(t, task.Description)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()

	fx.taskRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.UpdateTask(ctx, 99, &usecase.TaskInput{Title: "x", OwnerID: 1})

	assert.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_DeleteTask_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	existing := &entity.Task{ID: 42, Title: "doomed", OwnerID: 1}

	fx.taskRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil)
	fx.taskRepo.EXPECT().Delete(ctx, int64(42)).Return(nil)

	task, err := fx.service.DeleteTask(ctx, 42)

	require.NoError(t, err)
	// The deleted record is echoed back to the caller.
	assert.Equal(t, existing, task)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()

	fx.taskRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.DeleteTask(ctx, 99)

	assert.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_DeleteTask_RacedDeletion(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	existing := &entity.Task{ID: 42, Title: "doomed", OwnerID: 1}

	fx.taskRepo.EXPECT().FindByID(ctx, int64(42)).Return(existing, nil)
	// Another request deleted the row between the lookup and the delete.
	fx.taskRepo.EXPECT().Delete(ctx, int64(42)).Return(repository.ErrTaskNotFound)

	task, err := fx.service.DeleteTask(ctx, 42)

	assert.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}
