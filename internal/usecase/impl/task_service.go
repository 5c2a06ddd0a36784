package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask persists a new task. The owner reference comes from the caller
// and is only checked by the storage layer's foreign key.
func (srv *taskService) CreateTask(ctx context.Context, input *usecase.TaskInput) (*entity.Task, error) {
	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Warn("Failed to create task", slog.Int64("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Int64("taskID", task.ID))

	return task, nil
}

// ListTasks returns tasks with offset/limit pagination. Out-of-range inputs
// are clamped to the defaults.
func (srv *taskService) ListTasks(ctx context.Context, input *usecase.ListTasksInput) ([]*entity.Task, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	tasks, err := srv.taskRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// UpdateTask replaces the mutable fields of an existing task.
func (srv *taskService) UpdateTask(ctx context.Context, id int64, input *usecase.TaskInput) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "update failed")
		}

		return nil, errors.Wrap(err, "failed to load task for update")
	}

	task.Title = input.Title
	task.Description = input.Description
	task.OwnerID = input.OwnerID

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		srv.log(ctx).Warn("Failed to update task", slog.Int64("taskID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

// DeleteTask removes a task and echoes the deleted record back.
func (srv *taskService) DeleteTask(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "delete failed")
		}

		return nil, errors.Wrap(err, "failed to load task for delete")
	}

	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "delete failed")
		}

		return nil, errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("taskID", id))

	return task, nil
}
