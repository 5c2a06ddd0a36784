package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// TaskInput defines the data for creating or updating a task. The owner
// reference is caller-supplied and is not validated against the
// authenticated caller.
type TaskInput struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id" validate:"required"`
}

// ListTasksInput carries pagination parameters for listing tasks.
type ListTasksInput struct {
	Skip  int
	Limit int
}

// TaskUsecase defines the interface for task-related business operations.
type TaskUsecase interface {
	// CreateTask persists a new task for the given owner.
	CreateTask(ctx context.Context, input *TaskInput) (*entity.Task, error)

	// ListTasks returns tasks with offset/limit pagination.
	ListTasks(ctx context.Context, input *ListTasksInput) ([]*entity.Task, error)

	// UpdateTask replaces the mutable fields of an existing task.
	UpdateTask(ctx context.Context, id int64, input *TaskInput) (*entity.Task, error)

	// DeleteTask removes a task and returns the deleted record.
	DeleteTask(ctx context.Context, id int64) (*entity.Task, error)
}
