package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a single task by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// List retrieves tasks ordered by ID, skipping the first `skip` records
	// and returning at most `limit` records.
	List(ctx context.Context, skip, limit int) ([]*entity.Task, error)

	// ListByOwner retrieves every task whose owner matches the given user ID.
	// This is the explicit replacement for lazy relationship traversal: the
	// caller decides when the owner's tasks are fetched.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Task, error)

	// Update modifies an existing task entity in the storage.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its ID.
	Delete(ctx context.Context, id int64) error
}
