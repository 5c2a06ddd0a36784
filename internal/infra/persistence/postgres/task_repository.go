package postgres

import (
	"context"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("owner does not reference an existing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByID retrieves a single task by its numeric ID.
func (repo *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).First(&taskM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// List retrieves tasks ordered by ID with offset/limit pagination.
func (repo *taskRepository) List(ctx context.Context, skip, limit int) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return toTaskDomainSlice(taskModels), nil
}

// ListByOwner retrieves every task whose owner_id matches the given user ID.
// This is the explicit, eagerly-specified query replacing relationship traversal.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	return toTaskDomainSlice(taskModels), nil
}

// Update modifies an existing task entity in the database.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	// Save writes every column, so a cleared description is persisted as NULL.
	if err := repo.db.WithContext(ctx).Save(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("owner does not reference an existing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}

	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Delete removes a task by its ID.
func (repo *taskRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.TaskModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toTaskDomainSlice(data []model.TaskModel) []*entity.Task {
	tasks := make([]*entity.Task, 0, len(data))
	for i := range data {
		tasks = append(tasks, toTaskDomain(&data[i]))
	}

	return tasks
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	// CreatedAt must travel with the model: Update writes every column, so
	// leaving it zero would clobber the stored creation timestamp. On insert
	// GORM fills a zero CreatedAt itself.
	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}
