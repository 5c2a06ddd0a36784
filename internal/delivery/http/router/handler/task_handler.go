package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/entity"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskResponse is the outward shape of a task.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	var input usecase.TaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// List handles the paginated task listing request. Defaults: skip=0, limit=10.
func (h *TaskHandler) List(c echo.Context) error {
	input := usecase.ListTasksInput{}
	if skip := c.QueryParam("skip"); skip != "" {
		parsed, err := strconv.Atoi(skip)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "skip must be an integer")
		}
		input.Skip = parsed
	}
	if limit := c.QueryParam("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		input.Limit = parsed
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponses(tasks), "Tasks retrieved successfully")
}

// Update handles the task update request.
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "task id must be an integer")
	}

	var input usecase.TaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// Delete handles the task deletion request and echoes the deleted task.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "task id must be an integer")
	}

	task, err := h.uc.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task deleted successfully")
}

func parseTaskID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func toTaskResponse(task *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		OwnerID:     task.OwnerID,
	}
}

func toTaskResponses(tasks []*entity.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}

	return responses
}
