package services

import (
	"context"
	"errors"

	"dailytasks/domain/dto"
	"dailytasks/domain/models"
	"dailytasks/domain/repositories"
)

var (
	// ErrTaskNotFound reports that the requested id has no persisted task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrPastDueDate reports a create/update with a due date before today.
	ErrPastDueDate = errors.New("due date cannot be in the past")
)

type TaskService interface {
	GetTasks(ctx context.Context, start, end *models.Date, completed *bool, page repositories.PageRequest) ([]*models.Task, int64, error)
	GetTodayTasks(ctx context.Context, includeCompleted bool) ([]*models.Task, error)
	GetWeekTasks(ctx context.Context, includeCompleted bool) ([]*models.Task, error)
	GetMonthTasks(ctx context.Context, includeCompleted bool) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id uint) (*models.Task, error)
	SearchTasksByTitle(ctx context.Context, title string, includeCompleted bool) ([]*models.Task, error)
	CreateTask(ctx context.Context, req *dto.TaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id uint, req *dto.TaskRequest) (*models.Task, error)
	ToggleCompletion(ctx context.Context, id uint) (*models.Task, error)
	ToggleUncompletion(ctx context.Context, id uint) (*models.Task, error)
	DeleteTask(ctx context.Context, id uint) error
}
