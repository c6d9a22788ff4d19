package serviceimpl

import (
	"context"
	"time"

	"dailytasks/domain/dto"
	"dailytasks/domain/models"
	"dailytasks/domain/repositories"
	"dailytasks/domain/services"
	"dailytasks/pkg/logger"
	"dailytasks/pkg/metrics"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) GetTasks(ctx context.Context, start, end *models.Date, completed *bool, page repositories.PageRequest) ([]*models.Task, int64, error) {
	filter := repositories.TaskFilter{
		Start:     start,
		End:       end,
		Completed: completed,
	}

	tasks, total, err := s.taskRepo.FindPage(ctx, filter, page)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "page", page.Page, "limit", page.Limit, "error", err)
		return nil, 0, err
	}
	return tasks, total, nil
}

func (s *TaskServiceImpl) GetTodayTasks(ctx context.Context, includeCompleted bool) ([]*models.Task, error) {
	today := models.Today()
	tasks, err := s.taskRepo.FindByDueDate(ctx, today, completionFilter(includeCompleted))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get today tasks", "date", today.String(), "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetWeekTasks(ctx context.Context, includeCompleted bool) ([]*models.Task, error) {
	today := models.Today()
	return s.windowTasks(ctx, today, today.AddDays(7), includeCompleted)
}

func (s *TaskServiceImpl) GetMonthTasks(ctx context.Context, includeCompleted bool) ([]*models.Task, error) {
	today := models.Today()
	return s.windowTasks(ctx, today, today.AddMonths(1), includeCompleted)
}

func (s *TaskServiceImpl) windowTasks(ctx context.Context, start, end models.Date, includeCompleted bool) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindByDueDateRange(ctx, start, end, completionFilter(includeCompleted))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get tasks for window",
			"start", start.String(), "end", end.String(), "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTaskByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get task", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) SearchTasksByTitle(ctx context.Context, title string, includeCompleted bool) ([]*models.Task, error) {
	tasks, err := s.taskRepo.FindByTitleContains(ctx, title, completionFilter(includeCompleted))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to search tasks", "title", title, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.TaskRequest) (*models.Task, error) {
	start := time.Now()
	var err error
	defer func() { metrics.Observe("create", time.Since(start).Seconds(), err) }()

	if err = validateDueDate(req.DueDate); err != nil {
		logger.WarnContext(ctx, "Task creation rejected", "due_date", req.DueDate.String())
		return nil, err
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     dueDateValue(req.DueDate),
	}

	if err = s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "title", req.Title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "due_date", task.DueDate.String())
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id uint, req *dto.TaskRequest) (*models.Task, error) {
	start := time.Now()
	var err error
	defer func() { metrics.Observe("update", time.Since(start).Seconds(), err) }()

	if err = validateDueDate(req.DueDate); err != nil {
		logger.WarnContext(ctx, "Task update rejected", "task_id", id, "due_date", req.DueDate.String())
		return nil, err
	}

	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task for update", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		err = services.ErrTaskNotFound
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Completed = req.Completed
	task.DueDate = dueDateValue(req.DueDate)

	if err = s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	return task, nil
}

func (s *TaskServiceImpl) ToggleCompletion(ctx context.Context, id uint) (*models.Task, error) {
	return s.setCompletion(ctx, id, "toggle", func(completed bool) bool { return !completed })
}

func (s *TaskServiceImpl) ToggleUncompletion(ctx context.Context, id uint) (*models.Task, error) {
	return s.setCompletion(ctx, id, "uncomplete", func(bool) bool { return false })
}

func (s *TaskServiceImpl) setCompletion(ctx context.Context, id uint, operation string, next func(bool) bool) (*models.Task, error) {
	start := time.Now()
	var err error
	defer func() { metrics.Observe(operation, time.Since(start).Seconds(), err) }()

	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task", "task_id", id, "error", err)
		return nil, err
	}
	if task == nil {
		err = services.ErrTaskNotFound
		return nil, err
	}

	task.Completed = next(task.Completed)

	if err = s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to save completion state", "task_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task completion changed", "task_id", id, "completed", task.Completed)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id uint) error {
	start := time.Now()
	var err error
	defer func() { metrics.Observe("delete", time.Since(start).Seconds(), err) }()

	exists, err := s.taskRepo.ExistsByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check task existence", "task_id", id, "error", err)
		return err
	}
	if !exists {
		err = services.ErrTaskNotFound
		return err
	}

	if err = s.taskRepo.DeleteByID(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}

// validateDueDate enforces the creation/update invariant: a due date may be
// today or later, never earlier. A nil date is caught by request validation
// before it reaches the service.
func validateDueDate(date *models.Date) error {
	if date == nil {
		return nil
	}
	if date.Before(models.Today()) {
		return services.ErrPastDueDate
	}
	return nil
}

func dueDateValue(date *models.Date) models.Date {
	if date == nil {
		return models.Date{}
	}
	return *date
}

// completionFilter maps the includeCompleted flag to a storage filter:
// include everything (nil) or restrict to incomplete tasks.
func completionFilter(includeCompleted bool) *bool {
	if includeCompleted {
		return nil
	}
	incomplete := false
	return &incomplete
}
