package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dailytasks/domain/dto"
	"dailytasks/domain/models"
	"dailytasks/domain/repositories"
	"dailytasks/domain/services"
	"dailytasks/pkg/logger"
	"dailytasks/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTasks handles GET /tasks with optional start/end/completed filters and
// page/limit/sort pagination.
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	start, err := parseDateQuery(c, "start")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	completed, err := parseBoolQuery(c, "completed")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	page := repositories.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", repositories.DefaultPageLimit),
		Sort:  c.Query("sort"),
	}
	if page.Page < 1 || page.Limit < 1 {
		return utils.BadRequestResponse(c, "page and limit must be positive")
	}

	tasks, total, err := h.taskService.GetTasks(ctx, start, end, completed, page)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to retrieve tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToResponses(tasks), total, page.Page, page.PageLimit())
}

func (h *TaskHandler) GetTodayTasks(c *fiber.Ctx) error {
	return h.windowTasks(c, h.taskService.GetTodayTasks)
}

func (h *TaskHandler) GetWeekTasks(c *fiber.Ctx) error {
	return h.windowTasks(c, h.taskService.GetWeekTasks)
}

func (h *TaskHandler) GetMonthTasks(c *fiber.Ctx) error {
	return h.windowTasks(c, h.taskService.GetMonthTasks)
}

func (h *TaskHandler) windowTasks(c *fiber.Ctx, fetch func(ctx context.Context, includeCompleted bool) ([]*models.Task, error)) error {
	ctx := c.UserContext()

	includeCompleted := c.QueryBool("includeCompleted", false)

	tasks, err := fetch(ctx, includeCompleted)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to retrieve window tasks", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToResponses(tasks))
}

// SearchTasks handles GET /tasks/search. The exactMatch parameter keeps its
// historical wire name but controls whether completed tasks are included; it
// has never meant exact string matching.
func (h *TaskHandler) SearchTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	title := c.Query("title")
	if title == "" {
		return utils.BadRequestResponse(c, "title query parameter is required")
	}
	includeCompleted := c.QueryBool("exactMatch", false)

	tasks, err := h.taskService.SearchTasksByTitle(ctx, title, includeCompleted)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to search tasks", "title", title, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TasksToResponses(tasks))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTaskByID(ctx, id)
	if err != nil {
		return h.taskError(c, err, id)
	}

	return utils.SuccessResponse(c, dto.TaskToResponse(task))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		return h.taskError(c, err, 0)
	}

	return utils.CreatedResponse(c, dto.TaskToResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "task_id", id, "errors", details)
		return utils.ValidationErrorResponse(c, details)
	}

	task, err := h.taskService.UpdateTask(ctx, id, &req)
	if err != nil {
		return h.taskError(c, err, id)
	}

	return utils.SuccessResponse(c, dto.TaskToResponse(task))
}

func (h *TaskHandler) ToggleCompletion(c *fiber.Ctx) error {
	return h.patchCompletion(c, h.taskService.ToggleCompletion)
}

func (h *TaskHandler) ToggleUncompletion(c *fiber.Ctx) error {
	return h.patchCompletion(c, h.taskService.ToggleUncompletion)
}

func (h *TaskHandler) patchCompletion(c *fiber.Ctx, patch func(ctx context.Context, id uint) (*models.Task, error)) error {
	ctx := c.UserContext()

	id, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := patch(ctx, id)
	if err != nil {
		return h.taskError(c, err, id)
	}

	return utils.SuccessResponse(c, dto.TaskToResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseTaskID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		return h.taskError(c, err, id)
	}

	return utils.NoContentResponse(c)
}

// taskError maps domain errors onto HTTP responses; anything unexpected is a
// 500.
func (h *TaskHandler) taskError(c *fiber.Ctx, err error, id uint) error {
	ctx := c.UserContext()

	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		logger.WarnContext(ctx, "Task not found", "task_id", id)
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, services.ErrPastDueDate):
		logger.WarnContext(ctx, "Past due date rejected", "task_id", id)
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.ErrorContext(ctx, "Task operation failed", "task_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}

func parseTaskID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseDateQuery(c *fiber.Ctx, name string) (*models.Date, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func parseBoolQuery(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New(name + " must be a boolean")
	}
	return &value, nil
}
