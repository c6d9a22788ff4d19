package routes

import (
	"github.com/gofiber/fiber/v2"

	"dailytasks/interfaces/api/handlers"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	tasks := app.Group("/tasks")

	// Literal paths before the :id parameter so they are not captured by it.
	tasks.Get("/today", h.TaskHandler.GetTodayTasks)
	tasks.Get("/week", h.TaskHandler.GetWeekTasks)
	tasks.Get("/month", h.TaskHandler.GetMonthTasks)
	tasks.Get("/search", h.TaskHandler.SearchTasks)

	tasks.Get("/", h.TaskHandler.GetTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Patch("/:id/completion", h.TaskHandler.ToggleCompletion)
	tasks.Patch("/:id/uncompleted", h.TaskHandler.ToggleUncompletion)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
