package routes

import (
	"github.com/gofiber/fiber/v2"

	"dailytasks/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)
	SetupMetricsRoutes(app)
	SetupTaskRoutes(app, h)
}
