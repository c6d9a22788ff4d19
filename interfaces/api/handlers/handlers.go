package handlers

import (
	"dailytasks/domain/services"
)

// Services holds everything the handlers need from the application layer.
type Services struct {
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}
