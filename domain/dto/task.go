package dto

import (
	"dailytasks/domain/models"
)

// TaskRequest is the body of POST /tasks and PUT /tasks/:id. The same shape is
// used for create and full update: every mutable field is overwritten.
type TaskRequest struct {
	Title       string       `json:"title" validate:"required,notblank"`
	Description string       `json:"description"`
	Completed   bool         `json:"completed"`
	DueDate     *models.Date `json:"dueDate" validate:"required"`
}

type TaskResponse struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Completed   bool        `json:"completed"`
	DueDate     models.Date `json:"dueDate"`
}
