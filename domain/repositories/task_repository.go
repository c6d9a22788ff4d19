package repositories

import (
	"context"

	"dailytasks/domain/models"
)

// TaskFilter narrows a listing. A nil field means "no constraint on that
// field", not "match the zero value".
type TaskFilter struct {
	Start     *models.Date
	End       *models.Date
	Completed *bool
}

// PageRequest selects a bounded slice of an ordered result set. Page is
// 1-based. Sort is "field" or "field,desc" over a whitelisted field set.
type PageRequest struct {
	Page  int
	Limit int
	Sort  string
}

const DefaultPageLimit = 20

func (p PageRequest) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageLimit()
}

func (p PageRequest) PageLimit() int {
	if p.Limit < 1 {
		return DefaultPageLimit
	}
	return p.Limit
}

// TaskRepository translates typed queries into relational lookups. Absence is
// reported as a nil task, never as an error; the service layer owns the
// translation into a domain not-found error.
type TaskRepository interface {
	FindPage(ctx context.Context, filter TaskFilter, page PageRequest) ([]*models.Task, int64, error)
	FindByDueDateRange(ctx context.Context, start, end models.Date, completed *bool) ([]*models.Task, error)
	FindByDueDate(ctx context.Context, date models.Date, completed *bool) ([]*models.Task, error)
	FindByTitleContains(ctx context.Context, substring string, completed *bool) ([]*models.Task, error)
	FindByID(ctx context.Context, id uint) (*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
