package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"dailytasks/domain/models"
	"dailytasks/domain/repositories"
)

// sortColumns whitelists the sortable fields so a sort parameter can never
// inject SQL.
var sortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"dueDate":   "due_date",
	"completed": "completed",
}

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) FindPage(ctx context.Context, filter repositories.TaskFilter, page repositories.PageRequest) ([]*models.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{})

	if filter.Start != nil {
		query = query.Where("due_date >= ?", filter.Start.Time())
	}
	if filter.End != nil {
		query = query.Where("due_date <= ?", filter.End.Time())
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*models.Task
	err := query.
		Order(orderClause(page.Sort)).
		Offset(page.Offset()).
		Limit(page.PageLimit()).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func (r *TaskRepositoryImpl) FindByDueDateRange(ctx context.Context, start, end models.Date, completed *bool) ([]*models.Task, error) {
	var tasks []*models.Task
	query := r.db.WithContext(ctx).
		Where("due_date >= ? AND due_date <= ?", start.Time(), end.Time())
	query = withCompleted(query, completed)
	err := query.Order("due_date ASC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByDueDate(ctx context.Context, date models.Date, completed *bool) ([]*models.Task, error) {
	var tasks []*models.Task
	query := r.db.WithContext(ctx).Where("due_date = ?", date.Time())
	query = withCompleted(query, completed)
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByTitleContains(ctx context.Context, substring string, completed *bool) ([]*models.Task, error) {
	var tasks []*models.Task
	query := r.db.WithContext(ctx).Where("title LIKE ?", "%"+substring+"%")
	query = withCompleted(query, completed)
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Save inserts when the task has no id yet, otherwise writes all columns of
// the existing row.
func (r *TaskRepositoryImpl) Save(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Task{}, id).Error
}

func (r *TaskRepositoryImpl) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func withCompleted(query *gorm.DB, completed *bool) *gorm.DB {
	if completed != nil {
		return query.Where("completed = ?", *completed)
	}
	return query
}

// orderClause maps "field" or "field,desc" onto a safe ORDER BY expression.
// Unknown fields fall back to insertion order.
func orderClause(sort string) string {
	column := "id"
	direction := "ASC"

	if sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		if mapped, ok := sortColumns[strings.TrimSpace(parts[0])]; ok {
			column = mapped
		}
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			direction = "DESC"
		}
	}

	return column + " " + direction
}
