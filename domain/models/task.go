package models

// Task is the single persisted entity: a to-do item with a title, an optional
// description, a completion flag and a due date.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Completed   bool `gorm:"not null;default:false"`
	DueDate     Date `gorm:"type:date;not null;index"`
}

func (Task) TableName() string {
	return "tasks"
}
