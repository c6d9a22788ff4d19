package postgres

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dailytasks/domain/models"
	"dailytasks/domain/repositories"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedTask(t *testing.T, repo repositories.TaskRepository, title string, due models.Date, completed bool) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:     title,
		Completed: completed,
		DueDate:   due,
	}
	if err := repo.Save(context.Background(), task); err != nil {
		t.Fatalf("failed to seed task %q: %v", title, err)
	}
	return task
}

func boolPtr(b bool) *bool { return &b }

func TestTaskRepository_SaveAssignsID(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	task := seedTask(t, repo, "Buy milk", models.NewDate(2030, time.January, 2), false)
	if task.ID == 0 {
		t.Fatal("Save() did not assign an id")
	}

	second := seedTask(t, repo, "Walk dog", models.NewDate(2030, time.January, 3), false)
	if second.ID == task.ID {
		t.Errorf("ids must be unique, both got %d", task.ID)
	}
}

func TestTaskRepository_FindByID(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	created := seedTask(t, repo, "Buy milk", models.NewDate(2030, time.January, 2), false)
	created.Description = "two liters"
	if err := repo.Save(ctx, created); err != nil {
		t.Fatalf("Save() update error = %v", err)
	}

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found == nil {
			t.Fatal("FindByID() = nil for existing task")
		}
		if found.Title != "Buy milk" || found.Description != "two liters" {
			t.Errorf("unexpected task %+v", found)
		}
		if !found.DueDate.Equal(created.DueDate) {
			t.Errorf("due date = %v, want %v", found.DueDate, created.DueDate)
		}
	})

	t.Run("absent task", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 9999)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found != nil {
			t.Errorf("FindByID() = %+v, want nil", found)
		}
	})
}

func TestTaskRepository_FindPage(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, "alpha", models.NewDate(2030, time.January, 1), false)
	seedTask(t, repo, "bravo", models.NewDate(2030, time.January, 2), true)
	seedTask(t, repo, "charlie", models.NewDate(2030, time.January, 3), false)
	seedTask(t, repo, "delta", models.NewDate(2030, time.February, 1), true)
	seedTask(t, repo, "echo", models.NewDate(2030, time.February, 2), false)

	t.Run("no filters returns everything", func(t *testing.T) {
		tasks, total, err := repo.FindPage(ctx, repositories.TaskFilter{}, repositories.PageRequest{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if total != 5 || len(tasks) != 5 {
			t.Errorf("got total=%d len=%d, want 5/5", total, len(tasks))
		}
	})

	t.Run("completed filter", func(t *testing.T) {
		tasks, total, err := repo.FindPage(ctx, repositories.TaskFilter{Completed: boolPtr(true)}, repositories.PageRequest{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
		for _, task := range tasks {
			if !task.Completed {
				t.Errorf("task %q should be completed", task.Title)
			}
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		start := models.NewDate(2030, time.January, 2)
		end := models.NewDate(2030, time.February, 1)
		tasks, total, err := repo.FindPage(ctx, repositories.TaskFilter{Start: &start, End: &end}, repositories.PageRequest{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if total != 3 {
			t.Errorf("total = %d, want 3 (inclusive bounds)", total)
		}
		for _, task := range tasks {
			if task.DueDate.Before(start) || task.DueDate.After(end) {
				t.Errorf("task %q due %v outside range", task.Title, task.DueDate)
			}
		}
	})

	t.Run("range and completion combined", func(t *testing.T) {
		start := models.NewDate(2030, time.January, 1)
		end := models.NewDate(2030, time.February, 2)
		_, total, err := repo.FindPage(ctx,
			repositories.TaskFilter{Start: &start, End: &end, Completed: boolPtr(false)},
			repositories.PageRequest{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		tasks, total, err := repo.FindPage(ctx, repositories.TaskFilter{}, repositories.PageRequest{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		if total != 5 {
			t.Errorf("total = %d, want 5", total)
		}
		if len(tasks) != 2 {
			t.Errorf("len = %d, want 2", len(tasks))
		}
	})

	t.Run("sort by due date descending", func(t *testing.T) {
		tasks, _, err := repo.FindPage(ctx, repositories.TaskFilter{}, repositories.PageRequest{Page: 1, Limit: 10, Sort: "dueDate,desc"})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		for i := 1; i < len(tasks); i++ {
			if tasks[i-1].DueDate.Before(tasks[i].DueDate) {
				t.Errorf("tasks not sorted descending at index %d", i)
			}
		}
	})

	t.Run("unknown sort field falls back to id", func(t *testing.T) {
		tasks, _, err := repo.FindPage(ctx, repositories.TaskFilter{}, repositories.PageRequest{Page: 1, Limit: 10, Sort: "drop table;--"})
		if err != nil {
			t.Fatalf("FindPage() error = %v", err)
		}
		for i := 1; i < len(tasks); i++ {
			if tasks[i-1].ID > tasks[i].ID {
				t.Errorf("tasks not sorted by id at index %d", i)
			}
		}
	})
}

func TestTaskRepository_FindByDueDateRange(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, "later", models.NewDate(2030, time.March, 10), false)
	seedTask(t, repo, "earlier", models.NewDate(2030, time.March, 1), false)
	seedTask(t, repo, "done", models.NewDate(2030, time.March, 5), true)
	seedTask(t, repo, "outside", models.NewDate(2030, time.April, 1), false)

	t.Run("ascending order, inclusive bounds", func(t *testing.T) {
		tasks, err := repo.FindByDueDateRange(ctx, models.NewDate(2030, time.March, 1), models.NewDate(2030, time.March, 10), nil)
		if err != nil {
			t.Fatalf("FindByDueDateRange() error = %v", err)
		}
		if len(tasks) != 3 {
			t.Fatalf("len = %d, want 3", len(tasks))
		}
		for i := 1; i < len(tasks); i++ {
			if tasks[i].DueDate.Before(tasks[i-1].DueDate) {
				t.Errorf("tasks not ascending at index %d", i)
			}
		}
	})

	t.Run("incomplete only", func(t *testing.T) {
		tasks, err := repo.FindByDueDateRange(ctx, models.NewDate(2030, time.March, 1), models.NewDate(2030, time.March, 10), boolPtr(false))
		if err != nil {
			t.Fatalf("FindByDueDateRange() error = %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("len = %d, want 2", len(tasks))
		}
	})
}

func TestTaskRepository_FindByDueDate(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	target := models.NewDate(2030, time.May, 20)
	seedTask(t, repo, "due", target, false)
	seedTask(t, repo, "due done", target, true)
	seedTask(t, repo, "other day", models.NewDate(2030, time.May, 21), false)

	all, err := repo.FindByDueDate(ctx, target, nil)
	if err != nil {
		t.Fatalf("FindByDueDate() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}

	incomplete, err := repo.FindByDueDate(ctx, target, boolPtr(false))
	if err != nil {
		t.Fatalf("FindByDueDate() error = %v", err)
	}
	if len(incomplete) != 1 || incomplete[0].Title != "due" {
		t.Errorf("incomplete = %+v, want single task %q", incomplete, "due")
	}
}

func TestTaskRepository_FindByTitleContains(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	seedTask(t, repo, "Buy Milk", models.NewDate(2030, time.June, 1), false)
	seedTask(t, repo, "Buy Milk Again", models.NewDate(2030, time.June, 2), true)
	seedTask(t, repo, "Walk dog", models.NewDate(2030, time.June, 3), false)

	t.Run("substring across all tasks", func(t *testing.T) {
		tasks, err := repo.FindByTitleContains(ctx, "Milk", nil)
		if err != nil {
			t.Fatalf("FindByTitleContains() error = %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("len = %d, want 2", len(tasks))
		}
	})

	t.Run("restricted to incomplete", func(t *testing.T) {
		tasks, err := repo.FindByTitleContains(ctx, "Milk", boolPtr(false))
		if err != nil {
			t.Fatalf("FindByTitleContains() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "Buy Milk" {
			t.Errorf("tasks = %+v, want only %q", tasks, "Buy Milk")
		}
	})

	t.Run("no match", func(t *testing.T) {
		tasks, err := repo.FindByTitleContains(ctx, "Groceries", nil)
		if err != nil {
			t.Fatalf("FindByTitleContains() error = %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("len = %d, want 0", len(tasks))
		}
	})
}

func TestTaskRepository_DeleteAndExists(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := seedTask(t, repo, "temp", models.NewDate(2030, time.July, 1), false)

	exists, err := repo.ExistsByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("ExistsByID() error = %v", err)
	}
	if !exists {
		t.Fatal("ExistsByID() = false for existing task")
	}

	if err := repo.DeleteByID(ctx, task.ID); err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}

	exists, err = repo.ExistsByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("ExistsByID() error = %v", err)
	}
	if exists {
		t.Error("ExistsByID() = true after delete")
	}

	found, err := repo.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found != nil {
		t.Errorf("FindByID() = %+v after delete, want nil", found)
	}
}
