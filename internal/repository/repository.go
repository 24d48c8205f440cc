package repository

import (
	"time"

	"github.com/mvtran/taskplanner/internal/models"
	"github.com/mvtran/taskplanner/internal/taskview"
)

// TaskRepository is the per-user document store the view engine reads from
// and mutates. Reads return loosely-typed raw records; the taskview
// normalizer supplies defaults for anything missing.
type TaskRepository interface {
	// ListByUser returns all of a user's records ordered by created_at
	// ascending.
	ListByUser(userID uint64) ([]taskview.RawRecord, error)

	// ListByUserInRange returns the user's records with a due date in
	// [start, end), for the calendar-day view.
	ListByUserInRange(userID uint64, start, end time.Time) ([]taskview.RawRecord, error)

	// FindByID finds one of the user's tasks by its opaque ID.
	FindByID(userID uint64, id string) (*models.Task, error)

	// Create stores a new task.
	Create(task *models.Task) error

	// UpdateFields applies a partial field replacement keyed by id.
	UpdateFields(userID uint64, id string, fields map[string]any) error

	// Delete removes one of the user's tasks.
	Delete(userID uint64, id string) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// toRawRecord converts a stored task into the read surface the engine
// consumes. Timestamps travel as RFC3339 strings; a missing due date stays
// empty and falls back at normalization time.
func toRawRecord(task models.Task) taskview.RawRecord {
	raw := taskview.RawRecord{
		ID:          task.ID,
		Title:       task.Title,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		Tags:        task.Tags,
		Priority:    task.Priority,
		IsCompleted: task.IsCompleted,
		Description: task.Description,
	}
	if task.DueDate != nil {
		raw.DueDate = task.DueDate.Format(time.RFC3339)
	}
	return raw
}

func toRawRecords(tasks []models.Task) []taskview.RawRecord {
	raws := make([]taskview.RawRecord, len(tasks))
	for i, task := range tasks {
		raws[i] = toRawRecord(task)
	}
	return raws
}
