package repository

import (
	"encoding/json"
	"time"

	"github.com/mvtran/taskplanner/internal/database"
	"github.com/mvtran/taskplanner/internal/models"
	"github.com/mvtran/taskplanner/internal/taskview"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByUser returns all of a user's tasks ordered by created_at ascending.
func (r *GormTaskRepository) ListByUser(userID uint64) ([]taskview.RawRecord, error) {
	var tasks []models.Task
	err := r.db.
		Scopes(database.OwnedBy(userID)).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return toRawRecords(tasks), nil
}

// ListByUserInRange returns the user's tasks due within [start, end).
func (r *GormTaskRepository) ListByUserInRange(userID uint64, start, end time.Time) ([]taskview.RawRecord, error) {
	var tasks []models.Task
	err := r.db.
		Scopes(database.OwnedBy(userID), database.DueBetween(start, end)).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return toRawRecords(tasks), nil
}

// FindByID finds one of the user's tasks by ID.
func (r *GormTaskRepository) FindByID(userID uint64, id string) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Create stores a new task.
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// UpdateFields applies a partial field replacement keyed by id. Returns
// gorm.ErrRecordNotFound when the task does not exist for this user.
func (r *GormTaskRepository) UpdateFields(userID uint64, id string, fields map[string]any) error {
	// Map-based updates bypass the model's json serializer, so tags are
	// marshalled here.
	if tags, ok := fields["tags"].([]string); ok {
		data, err := json.Marshal(tags)
		if err != nil {
			return err
		}
		fields["tags"] = string(data)
	}

	result := r.db.
		Model(&models.Task{}).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete soft deletes one of the user's tasks.
func (r *GormTaskRepository) Delete(userID uint64, id string) error {
	result := r.db.
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
