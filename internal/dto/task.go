package dto

import (
	"time"

	"github.com/mvtran/taskplanner/internal/models"
	"github.com/mvtran/taskplanner/internal/services"
	"github.com/mvtran/taskplanner/internal/taskview"
)

// TaskDTO represents a stored task in API responses.
type TaskDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
	Priority    string     `json:"priority"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ViewTaskDTO represents a normalized display task inside a view bucket.
type ViewTaskDTO struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	DueDate     time.Time      `json:"due_date"`
	CreatedAt   time.Time      `json:"created_at"`
	Tags        []taskview.Tag `json:"tags"`
	Priority    string         `json:"priority"`
	IsCompleted bool           `json:"is_completed"`
	Description string         `json:"description"`
}

// ViewResponse is the categorized, filtered view of a user's tasks.
type ViewResponse struct {
	Overdue   []ViewTaskDTO `json:"overdue"`
	Today     []ViewTaskDTO `json:"today"`
	Tomorrow  []ViewTaskDTO `json:"tomorrow"`
	ThisWeek  []ViewTaskDTO `json:"this_week"`
	Later     []ViewTaskDTO `json:"later"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// DayResponse is the calendar-day view.
type DayResponse struct {
	Date  string        `json:"date"`
	Tasks []ViewTaskDTO `json:"tasks"`
}

// ToTaskDTO converts a stored task to TaskDTO.
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Tags:        task.Tags,
		Priority:    task.Priority,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToViewTaskDTO converts a normalized display task.
func ToViewTaskDTO(task taskview.Task) ViewTaskDTO {
	return ViewTaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		Tags:        task.Tags,
		Priority:    string(task.Priority),
		IsCompleted: task.IsCompleted,
		Description: task.Description,
	}
}

// ToViewTaskDTOs converts a bucket of display tasks, preserving order.
func ToViewTaskDTOs(tasks []taskview.Task) []ViewTaskDTO {
	dtos := make([]ViewTaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToViewTaskDTO(task)
	}
	return dtos
}

// ToViewResponse converts a reconciled view snapshot.
func ToViewResponse(view *services.View) ViewResponse {
	return ViewResponse{
		Overdue:   ToViewTaskDTOs(view.Buckets.Overdue),
		Today:     ToViewTaskDTOs(view.Buckets.Today),
		Tomorrow:  ToViewTaskDTOs(view.Buckets.Tomorrow),
		ThisWeek:  ToViewTaskDTOs(view.Buckets.ThisWeek),
		Later:     ToViewTaskDTOs(view.Buckets.Later),
		FetchedAt: view.FetchedAt,
	}
}
