package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mvtran/taskplanner/internal/models"
	"github.com/mvtran/taskplanner/internal/repository"
	"github.com/mvtran/taskplanner/internal/taskview"
	"gorm.io/gorm"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleEmpty       = errors.New("title cannot be empty")
	ErrDueDateRequired  = errors.New("due date is required")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
	ErrTaskNotFound     = errors.New("task not found")

	// ErrViewSuperseded marks a fetch that completed after a newer fetch
	// was issued for the same user. The caller must discard the result
	// instead of letting a stale snapshot overwrite a fresher one.
	ErrViewSuperseded = errors.New("view superseded by a newer fetch")
)

// ViewService coordinates mutations against the task store with the
// refetch that re-derives the displayed view. The view is never patched
// locally: every mutation is followed by a fresh read of authoritative
// state, so the caller observes read-after-write consistency without any
// local/remote divergence to reconcile.
type ViewService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time

	mu       sync.Mutex
	fetchSeq map[uint64]uint64
}

// NewViewService creates a new ViewService.
func NewViewService(taskRepo repository.TaskRepository) *ViewService {
	return &ViewService{
		taskRepo: taskRepo,
		now:      time.Now,
		fetchSeq: make(map[uint64]uint64),
	}
}

// View is one categorized, filtered snapshot of a user's tasks.
type View struct {
	Seq       uint64
	FetchedAt time.Time
	Buckets   taskview.Buckets
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Tags        []string
	Priority    string
}

// UpdateTaskInput represents a partial field replacement. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Tags        []string
	Priority    *string
}

// LoadView fetches the user's tasks, normalizes them, buckets them by due
// date relative to now and applies the filter to each bucket. Fetches are
// sequence-stamped per user: if a newer fetch was issued while this one was
// in flight, the result is discarded with ErrViewSuperseded.
func (s *ViewService) LoadView(userID uint64, filter taskview.Filter) (*View, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	seq := s.nextSeq(userID)

	raws, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	if s.currentSeq(userID) != seq {
		return nil, ErrViewSuperseded
	}

	now := s.now()
	tasks := taskview.NormalizeAll(raws, now)

	return &View{
		Seq:       seq,
		FetchedAt: now,
		Buckets:   taskview.Categorize(tasks, now).Filtered(filter),
	}, nil
}

// ListTasks returns the user's full task list, normalized and filtered, in
// created-at order.
func (s *ViewService) ListTasks(userID uint64, filter taskview.Filter) ([]taskview.Task, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	raws, err := s.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	return filter.Apply(taskview.NormalizeAll(raws, s.now())), nil
}

// LoadDay returns the user's tasks due on a single calendar day, normalized
// and filtered, in fetch order.
func (s *ViewService) LoadDay(userID uint64, day time.Time, filter taskview.Filter) ([]taskview.Task, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	raws, err := s.taskRepo.ListByUserInRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	return filter.Apply(taskview.NormalizeAll(raws, s.now())), nil
}

// CreateTask validates the input, stores the task and refetches the view.
// Validation failures surface before any store call; a store failure leaves
// the last fetched view intact because nothing was applied locally.
func (s *ViewService) CreateTask(userID uint64, input CreateTaskInput, filter taskview.Filter) (*View, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.DueDate == nil {
		return nil, ErrDueDateRequired
	}

	priority, err := canonicalPriority(input.Priority)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Tags:        cleanTags(input.Tags),
		Priority:    priority,
		IsCompleted: false,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.LoadView(userID, filter)
}

// UpdateTask applies a partial edit keyed by id and refetches the view.
func (s *ViewService) UpdateTask(userID uint64, id string, input UpdateTaskInput, filter taskview.Filter) (*View, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	fields := map[string]any{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}
	if input.Tags != nil {
		fields["tags"] = cleanTags(input.Tags)
	}
	if input.Priority != nil {
		priority, err := canonicalPriority(*input.Priority)
		if err != nil {
			return nil, err
		}
		fields["priority"] = priority
	}

	if len(fields) > 0 {
		if err := s.taskRepo.UpdateFields(userID, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTaskNotFound
			}
			return nil, fmt.Errorf("failed to update task: %w", err)
		}
	}

	return s.LoadView(userID, filter)
}

// ToggleTask flips the completion flag of a task and refetches the view.
func (s *ViewService) ToggleTask(userID uint64, id string, filter taskview.Filter) (*View, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	task, err := s.taskRepo.FindByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	fields := map[string]any{"is_completed": !task.IsCompleted}
	if err := s.taskRepo.UpdateFields(userID, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}

	return s.LoadView(userID, filter)
}

// DeleteTask removes a task and refetches the view.
func (s *ViewService) DeleteTask(userID uint64, id string, filter taskview.Filter) (*View, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	if err := s.taskRepo.Delete(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return s.LoadView(userID, filter)
}

func (s *ViewService) nextSeq(userID uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchSeq[userID]++
	return s.fetchSeq[userID]
}

func (s *ViewService) currentSeq(userID uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchSeq[userID]
}

// canonicalPriority validates a priority at the mutation boundary. Unlike
// the read-side normalizer, writes fail loudly on unrecognized values.
func canonicalPriority(raw string) (string, error) {
	if raw == "" {
		return models.PriorityMedium, nil
	}
	switch strings.ToLower(raw) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return strings.ToLower(raw), nil
	default:
		return "", ErrInvalidPriority
	}
}

// cleanTags trims labels and drops empties, preserving order and
// duplicates.
func cleanTags(labels []string) []string {
	tags := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		tags = append(tags, label)
	}
	return tags
}
