package taskview

import (
	"strings"
	"time"
)

// Priority is the canonical task priority after normalization.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RawRecord is a task as read from the store, before normalization. Every
// field is optional; timestamps are RFC3339 strings that may be empty or
// malformed.
type RawRecord struct {
	ID          string
	Title       string
	DueDate     string
	CreatedAt   string
	Tags        []string
	Priority    string
	IsCompleted bool
	Description string
}

// Task is the canonical display entity produced by normalization.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	DueDate     time.Time `json:"due_date"`
	Tags        []Tag     `json:"tags"`
	IsCompleted bool      `json:"is_completed"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description"`
}

// Normalize converts a raw record into a canonical Task. It is total:
// missing or malformed fields fall back to defaults instead of failing.
// Timestamps that cannot be parsed become now, which keeps the record
// visible but masks bad data; strict validation happens at the mutation
// boundary, not here.
func Normalize(raw RawRecord, now time.Time) Task {
	return Task{
		ID:          raw.ID,
		Title:       raw.Title,
		CreatedAt:   parseInstant(raw.CreatedAt, now),
		DueDate:     parseInstant(raw.DueDate, now),
		Tags:        FormatTags(raw.Tags),
		IsCompleted: raw.IsCompleted,
		Priority:    normalizePriority(raw.Priority),
		Description: raw.Description,
	}
}

// NormalizeAll normalizes a slice of raw records, preserving order.
func NormalizeAll(raws []RawRecord, now time.Time) []Task {
	tasks := make([]Task, len(raws))
	for i, raw := range raws {
		tasks[i] = Normalize(raw, now)
	}
	return tasks
}

func parseInstant(value string, now time.Time) time.Time {
	if value == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return now
	}
	return t.In(now.Location())
}

func normalizePriority(raw string) Priority {
	switch strings.ToLower(raw) {
	case string(PriorityLow):
		return PriorityLow
	case string(PriorityHigh):
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
