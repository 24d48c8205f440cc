package taskview

import "strings"

// Status and priority filter values. "all" (or the empty string) disables
// the corresponding predicate.
const (
	FilterAll        = "all"
	StatusCompleted  = "completed"
	StatusIncomplete = "incomplete"
)

// Filter is the compound predicate applied to a task sequence: a
// case-insensitive title search, a completion status, and a priority. All
// three must match. The zero Filter matches everything.
type Filter struct {
	Search   string
	Status   string
	Priority string
}

// Apply returns the subsequence of tasks matching the filter, preserving
// order. It is idempotent and never mutates its input.
func (f Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches reports whether a single task passes the filter.
func (f Filter) Matches(task Task) bool {
	return f.matchesSearch(task) && f.matchesStatus(task) && f.matchesPriority(task)
}

func (f Filter) matchesSearch(task Task) bool {
	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(task.Title), strings.ToLower(f.Search))
}

func (f Filter) matchesStatus(task Task) bool {
	switch f.Status {
	case StatusCompleted:
		return task.IsCompleted
	case StatusIncomplete:
		return !task.IsCompleted
	default:
		return true
	}
}

func (f Filter) matchesPriority(task Task) bool {
	if f.Priority == "" || f.Priority == FilterAll {
		return true
	}
	return strings.EqualFold(f.Priority, string(task.Priority))
}
