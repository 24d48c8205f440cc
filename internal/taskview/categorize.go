package taskview

import "time"

// Buckets holds the temporal partition of a task sequence. Every task lands
// in exactly one bucket; order within a bucket is the upstream fetch order.
type Buckets struct {
	Overdue  []Task `json:"overdue"`
	Today    []Task `json:"today"`
	Tomorrow []Task `json:"tomorrow"`
	ThisWeek []Task `json:"this_week"`
	Later    []Task `json:"later"`
}

// Categorize partitions tasks by due date relative to now. Predicates are
// evaluated in priority order per task: same calendar day, next calendar
// day, same Sunday-start week. Anything outside those windows goes to
// Overdue (before today) or Later (after this week) rather than being
// dropped from view.
func Categorize(tasks []Task, now time.Time) Buckets {
	var b Buckets
	for _, task := range tasks {
		switch {
		case isSameDay(task.DueDate, now):
			b.Today = append(b.Today, task)
		case isSameDay(task.DueDate, now.AddDate(0, 0, 1)):
			b.Tomorrow = append(b.Tomorrow, task)
		case isSameWeek(task.DueDate, now):
			b.ThisWeek = append(b.ThisWeek, task)
		case task.DueDate.Before(startOfDay(now)):
			b.Overdue = append(b.Overdue, task)
		default:
			b.Later = append(b.Later, task)
		}
	}
	return b
}

// Filtered applies the same filter to every bucket.
func (b Buckets) Filtered(f Filter) Buckets {
	return Buckets{
		Overdue:  f.Apply(b.Overdue),
		Today:    f.Apply(b.Today),
		Tomorrow: f.Apply(b.Tomorrow),
		ThisWeek: f.Apply(b.ThisWeek),
		Later:    f.Apply(b.Later),
	}
}

// Total returns the number of tasks across all buckets.
func (b Buckets) Total() int {
	return len(b.Overdue) + len(b.Today) + len(b.Tomorrow) + len(b.ThisWeek) + len(b.Later)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns midnight of the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func isSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isSameWeek(t, now time.Time) bool {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)
	return !t.Before(start) && t.Before(end)
}
