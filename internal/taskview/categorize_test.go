package taskview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// refNow is Sunday 2024-03-10 09:00, so the current week runs
// Mar 10 through Mar 16.
var refNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func taskDue(id string, due time.Time) Task {
	return Task{ID: id, Title: id, DueDate: due}
}

func TestCategorize_TemporalWindows(t *testing.T) {
	tasks := []Task{
		taskDue("today", time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)),
		taskDue("tomorrow", time.Date(2024, 3, 11, 0, 30, 0, 0, time.UTC)),
		taskDue("thursday", time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)),
		taskDue("next-week", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)),
		taskDue("last-month", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)),
	}

	b := Categorize(tasks, refNow)

	assert.Equal(t, []string{"today"}, ids(b.Today))
	assert.Equal(t, []string{"tomorrow"}, ids(b.Tomorrow))
	assert.Equal(t, []string{"thursday"}, ids(b.ThisWeek))
	assert.Equal(t, []string{"next-week"}, ids(b.Later))
	assert.Equal(t, []string{"last-month"}, ids(b.Overdue))
}

func TestCategorize_EveryTaskInExactlyOneBucket(t *testing.T) {
	var tasks []Task
	for d := -20; d <= 20; d++ {
		tasks = append(tasks, taskDue("t", refNow.AddDate(0, 0, d)))
	}

	b := Categorize(tasks, refNow)

	assert.Equal(t, len(tasks), b.Total())
}

func TestCategorize_TomorrowAcrossWeekBoundary(t *testing.T) {
	// Saturday evening: tomorrow is Sunday of the next week and must still
	// land in Tomorrow, not Later.
	saturday := time.Date(2024, 3, 16, 20, 0, 0, 0, time.UTC)
	b := Categorize([]Task{taskDue("sun", time.Date(2024, 3, 17, 8, 0, 0, 0, time.UTC))}, saturday)

	assert.Len(t, b.Tomorrow, 1)
	assert.Empty(t, b.Later)
}

func TestCategorize_EarlierThisWeekIsThisWeekNotOverdue(t *testing.T) {
	// Wednesday: Monday of the same week is past due but inside the
	// current week window.
	wednesday := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	b := Categorize([]Task{taskDue("mon", time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))}, wednesday)

	assert.Len(t, b.ThisWeek, 1)
	assert.Empty(t, b.Overdue)
}

func TestCategorize_PreservesFetchOrderWithinBucket(t *testing.T) {
	due := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	b := Categorize([]Task{taskDue("b", due), taskDue("a", due), taskDue("c", due)}, refNow)

	assert.Equal(t, []string{"b", "a", "c"}, ids(b.Today))
}

func TestCategorize_Empty(t *testing.T) {
	b := Categorize(nil, refNow)
	assert.Zero(t, b.Total())
}

func TestBucketsFiltered(t *testing.T) {
	done := taskDue("done", refNow)
	done.IsCompleted = true
	open := taskDue("open", refNow)

	b := Categorize([]Task{done, open}, refNow).Filtered(Filter{Status: StatusIncomplete})

	assert.Equal(t, []string{"open"}, ids(b.Today))
}

func ids(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}
