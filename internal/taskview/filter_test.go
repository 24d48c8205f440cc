package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []Task {
	return []Task{
		{ID: "1", Title: "Buy milk", IsCompleted: true, Priority: PriorityHigh},
		{ID: "2", Title: "Walk the dog", IsCompleted: false, Priority: PriorityLow},
		{ID: "3", Title: "Milk the cows", IsCompleted: false, Priority: PriorityMedium},
		{ID: "4", Title: "File taxes", IsCompleted: true, Priority: PriorityMedium},
	}
}

func TestFilter_ZeroFilterIsIdentity(t *testing.T) {
	tasks := sampleTasks()

	assert.Equal(t, tasks, Filter{}.Apply(tasks))
	assert.Equal(t, tasks, Filter{Search: "", Status: FilterAll, Priority: FilterAll}.Apply(tasks))
}

func TestFilter_Idempotent(t *testing.T) {
	filters := []Filter{
		{},
		{Search: "milk"},
		{Status: StatusCompleted},
		{Priority: "high"},
		{Search: "a", Status: StatusIncomplete, Priority: "low"},
	}

	for _, f := range filters {
		once := f.Apply(sampleTasks())
		twice := f.Apply(once)
		assert.Equal(t, once, twice)
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter{Search: "MILK"}.Apply(sampleTasks())

	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilter_Status(t *testing.T) {
	completed := Filter{Status: StatusCompleted}.Apply(sampleTasks())
	incomplete := Filter{Status: StatusIncomplete}.Apply(sampleTasks())

	assert.Equal(t, []string{"1", "4"}, ids(completed))
	assert.Equal(t, []string{"2", "3"}, ids(incomplete))
}

func TestFilter_PriorityCaseInsensitive(t *testing.T) {
	got := Filter{Priority: "HIGH"}.Apply(sampleTasks())

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_Conjunction(t *testing.T) {
	included := Filter{Search: "milk", Status: StatusCompleted, Priority: "high"}.Apply(sampleTasks())
	excluded := Filter{Search: "milk", Status: StatusIncomplete, Priority: FilterAll}.Apply(sampleTasks())

	assert.Equal(t, []string{"1"}, ids(included))
	assert.Equal(t, []string{"3"}, ids(excluded))
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter{Status: StatusIncomplete}.Apply(sampleTasks())

	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestFilter_EmptyInput(t *testing.T) {
	assert.Empty(t, Filter{Search: "x"}.Apply(nil))
}
