package taskview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func TestNormalize_FullRecord(t *testing.T) {
	due := time.Date(2024, 3, 12, 18, 30, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	task := Normalize(RawRecord{
		ID:          "abc-123",
		Title:       "Buy milk",
		DueDate:     due.Format(time.RFC3339),
		CreatedAt:   created.Format(time.RFC3339),
		Tags:        []string{"Home", "Personal"},
		Priority:    "high",
		IsCompleted: true,
		Description: "2% if they have it",
	}, testNow)

	assert.Equal(t, "abc-123", task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.True(t, task.DueDate.Equal(due))
	assert.True(t, task.CreatedAt.Equal(created))
	assert.Equal(t, []Tag{
		{Text: "Home", Color: ColorHome},
		{Text: "Personal", Color: ColorPersonal},
	}, task.Tags)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.True(t, task.IsCompleted)
	assert.Equal(t, "2% if they have it", task.Description)
}

func TestNormalize_MissingFieldsGetDefaults(t *testing.T) {
	task := Normalize(RawRecord{ID: "x"}, testNow)

	assert.Equal(t, "", task.Title)
	assert.True(t, task.DueDate.Equal(testNow))
	assert.True(t, task.CreatedAt.Equal(testNow))
	assert.Empty(t, task.Tags)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.False(t, task.IsCompleted)
}

func TestNormalize_MalformedTimestampFallsBackToNow(t *testing.T) {
	task := Normalize(RawRecord{
		DueDate:   "yesterday-ish",
		CreatedAt: "2024-13-45",
	}, testNow)

	assert.True(t, task.DueDate.Equal(testNow))
	assert.True(t, task.CreatedAt.Equal(testNow))
}

func TestNormalize_PriorityCasing(t *testing.T) {
	tests := []struct {
		raw  string
		want Priority
	}{
		{"HIGH", PriorityHigh},
		{"High", PriorityHigh},
		{"low", PriorityLow},
		{"LOW", PriorityLow},
		{"medium", PriorityMedium},
		{"", PriorityMedium},
		{"urgent", PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			task := Normalize(RawRecord{Priority: tt.raw}, testNow)
			assert.Equal(t, tt.want, task.Priority)
		})
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	tasks := NormalizeAll([]RawRecord{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second"},
		{ID: "3", Title: "third"},
	}, testNow)

	assert.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
}
