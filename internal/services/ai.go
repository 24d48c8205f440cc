package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mvtran/taskplanner/internal/constants"
	"github.com/sashabaranov/go-openai"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksSuggested     = errors.New("AI did not suggest any tasks")
	ErrAINoValidSuggestions   = errors.New("no valid task suggestions could be produced")
)

// AIService extracts task suggestions from free text using OpenAI.
type AIService struct {
	client *openai.Client
}

// SuggestedTask is one task suggestion. Suggestions are never persisted;
// the client turns accepted ones into regular create calls.
type SuggestedTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SuggestTasks analyzes text and extracts task suggestions.
func (s *AIService) SuggestTasks(ctx context.Context, text string) ([]SuggestedTask, error) {
	if s == nil || s.client == nil {
		return nil, ErrAIServiceNotConfigured
	}

	currentTime := time.Now().Format("2006-01-02 15:04:05")
	prompt := fmt.Sprintf(`You are a task extraction assistant. Extract concrete tasks from the text below.

Current time: %s

Text:
%s

Return a JSON array of the extracted tasks in this shape:
[
  {
    "title": "short task title",
    "description": "details about the task",
    "due_date": "deadline in ISO8601, e.g. 2025-10-28T23:59:59Z, or null when the text gives none",
    "priority": "low, medium or high",
    "tags": ["short labels such as Work, Home, Study"]
  }
]

Rules:
- Return an empty array [] when the text contains no tasks
- Convert relative deadlines ("tomorrow", "next week") into concrete instants
- due_date must be an ISO8601 string or null
- Return only the JSON, no commentary`, currentTime, text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content

	var tasks []SuggestedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return validateSuggestions(tasks)
}

// validateSuggestions drops blank titles and already-expired deadlines and
// canonicalizes priorities, keeping the suggestion list safe to hand to the
// create path as-is.
func validateSuggestions(tasks []SuggestedTask) ([]SuggestedTask, error) {
	if len(tasks) == 0 {
		return nil, ErrAINoTasksSuggested
	}
	if len(tasks) > constants.MaxSuggestedTasks {
		return nil, fmt.Errorf("AI suggested too many tasks (max %d)", constants.MaxSuggestedTasks)
	}

	valid := make([]SuggestedTask, 0, len(tasks))
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, task := range tasks {
		if strings.TrimSpace(task.Title) == "" {
			continue
		}

		if task.DueDate != nil && task.DueDate.Before(cutoff) {
			task.DueDate = nil
		}

		if priority, err := canonicalPriority(task.Priority); err == nil {
			task.Priority = priority
		} else {
			task.Priority = "medium"
		}

		valid = append(valid, task)
	}

	if len(valid) == 0 {
		return nil, ErrAINoValidSuggestions
	}

	return valid, nil
}
