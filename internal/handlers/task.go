package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mvtran/taskplanner/internal/constants"
	"github.com/mvtran/taskplanner/internal/dto"
	apierrors "github.com/mvtran/taskplanner/internal/errors"
	"github.com/mvtran/taskplanner/internal/middleware"
	"github.com/mvtran/taskplanner/internal/services"
	"github.com/mvtran/taskplanner/internal/taskview"
)

// TaskHandler coordinates task and view HTTP handlers.
type TaskHandler struct {
	viewService *services.ViewService
	aiService   *services.AIService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(viewService *services.ViewService, aiService *services.AIService) *TaskHandler {
	return &TaskHandler{
		viewService: viewService,
		aiService:   aiService,
	}
}

// filterFromQuery reads the filter triple from query parameters. Absent
// parameters leave the corresponding predicate disabled.
func filterFromQuery(c *gin.Context) taskview.Filter {
	return taskview.Filter{
		Search:   c.Query("search"),
		Status:   c.DefaultQuery("status", taskview.FilterAll),
		Priority: c.DefaultQuery("priority", taskview.FilterAll),
	}
}

// ListTasks returns the user's full task list in created-at order.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	tasks, err := h.viewService.ListTasks(userID, filterFromQuery(c))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToViewTaskDTOs(tasks)})
}

// GetView returns the categorized, filtered view of the user's tasks.
func (h *TaskHandler) GetView(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	h.respondView(c, http.StatusOK, userID, filterFromQuery(c), h.viewService.LoadView)
}

// GetDay returns the calendar-day view for the date query parameter
// (defaults to today).
func (h *TaskHandler) GetDay(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(constants.DateParamLayout, dateStr, time.Local)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	tasks, err := h.viewService.LoadDay(userID, day, filterFromQuery(c))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DayResponse{
		Date:  day.Format(constants.DateParamLayout),
		Tasks: dto.ToViewTaskDTOs(tasks),
	})
}

// CreateTask creates a new task and returns the refreshed view.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		Tags        []string   `json:"tags"`
		Priority    string     `json:"priority"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	filter := filterFromQuery(c)
	h.respondView(c, http.StatusCreated, userID, filter, func(userID uint64, f taskview.Filter) (*services.View, error) {
		return h.viewService.CreateTask(userID, services.CreateTaskInput{
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
			Tags:        req.Tags,
			Priority:    req.Priority,
		}, f)
	})
}

// UpdateTask applies a partial edit and returns the refreshed view.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateTaskRequest struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		Tags        []string   `json:"tags"`
		Priority    *string    `json:"priority"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	id := c.Param("id")
	h.respondView(c, http.StatusOK, userID, filterFromQuery(c), func(userID uint64, f taskview.Filter) (*services.View, error) {
		return h.viewService.UpdateTask(userID, id, services.UpdateTaskInput{
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
			Tags:        req.Tags,
			Priority:    req.Priority,
		}, f)
	})
}

// ToggleTask flips a task's completion flag and returns the refreshed view.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id := c.Param("id")
	h.respondView(c, http.StatusOK, userID, filterFromQuery(c), func(userID uint64, f taskview.Filter) (*services.View, error) {
		return h.viewService.ToggleTask(userID, id, f)
	})
}

// DeleteTask removes a task and returns the refreshed view.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id := c.Param("id")
	h.respondView(c, http.StatusOK, userID, filterFromQuery(c), func(userID uint64, f taskview.Filter) (*services.View, error) {
		return h.viewService.DeleteTask(userID, id, f)
	})
}

// SuggestTasks extracts task suggestions from free text using AI.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type SuggestTasksRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req SuggestTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "AI suggestions are not configured. Set OPENAI_API_KEY.")
		return
	}

	suggestions, err := h.aiService.SuggestTasks(context.Background(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAINoTasksSuggested), errors.Is(err, services.ErrAINoValidSuggestions):
			c.JSON(http.StatusOK, gin.H{"tasks": []services.SuggestedTask{}})
		default:
			apierrors.InternalError(c, fmt.Sprintf("Failed to suggest tasks: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": suggestions})
}

// respondView runs a view-producing operation and writes the result. A
// fetch that lost the race to a newer one is retried once: the newer
// snapshot is the one the client should see.
func (h *TaskHandler) respondView(c *gin.Context, status int, userID uint64, filter taskview.Filter, op func(uint64, taskview.Filter) (*services.View, error)) {
	view, err := op(userID, filter)
	if errors.Is(err, services.ErrViewSuperseded) {
		view, err = h.viewService.LoadView(userID, filter)
	}
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(status, dto.ToViewResponse(view))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrDueDateRequired),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
