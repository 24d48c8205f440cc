package constants

// ContextKeyUserID is the session and gin-context key for the
// authenticated user ID.
const ContextKeyUserID = "user_id"

// SessionCookieName is the cookie holding the session ID.
const SessionCookieName = "task_session"

const (
	MinPasswordLength = 8

	// MaxSuggestedTasks caps how many tasks a single suggestion request
	// may return.
	MaxSuggestedTasks = 20

	// DateParamLayout is the wire format for calendar-day query params.
	DateParamLayout = "2006-01-02"
)
