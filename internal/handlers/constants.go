package handlers

const (
	TeamSessionCookieName = "team_session_id"

	ErrInvalidFormData     = "Invalid form data"
	ErrNoActiveProject     = "No active project"
	ErrInternalServerError = "Internal server error"
)
