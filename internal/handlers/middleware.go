package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"podcastwerkstatt/internal/models"
	"podcastwerkstatt/internal/service"
	"podcastwerkstatt/internal/utils"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	SessionContextKey ContextKey = "teamSession"
	ProjectContextKey ContextKey = "project"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	projectService *service.ProjectService
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(projectService *service.ProjectService) *Middleware {
	return &Middleware{projectService: projectService}
}

// WithSession ensures every request carries a team session identifier,
// minting a cookie on first contact. There is no login; the cookie only
// keys the team's stored project.
func (m *Middleware) WithSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(TeamSessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		}
		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     TeamSessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int((24 * time.Hour).Seconds()),
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, sessionID)
		next(w, r.WithContext(ctx))
	}
}

// RequireProject loads the session's project and redirects to the team
// setup page when none exists. Implies WithSession.
func (m *Middleware) RequireProject(next http.HandlerFunc) http.HandlerFunc {
	return m.WithSession(func(w http.ResponseWriter, r *http.Request) {
		sessionID := GetSessionFromContext(r.Context())

		project, err := m.projectService.Get(sessionID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading project", err)
			return
		}
		if project == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), ProjectContextKey, project)
		next(w, r.WithContext(ctx))
	})
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetSessionFromContext retrieves the team session ID from the request context
func GetSessionFromContext(ctx context.Context) string {
	sessionID, ok := ctx.Value(SessionContextKey).(string)
	if !ok {
		return ""
	}
	return sessionID
}

// GetProjectFromContext retrieves the loaded project from the request context
func GetProjectFromContext(ctx context.Context) *models.Project {
	project, ok := ctx.Value(ProjectContextKey).(*models.Project)
	if !ok {
		return nil
	}
	return project
}
