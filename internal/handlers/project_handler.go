package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"podcastwerkstatt/internal/models"
	"podcastwerkstatt/internal/service"
	"podcastwerkstatt/internal/utils"
)

// ProjectHandler handles team setup, dashboard, and reset
type ProjectHandler struct {
	projectService *service.ProjectService
	templates      *template.Template
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, templates *template.Template) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		templates:      templates,
	}
}

// ShowHome displays the team setup page, or forwards an existing team to
// their dashboard.
func (h *ProjectHandler) ShowHome(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	project, err := h.projectService.Get(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading project", err)
		return
	}
	if project != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"Title":  "Podcast-Werkstatt Grundrechte",
		"Topics": buildTopicViews(),
		"Error":  r.URL.Query().Get("error"),
	}
	if err := h.templates.ExecuteTemplate(w, "home.tmpl", data); err != nil {
		log.Printf("Error rendering home template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// CreateProject forms a new team from the setup form
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	teamName := r.FormValue("teamName")
	topicID := models.TopicID(r.FormValue("topicId"))

	_, err := h.projectService.Create(sessionID, teamName, topicID)
	if err != nil {
		var validationErr utils.ValidationError
		var blockedErr service.BlockedTeamNameError
		switch {
		case errors.As(err, &validationErr):
			http.Redirect(w, r, "/?error=Bitte+gebt+einen+Teamnamen+ein", http.StatusSeeOther)
		case errors.As(err, &blockedErr):
			http.Redirect(w, r, "/?error=Dieser+Teamname+ist+nicht+erlaubt", http.StatusSeeOther)
		case errors.Is(err, service.ErrUnknownTopic):
			http.Redirect(w, r, "/?error=Bitte+wählt+ein+Thema", http.StatusSeeOther)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error creating project", err)
		}
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ShowDashboard displays the team's mission overview
func (h *ProjectHandler) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	project := GetProjectFromContext(r.Context())

	topic, err := h.projectService.Topic(project)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error resolving topic", err)
		return
	}

	data := map[string]interface{}{
		"Title":   project.TeamName + " - Podcast-Werkstatt",
		"Project": project,
		"Topic":   topic,
		"Badges":         buildBadgeViews(project),
		"Level":          buildLevelView(project.Score),
		"DisplayedScore": project.Score,
	}
	if err := h.templates.ExecuteTemplate(w, "dashboard.tmpl", data); err != nil {
		log.Printf("Error rendering dashboard template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// ResetProject discards the team's project after explicit confirmation
func (h *ProjectHandler) ResetProject(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	if err := h.projectService.Reset(sessionID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error resetting project", err)
		return
	}
	clearLessonState(sessionID)
	clearWorkshopState(sessionID)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
