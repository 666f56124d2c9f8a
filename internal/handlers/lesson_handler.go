package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"podcastwerkstatt/internal/content"
	"podcastwerkstatt/internal/lesson"
	"podcastwerkstatt/internal/service"
)

// LessonHandler drives the three learning missions over HTTP
type LessonHandler struct {
	projectService *service.ProjectService
	templates      *template.Template
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(projectService *service.ProjectService, templates *template.Template) *LessonHandler {
	return &LessonHandler{
		projectService: projectService,
		templates:      templates,
	}
}

// lessonState is one team's in-flight lesson
type lessonState struct {
	Kind    string
	Session *lesson.Session
}

// In-memory storage for lesson states (in production, use Redis or similar)
var lessonStates = make(map[string]*lessonState) // sessionID -> lessonState

func clearLessonState(sessionID string) {
	delete(lessonStates, sessionID)
}

// lessonSetup resolves a lesson kind to its content, mode and completion
// flag. The intro mission always runs the Grundgesetz lesson; basics and
// pro run the two halves of the team's topic lesson.
func (h *LessonHandler) lessonSetup(r *http.Request, kind string) (content.TopicLesson, lesson.Mode, service.LessonKind, bool) {
	project := GetProjectFromContext(r.Context())
	topic, err := h.projectService.Topic(project)
	if err != nil {
		return content.TopicLesson{}, "", "", false
	}

	switch kind {
	case "intro":
		return content.GeneralIntro(topic).Lesson, lesson.ModeBasics, service.LessonIntro, true
	case "basics":
		return topic.Lesson, lesson.ModeBasics, service.LessonA, true
	case "pro":
		return topic.Lesson, lesson.ModePro, service.LessonB, true
	default:
		return content.TopicLesson{}, "", "", false
	}
}

// StartLesson begins a mission, replacing any lesson already in flight
func (h *LessonHandler) StartLesson(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())
	project := GetProjectFromContext(r.Context())
	kind := r.PathValue("kind")

	lessonContent, mode, _, ok := h.lessonSetup(r, kind)
	if !ok {
		http.Error(w, "Unknown lesson", http.StatusNotFound)
		return
	}

	lessonStates[sessionID] = &lessonState{
		Kind:    kind,
		Session: lesson.New(mode, lessonContent, project.Score),
	}
	http.Redirect(w, r, "/lesson/"+kind, http.StatusSeeOther)
}

// ShowLesson renders the current lesson step
func (h *LessonHandler) ShowLesson(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())
	project := GetProjectFromContext(r.Context())
	kind := r.PathValue("kind")

	state, exists := lessonStates[sessionID]
	if !exists || state.Kind != kind {
		http.Redirect(w, r, "/lesson/"+kind+"/start", http.StatusSeeOther)
		return
	}
	s := state.Session

	topic, err := h.projectService.Topic(project)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error resolving topic", err)
		return
	}
	if kind == "intro" {
		topic = content.GeneralIntro(topic)
	}

	data := map[string]interface{}{
		"Title":           topic.SimpleTitle + " - Lern-Mission",
		"Project":         project,
		"Topic":           topic,
		"Kind":            kind,
		"Step":            s.Step(),
		"Index":           s.Index() + 1,
		"IntroStory":      s.Step() == lesson.StepIntro,
		"Quiz":            s.CurrentQuiz(),
		"Case":            s.CurrentCase(),
		"Check":           s.CurrentCheck(),
		"Selected":        s.Selected(),
		"CheckAnswer":     s.CheckAnswer(),
		"ShowExplanation": s.ShowExplanation(),
		"DisplayedScore":  s.DisplayedScore(),
		"SessionScore":    s.SessionScore(),
		"Finished":        s.Step() == lesson.StepFinished,
		"Total":           s.Total(),
	}
	if err := h.templates.ExecuteTemplate(w, "lesson.tmpl", data); err != nil {
		log.Printf("Error rendering lesson template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// SelectOption records a quiz or case answer
func (h *LessonHandler) SelectOption(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())
	kind := r.PathValue("kind")

	state, exists := lessonStates[sessionID]
	if !exists || state.Kind != kind {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	option, err := strconv.Atoi(r.FormValue("option"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	if err := state.Session.SelectOption(option); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid answer", "Error selecting option", err)
		return
	}
	http.Redirect(w, r, "/lesson/"+kind, http.StatusSeeOther)
}

// AnswerCheck records a yes/no/depends answer
func (h *LessonHandler) AnswerCheck(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())
	kind := r.PathValue("kind")

	state, exists := lessonStates[sessionID]
	if !exists || state.Kind != kind {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	answer := content.CheckAnswer(r.FormValue("answer"))

	if err := state.Session.AnswerCheck(answer); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid answer", "Error answering check", err)
		return
	}
	http.Redirect(w, r, "/lesson/"+kind, http.StatusSeeOther)
}

// Advance moves the lesson to the next item or step
func (h *LessonHandler) Advance(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())
	kind := r.PathValue("kind")

	state, exists := lessonStates[sessionID]
	if !exists || state.Kind != kind {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := state.Session.Advance(); err != nil {
		respondWithError(w, http.StatusBadRequest, "Cannot advance yet", "Error advancing lesson", err)
		return
	}
	http.Redirect(w, r, "/lesson/"+kind, http.StatusSeeOther)
}

// Confirm commits the finished lesson's points to the project
func (h *LessonHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())
	kind := r.PathValue("kind")

	state, exists := lessonStates[sessionID]
	if !exists || state.Kind != kind {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	_, _, lessonKind, ok := h.lessonSetup(r, kind)
	if !ok {
		http.Error(w, "Unknown lesson", http.StatusNotFound)
		return
	}

	var completeErr error
	err := state.Session.Confirm(func(total int) {
		_, _, completeErr = h.projectService.CompleteLesson(sessionID, lessonKind, total)
	})
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Lesson not finished", "Error confirming lesson", err)
		return
	}
	if completeErr != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error completing lesson", completeErr)
		return
	}

	clearLessonState(sessionID)
	// The workshop session caches a base score; a finished lesson changes
	// it, so force a fresh session on next entry.
	clearWorkshopState(sessionID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
