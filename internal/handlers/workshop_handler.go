package handlers

import (
	"html/template"
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"podcastwerkstatt/internal/content"
	"podcastwerkstatt/internal/scoring"
	"podcastwerkstatt/internal/service"
	"podcastwerkstatt/internal/workshop"
)

// WorkshopHandler drives the script editor over HTTP
type WorkshopHandler struct {
	projectService *service.ProjectService
	templates      *template.Template
	rng            *rand.Rand
}

// NewWorkshopHandler creates a new workshop handler
func NewWorkshopHandler(projectService *service.ProjectService, templates *template.Template, rng *rand.Rand) *WorkshopHandler {
	return &WorkshopHandler{
		projectService: projectService,
		templates:      templates,
		rng:            rng,
	}
}

// In-memory storage for workshop states (in production, use Redis or similar)
var workshopStates = make(map[string]*workshop.Session) // sessionID -> workshop session

func clearWorkshopState(sessionID string) {
	delete(workshopStates, sessionID)
}

// session returns the team's editing session, starting one from the stored
// project if needed.
func (h *WorkshopHandler) session(r *http.Request, sessionID string) (*workshop.Session, error) {
	if s, exists := workshopStates[sessionID]; exists {
		return s, nil
	}

	project := GetProjectFromContext(r.Context())
	topic, err := h.projectService.Topic(project)
	if err != nil {
		return nil, err
	}
	s := workshop.New(*project, topic)
	workshopStates[sessionID] = s
	return s, nil
}

// ShowWorkshop renders the script editor
func (h *WorkshopHandler) ShowWorkshop(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	s, err := h.session(r, sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting workshop", err)
		return
	}

	project := s.Project()
	topic := s.Topic()
	card := s.ActiveCard()

	data := map[string]interface{}{
		"Title":          project.TeamName + " - Skript-Werkstatt",
		"Project":        project,
		"Topic":          topic,
		"Cards":          buildCardViews(project.Script, s.Active()),
		"ActiveCard":     card,
		"ActiveIndex":    s.Active(),
		"WordCount":      scoring.WordCount(card.Text),
		"TotalWords":     scoring.TotalWords(project.Script),
		"SpeechSeconds":  scoring.SpeechSeconds(project.Script),
		"SpeechZone":     scoring.SpeechZone(project.Script),
		"DisplayedScore": s.DisplayedScore(),
		"Level":          buildLevelView(s.DisplayedScore()),
		"Badges":         buildBadgeViews(&project),
		"WordBank":       buildWordBankViews(project.Script, topic.WordBank),
		"Ideas":          content.ContentIdeas(topic, card.Type),
		"Starters":       topic.SentenceStarters[card.Type],
	}
	if err := h.templates.ExecuteTemplate(w, "workshop.tmpl", data); err != nil {
		log.Printf("Error rendering workshop template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// SetActiveCard switches the focused card
func (h *WorkshopHandler) SetActiveCard(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	s, err := h.session(r, sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting workshop", err)
		return
	}

	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid card index", "", err)
		return
	}
	if err := s.SetActive(idx); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid card index", "", err)
		return
	}
	http.Redirect(w, r, "/workshop", http.StatusSeeOther)
}

// UpdateText applies a text edit to a card and persists the committed state
func (h *WorkshopHandler) UpdateText(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	s, err := h.session(r, sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting workshop", err)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	idx, err := strconv.Atoi(r.FormValue("card"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid card index", "", err)
		return
	}

	update, err := s.UpdateText(idx, r.FormValue("text"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid card index", "Error updating card", err)
		return
	}
	h.commit(w, r, sessionID, update)
}

// InsertStarter appends a sentence starter or suggestion to the active card
func (h *WorkshopHandler) InsertStarter(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	s, err := h.session(r, sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting workshop", err)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	text := r.FormValue("text")
	if text == "" {
		http.Redirect(w, r, "/workshop", http.StatusSeeOther)
		return
	}

	update, err := s.InsertText(text)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error inserting text", err)
		return
	}
	h.commit(w, r, sessionID, update)
}

// MagicExtend appends a random fitting suggestion to the active card
func (h *WorkshopHandler) MagicExtend(w http.ResponseWriter, r *http.Request) {
	sessionID := GetSessionFromContext(r.Context())

	s, err := h.session(r, sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting workshop", err)
		return
	}

	project := s.Project()
	suggestion := content.AutoSuggestion(s.Topic(), s.ActiveCard(), project.TeamName, h.rng)
	if suggestion == "" {
		http.Redirect(w, r, "/workshop", http.StatusSeeOther)
		return
	}

	update, err := s.InsertText(suggestion)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error inserting suggestion", err)
		return
	}
	h.commit(w, r, sessionID, update)
}

// commit persists one edit's committed tuple and returns to the editor
func (h *WorkshopHandler) commit(w http.ResponseWriter, r *http.Request, sessionID string, update workshop.Update) {
	badgeIDs := make([]string, 0, len(update.NewBadges))
	for _, b := range update.NewBadges {
		badgeIDs = append(badgeIDs, b.ID)
	}
	if len(badgeIDs) > 0 {
		log.Printf("Team session %s unlocked badges: %v", sessionID, badgeIDs)
	}

	s := workshopStates[sessionID]
	unlocked := s.Project().UnlockedBadges
	if _, err := h.projectService.CommitScript(sessionID, update.Script, update.TotalScore, unlocked); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error saving script", err)
		return
	}

	http.Redirect(w, r, "/workshop", http.StatusSeeOther)
}
