package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"podcastwerkstatt/internal/scoring"
	"podcastwerkstatt/internal/service"
)

// PrintHandler renders the printable script view
type PrintHandler struct {
	projectService *service.ProjectService
	templates      *template.Template
	sanitizer      *bluemonday.Policy
}

// NewPrintHandler creates a new print handler
func NewPrintHandler(projectService *service.ProjectService, templates *template.Template) *PrintHandler {
	return &PrintHandler{
		projectService: projectService,
		templates:      templates,
		sanitizer:      bluemonday.StrictPolicy(),
	}
}

// printCard is one script section prepared for the print layout
type printCard struct {
	Title     string
	Text      template.HTML
	WordCount int
}

// ShowPrint renders the script as a printer-friendly page
func (h *PrintHandler) ShowPrint(w http.ResponseWriter, r *http.Request) {
	project := GetProjectFromContext(r.Context())

	topic, err := h.projectService.Topic(project)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error resolving topic", err)
		return
	}

	cards := make([]printCard, 0, len(project.Script))
	for _, card := range project.Script {
		cards = append(cards, printCard{
			Title:     card.Title,
			Text:      h.renderText(card.Text),
			WordCount: scoring.WordCount(card.Text),
		})
	}

	data := map[string]interface{}{
		"Title":         project.TeamName + " - Skript",
		"Project":       project,
		"Topic":         topic,
		"Cards":         cards,
		"TotalWords":    scoring.TotalWords(project.Script),
		"SpeechSeconds": scoring.SpeechSeconds(project.Script),
	}
	if err := h.templates.ExecuteTemplate(w, "print.tmpl", data); err != nil {
		log.Printf("Error rendering print template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// renderText strips any markup from authored text and preserves line breaks
func (h *PrintHandler) renderText(text string) template.HTML {
	clean := h.sanitizer.Sanitize(text)
	clean = strings.ReplaceAll(clean, "\n", "<br>")
	return template.HTML(clean)
}
