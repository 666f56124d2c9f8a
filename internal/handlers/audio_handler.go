package handlers

import (
	"net/http"
	"path/filepath"

	"podcastwerkstatt/internal/audio"
)

// AudioHandler serves narrated lesson and script audio
type AudioHandler struct {
	ttsService *audio.TTSService
	audioDir   string
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(ttsService *audio.TTSService, audioDir string) *AudioHandler {
	return &AudioHandler{
		ttsService: ttsService,
		audioDir:   audioDir,
	}
}

// Narrate generates (or reuses) an MP3 for the posted text and redirects to
// the cached file.
func (h *AudioHandler) Narrate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	text := r.FormValue("text")
	if text == "" {
		http.Error(w, "Nothing to narrate", http.StatusBadRequest)
		return
	}

	filename, err := h.ttsService.GenerateAudioFile(text)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error generating narration", err)
		return
	}

	http.Redirect(w, r, "/audio/files/"+filename, http.StatusSeeOther)
}

// ServeFile serves a cached narration file
func (h *AudioHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(r.PathValue("filename"))
	http.ServeFile(w, r, filepath.Join(h.audioDir, filename))
}
