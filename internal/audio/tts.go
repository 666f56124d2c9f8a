// Package audio narrates lesson stories and script text via the free
// Google Translate text-to-speech endpoint, caching generated MP3 files on
// disk. Narration is an output side effect; nothing in the scoring or
// lesson logic depends on it.
package audio

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"podcastwerkstatt/internal/scoring"
)

// TTSService provides German text-to-speech for lesson and script text
type TTSService struct {
	audioDir string
}

// NewTTSService creates a new TTS service caching files under audioDir
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
	}
}

// GenerateAudioFile converts text to speech and saves it as MP3, returning
// the cache filename. Speaker labels are stripped before narration so the
// voice reads the script, not its structure. Files are keyed by a content
// hash because lesson texts are far too long for name-mangled filenames.
func (s *TTSService) GenerateAudioFile(text string) (string, error) {
	spoken := scoring.StripSpeakerLabels(text)

	sum := sha256.Sum256([]byte(spoken))
	filename := fmt.Sprintf("tts_%s.mp3", hex.EncodeToString(sum[:8]))
	path := filepath.Join(s.audioDir, filename)

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio cache directory: %w", err)
	}

	if err := s.generateUsingGoogleTTS(spoken, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech API
// This is a simple, free option that doesn't require API keys
func (s *TTSService) generateUsingGoogleTTS(text, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "de") // Language: German
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (required by Google)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// DeleteAudioFile removes a cached audio file
func (s *TTSService) DeleteAudioFile(filename string) error {
	return os.Remove(filepath.Join(s.audioDir, filename))
}
