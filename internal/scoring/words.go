// Package scoring holds the pure score and badge logic for podcast scripts.
// Everything here is derived from script text; nothing is stored.
package scoring

import (
	"regexp"
	"strings"

	"podcastwerkstatt/internal/models"
)

// speakerLabel matches "Sprecher A:" through "Sprecher E:" markers, which
// are narration structure and never count as script words.
var speakerLabel = regexp.MustCompile(`(?i)Sprecher\s+[A-E]:`)

// StripSpeakerLabels removes all speaker markers from the text.
func StripSpeakerLabels(text string) string {
	return speakerLabel.ReplaceAllString(text, "")
}

// WordCount counts the whitespace-separated tokens after speaker labels are
// removed. Empty or whitespace-only text counts zero.
func WordCount(text string) int {
	clean := strings.TrimSpace(StripSpeakerLabels(text))
	if clean == "" {
		return 0
	}
	return len(strings.Fields(clean))
}

// TotalWords sums the word counts of all script cards.
func TotalWords(script []models.ScriptCard) int {
	total := 0
	for _, card := range script {
		total += WordCount(card.Text)
	}
	return total
}

// CardComplete reports whether the card's text meets its word minimum.
func CardComplete(card models.ScriptCard) bool {
	return WordCount(card.Text) >= card.MinWords
}

// speech pace used for the recording-time estimate, in words per minute.
// Children read slower than adults, so this is deliberately low.
const wordsPerMinute = 75

// SpeechSeconds estimates how long the script takes to read aloud.
func SpeechSeconds(script []models.ScriptCard) int {
	return TotalWords(script) * 60 / wordsPerMinute
}

// TimeZone classifies the estimated speaking time against the target length
// of a three-to-five minute class podcast.
type TimeZone string

const (
	TimeTooShort TimeZone = "short" // under 3 minutes
	TimeGood     TimeZone = "good"  // 3 to 5 minutes
	TimeTooLong  TimeZone = "long"  // over 5 minutes
)

// SpeechZone returns the time zone for the script's estimated duration.
func SpeechZone(script []models.ScriptCard) TimeZone {
	secs := SpeechSeconds(script)
	switch {
	case secs < 180:
		return TimeTooShort
	case secs <= 300:
		return TimeGood
	default:
		return TimeTooLong
	}
}
