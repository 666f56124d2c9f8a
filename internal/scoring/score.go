package scoring

import (
	"strings"

	"podcastwerkstatt/internal/models"
)

// Point values for the script score.
const (
	pointsPerWord          = 2
	pointsPerCompletedCard = 50
	pointsPerUsedWord      = 30
)

// Breakdown itemizes a script score.
type Breakdown struct {
	TotalWords     int
	CompletedCards int
	UsedWords      int
	Total          int
}

// ScriptScore computes the script's point value: 2 points per word, 50 per
// card that meets its word minimum, and 30 per distinct word-bank word that
// appears somewhere in the script.
func ScriptScore(script []models.ScriptCard, wordBank []models.WordDef) int {
	return ScoreBreakdown(script, wordBank).Total
}

// ScoreBreakdown computes the script score with its components.
func ScoreBreakdown(script []models.ScriptCard, wordBank []models.WordDef) Breakdown {
	b := Breakdown{TotalWords: TotalWords(script)}
	for _, card := range script {
		if CardComplete(card) {
			b.CompletedCards++
		}
	}
	b.UsedWords = len(UsedWordBankWords(script, wordBank))
	b.Total = b.TotalWords*pointsPerWord +
		b.CompletedCards*pointsPerCompletedCard +
		b.UsedWords*pointsPerUsedWord
	return b
}

// UsedWordBankWords returns the word-bank words that occur in the script,
// in word-bank order. Matching is a case-insensitive substring check over
// the joined card texts, so "Recht" also matches inside "Gerechtigkeit".
// Each word counts at most once no matter how often it appears.
func UsedWordBankWords(script []models.ScriptCard, wordBank []models.WordDef) []string {
	texts := make([]string, len(script))
	for i, card := range script {
		texts[i] = card.Text
	}
	joined := strings.ToLower(strings.Join(texts, " "))

	var used []string
	for _, def := range wordBank {
		if def.Word == "" {
			continue
		}
		if strings.Contains(joined, strings.ToLower(def.Word)) {
			used = append(used, def.Word)
		}
	}
	return used
}
