package content

import (
	"fmt"
	"math/rand"
	"strings"

	"podcastwerkstatt/internal/models"
)

// dedupePrefixLen is how many characters of a candidate are compared against
// the card text to decide it was already used.
const dedupePrefixLen = 15

// AutoSuggestion picks a random writing suggestion for the given card. The
// candidate pool mixes templated sentences for the card type with completed
// sentence starters; candidates whose opening already appears in the card
// text are skipped so near-duplicates are never inserted. Returns "" when
// the pool is exhausted. The rng is injected so callers can seed
// deterministically.
func AutoSuggestion(topic *Topic, card models.ScriptCard, teamName string, rng *rand.Rand) string {
	pool := suggestionPool(topic, card.Type, teamName)

	lower := strings.ToLower(card.Text)
	available := make([]string, 0, len(pool))
	for _, s := range pool {
		if !strings.Contains(lower, dedupeKey(s)) {
			available = append(available, s)
		}
	}
	if len(available) == 0 {
		return ""
	}
	return available[rng.Intn(len(available))]
}

func suggestionPool(topic *Topic, cardType models.CardType, teamName string) []string {
	var pool []string
	switch cardType {
	case models.CardIntro:
		pool = append(pool,
			fmt.Sprintf("Hallo und herzlich willkommen, hier ist das Team %s!", teamName),
			fmt.Sprintf("Heute geht es bei uns um das Thema %s.", topic.SimpleTitle),
			fmt.Sprintf("Das steht im Grundgesetz, in %s.", topic.ArticleRef),
		)
	default:
		pool = append(pool, ContentIdeas(topic, cardType).Items...)
	}
	for _, starter := range topic.SentenceStarters[cardType] {
		for _, sug := range starter.Suggestions {
			pool = append(pool, starter.Fragment+sug)
		}
	}
	return pool
}

// dedupeKey lowercases the candidate and keeps its opening characters.
func dedupeKey(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > dedupePrefixLen {
		runes = runes[:dedupePrefixLen]
	}
	return string(runes)
}
