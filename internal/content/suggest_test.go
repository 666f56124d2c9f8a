package content

import (
	"math/rand"
	"strings"
	"testing"

	"podcastwerkstatt/internal/models"
)

func suggestTopic() *Topic {
	return &Topic{
		ID:          models.TopicArt5,
		SimpleTitle: "Meinungsfreiheit",
		ArticleRef:  "Artikel 5",
		ExampleIdeas: []string{
			"In der Klasse dürfen alle ihre Meinung zum Ausflugsziel sagen.",
		},
		SentenceStarters: map[models.CardType][]StarterOption{
			models.CardIntro: {
				{Fragment: "Wusstet ihr, dass ", Suggestions: []string{"jedes Kind Rechte hat?"}},
			},
			models.CardExample: {
				{Fragment: "Stellt euch vor, ", Suggestions: []string{"jemand dürfte nie mitreden."}},
			},
		},
	}
}

func TestAutoSuggestionDrawsFromPool(t *testing.T) {
	topic := suggestTopic()
	card := models.ScriptCard{Type: models.CardIntro}
	rng := rand.New(rand.NewSource(1))

	want := map[string]bool{
		"Hallo und herzlich willkommen, hier ist das Team Die Radio-Füchse!": true,
		"Heute geht es bei uns um das Thema Meinungsfreiheit.":               true,
		"Das steht im Grundgesetz, in Artikel 5.":                            true,
		"Wusstet ihr, dass jedes Kind Rechte hat?":                           true,
	}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		got := AutoSuggestion(topic, card, "Die Radio-Füchse", rng)
		if !want[got] {
			t.Fatalf("unexpected suggestion %q", got)
		}
		seen[got] = true
	}
	if len(seen) < 2 {
		t.Error("suggestions are not spread across the pool")
	}
}

func TestAutoSuggestionSkipsAlreadyUsedOpenings(t *testing.T) {
	topic := suggestTopic()
	card := models.ScriptCard{
		Type: models.CardExample,
		// Different casing must still count as used
		Text: "STELLT EUCH VOR, jemand dürfte nie mitreden.",
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		got := AutoSuggestion(topic, card, "Team", rng)
		if strings.HasPrefix(got, "Stellt euch vor") {
			t.Fatalf("suggestion %q repeats an opening already in the card", got)
		}
	}
}

func TestAutoSuggestionEmptyPool(t *testing.T) {
	topic := suggestTopic()
	card := models.ScriptCard{
		Type: models.CardExample,
		Text: "stellt euch vor, und in der klasse dürfen alle reden.",
	}
	rng := rand.New(rand.NewSource(3))

	if got := AutoSuggestion(topic, card, "Team", rng); got != "" {
		t.Errorf("AutoSuggestion() = %q, want empty when every opening is used", got)
	}
}
