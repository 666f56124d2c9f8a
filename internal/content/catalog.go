package content

import "podcastwerkstatt/internal/models"

// registry maps topic identifiers to their content records. Populated by the
// topic data files in this package.
var registry = make(map[models.TopicID]*Topic)

func register(t *Topic) {
	registry[t.ID] = t
}

// Topics returns all topics in display order.
func Topics() []*Topic {
	out := make([]*Topic, 0, len(models.TopicIDs))
	for _, id := range models.TopicIDs {
		if t, ok := registry[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// TopicByID returns the topic for the given identifier, or nil if unknown.
func TopicByID(id models.TopicID) *Topic {
	return registry[id]
}

// GeneralIntro builds the synthetic "Was ist das Grundgesetz?" topic for the
// start mission by overlaying the fixed Grundgesetz lesson onto the cosmetic
// fields of the team's selected topic.
func GeneralIntro(base *Topic) *Topic {
	overlay := *base
	overlay.SimpleTitle = "Das Grundgesetz"
	overlay.Icon = "📜"
	overlay.Lesson = generalIntroLesson
	return &overlay
}

// ScriptTemplate returns a fresh copy of the fixed seven-card script
// template with empty text. Supplied once at project creation; the card
// sequence never changes afterwards.
func ScriptTemplate() []models.ScriptCard {
	template := []models.ScriptCard{
		{Type: models.CardHook, Title: "Der Hinhörer (Hook)", MinWords: 10},
		{Type: models.CardIntro, Title: "Begrüßung & Thema", MinWords: 15},
		{Type: models.CardExplanation, Title: "Erklärung: Was bedeutet das?", MinWords: 25},
		{Type: models.CardExample, Title: "Beispiel aus dem Alltag", MinWords: 20},
		{Type: models.CardBoundary, Title: "Die Grenze / Regel", MinWords: 15},
		{Type: models.CardTip, Title: "Unser Tipp", MinWords: 15},
		{Type: models.CardOutro, Title: "Verabschiedung", MinWords: 10},
	}
	return template
}
