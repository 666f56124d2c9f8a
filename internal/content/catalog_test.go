package content

import (
	"testing"

	"podcastwerkstatt/internal/models"
)

func TestTopicsDisplayOrder(t *testing.T) {
	topics := Topics()
	if len(topics) != len(models.TopicIDs) {
		t.Fatalf("Topics() returned %d topics, want %d", len(topics), len(models.TopicIDs))
	}
	for i, topic := range topics {
		if topic.ID != models.TopicIDs[i] {
			t.Errorf("topic %d = %q, want %q", i, topic.ID, models.TopicIDs[i])
		}
	}
}

func TestTopicByID(t *testing.T) {
	topic := TopicByID(models.TopicArt1)
	if topic == nil {
		t.Fatal("TopicByID(art1) returned nil")
	}
	if topic.SimpleTitle == "" || topic.ArticleRef == "" {
		t.Error("topic record is missing cosmetic fields")
	}
	if len(topic.Lesson.Quizzes) == 0 || len(topic.Lesson.Cases) == 0 || len(topic.Lesson.Checks) == 0 {
		t.Error("topic lesson content is incomplete")
	}
	if len(topic.WordBank) == 0 {
		t.Error("topic has no word bank")
	}

	if TopicByID("art99") != nil {
		t.Error("TopicByID should return nil for unknown topics")
	}
}

func TestEveryTopicHasStartersForEveryCardType(t *testing.T) {
	cardTypes := []models.CardType{
		models.CardHook, models.CardIntro, models.CardExplanation,
		models.CardExample, models.CardBoundary, models.CardTip, models.CardOutro,
	}
	for _, topic := range Topics() {
		for _, ct := range cardTypes {
			if len(topic.SentenceStarters[ct]) == 0 {
				t.Errorf("topic %s has no sentence starters for card type %s", topic.ID, ct)
			}
		}
	}
}

func TestGeneralIntroOverlay(t *testing.T) {
	base := TopicByID(models.TopicArt3)
	overlay := GeneralIntro(base)

	if overlay.SimpleTitle != "Das Grundgesetz" || overlay.Icon != "📜" {
		t.Errorf("overlay cosmetics = %q %q", overlay.SimpleTitle, overlay.Icon)
	}
	if overlay.ID != base.ID {
		t.Errorf("overlay should keep the base topic ID, got %q", overlay.ID)
	}
	if len(overlay.Lesson.Quizzes) == 0 {
		t.Error("overlay has no Grundgesetz quizzes")
	}
	if overlay.Lesson.IntroStory == base.Lesson.IntroStory {
		t.Error("overlay should swap in the Grundgesetz lesson")
	}

	// The registry entry must not be touched
	if base.SimpleTitle == "Das Grundgesetz" {
		t.Error("GeneralIntro mutated the base topic")
	}
}

func TestScriptTemplate(t *testing.T) {
	template := ScriptTemplate()
	wantTypes := []models.CardType{
		models.CardHook, models.CardIntro, models.CardExplanation,
		models.CardExample, models.CardBoundary, models.CardTip, models.CardOutro,
	}
	if len(template) != len(wantTypes) {
		t.Fatalf("template has %d cards, want %d", len(template), len(wantTypes))
	}
	for i, card := range template {
		if card.Type != wantTypes[i] {
			t.Errorf("card %d type = %q, want %q", i, card.Type, wantTypes[i])
		}
		if card.Text != "" {
			t.Errorf("card %d should start empty", i)
		}
		if card.MinWords <= 0 {
			t.Errorf("card %d has no word goal", i)
		}
	}

	// Each call must hand out an independent copy
	template[0].Text = "scribbled on"
	if fresh := ScriptTemplate(); fresh[0].Text != "" {
		t.Error("ScriptTemplate returns a shared slice")
	}
}
