package workshop

import (
	"strings"
	"testing"

	"podcastwerkstatt/internal/content"
	"podcastwerkstatt/internal/models"
)

func testTopic() *content.Topic {
	return &content.Topic{
		ID:          models.TopicArt1,
		SimpleTitle: "Menschenwürde",
		WordBank: []models.WordDef{
			{Word: "Respekt"},
			{Word: "fair"},
		},
	}
}

func testProject(score int) models.Project {
	return models.Project{
		TeamName: "Die Füchse",
		TopicID:  models.TopicArt1,
		Score:    score,
		Script: []models.ScriptCard{
			{Type: models.CardHook, Title: "Der Hinhörer (Hook)", MinWords: 10},
			{Type: models.CardOutro, Title: "Verabschiedung", MinWords: 10},
		},
		UnlockedBadges: []string{},
	}
}

func TestBaseScoreCapture(t *testing.T) {
	// project.Score 150 with a script worth 100: base must be 50.
	p := testProject(150)
	// 25 plain words: 25*2 = 50; card complete: +50. Script score 100.
	p.Script[0].Text = strings.Repeat("wort ", 25)

	s := New(p, testTopic())
	if s.BaseScore() != 50 {
		t.Fatalf("BaseScore = %d, want 50", s.BaseScore())
	}
	if s.DisplayedScore() != 150 {
		t.Fatalf("DisplayedScore = %d, want 150", s.DisplayedScore())
	}

	// Raising the script score to 130 shows 180, not 280 or 130.
	up, err := s.UpdateText(0, strings.Repeat("wort ", 40))
	if err != nil {
		t.Fatalf("UpdateText: %v", err)
	}
	if up.TotalScore != 180 {
		t.Errorf("TotalScore = %d, want 180", up.TotalScore)
	}
	if up.Delta != 30 {
		t.Errorf("Delta = %d, want 30", up.Delta)
	}
}

func TestBaseScoreClampedAtZero(t *testing.T) {
	p := testProject(10)
	p.Script[0].Text = strings.Repeat("wort ", 25) // script alone worth 100

	s := New(p, testTopic())
	if s.BaseScore() != 0 {
		t.Errorf("BaseScore = %d, want 0 when stored score is lower", s.BaseScore())
	}
}

func TestUpdateTextCommitsScoreAndBadges(t *testing.T) {
	s := New(testProject(0), testTopic())

	// 12 words including one bank word, meets the 10-word minimum:
	// 12*2 + 50 + 30 = 104.
	text := "Respekt ist wichtig für alle Menschen hier bei uns in der Schule"
	up, err := s.UpdateText(0, text)
	if err != nil {
		t.Fatalf("UpdateText: %v", err)
	}
	if up.TotalScore != 104 {
		t.Errorf("TotalScore = %d, want 104", up.TotalScore)
	}
	if got := s.Project().Score; got != 104 {
		t.Errorf("committed project score = %d, want 104", got)
	}
}

func TestShrinkingTextDropsScoreWithoutDelta(t *testing.T) {
	s := New(testProject(0), testTopic())
	if _, err := s.UpdateText(0, "eins zwei drei vier"); err != nil {
		t.Fatal(err)
	}

	up, err := s.UpdateText(0, "eins")
	if err != nil {
		t.Fatal(err)
	}
	if up.Delta != 0 {
		t.Errorf("Delta = %d on shrink, want 0", up.Delta)
	}
	if up.TotalScore != 2 {
		t.Errorf("TotalScore = %d, want 2", up.TotalScore)
	}
}

func TestBadgeUnlockedOncePerEdit(t *testing.T) {
	s := New(testProject(0), testTopic())

	longText := strings.Repeat("wort ", 100)
	up, err := s.UpdateText(0, longText)
	if err != nil {
		t.Fatal(err)
	}
	if len(up.NewBadges) != 1 || up.NewBadges[0].ID != "word_acrobat" {
		t.Fatalf("NewBadges = %v, want word_acrobat", up.NewBadges)
	}

	// Same edit again: badge stays unlocked, never re-announced.
	up, err = s.UpdateText(0, longText+"mehr")
	if err != nil {
		t.Fatal(err)
	}
	if len(up.NewBadges) != 0 {
		t.Errorf("NewBadges on second edit = %v, want none", up.NewBadges)
	}
	if !s.Project().HasBadge("word_acrobat") {
		t.Error("badge lost from project")
	}
}

func TestRadioStarNeedsEveryCard(t *testing.T) {
	s := New(testProject(0), testTopic())

	full := strings.Repeat("wort ", 10)
	up, err := s.UpdateText(0, full)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range up.NewBadges {
		if b.ID == "radio_star" {
			t.Fatal("radio_star unlocked with one card still empty")
		}
	}

	up, err = s.UpdateText(1, full)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range up.NewBadges {
		if b.ID == "radio_star" {
			found = true
		}
	}
	if !found {
		t.Error("radio_star not unlocked when every card is complete")
	}
}

func TestInvalidIndices(t *testing.T) {
	s := New(testProject(0), testTopic())

	if err := s.SetActive(2); err == nil {
		t.Error("SetActive(2) on a 2-card script did not fail")
	}
	if err := s.SetActive(-1); err == nil {
		t.Error("SetActive(-1) did not fail")
	}
	if _, err := s.UpdateText(5, "text"); err == nil {
		t.Error("UpdateText(5, ...) did not fail")
	}
}

func TestInsertTextSpacing(t *testing.T) {
	s := New(testProject(0), testTopic())

	if _, err := s.InsertText("Hallo"); err != nil {
		t.Fatal(err)
	}
	if got := s.ActiveCard().Text; got != "Hallo" {
		t.Errorf("text = %q, want %q", got, "Hallo")
	}

	if _, err := s.InsertText("Welt"); err != nil {
		t.Fatal(err)
	}
	if got := s.ActiveCard().Text; got != "Hallo Welt" {
		t.Errorf("text = %q, want %q", got, "Hallo Welt")
	}
}
