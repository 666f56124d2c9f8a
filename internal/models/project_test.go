package models

import (
	"errors"
	"testing"
)

func sampleScript() []ScriptCard {
	return []ScriptCard{
		{Type: CardHook, Title: "Der Aufhänger", MinWords: 20},
		{Type: CardIntro, Title: "Die Begrüßung", MinWords: 30},
		{Type: CardOutro, Title: "Der Abschluss", MinWords: 20},
	}
}

func TestTopicIDValid(t *testing.T) {
	for _, id := range TopicIDs {
		if !id.Valid() {
			t.Errorf("TopicID %q should be valid", id)
		}
	}
	for _, id := range []TopicID{"", "art4", "ART1", "general"} {
		if id.Valid() {
			t.Errorf("TopicID %q should be invalid", id)
		}
	}
}

func TestNewProjectEmptiesTemplateText(t *testing.T) {
	template := sampleScript()
	template[0].Text = "leftover text from the template"

	p := NewProject("Die Radio-Füchse", TopicArt1, template)

	if p.TeamName != "Die Radio-Füchse" || p.TopicID != TopicArt1 {
		t.Errorf("unexpected identity: %q %q", p.TeamName, p.TopicID)
	}
	if p.Score != 0 {
		t.Errorf("Score = %d, want 0", p.Score)
	}
	if p.UnlockedBadges == nil || len(p.UnlockedBadges) != 0 {
		t.Errorf("UnlockedBadges = %v, want empty", p.UnlockedBadges)
	}
	for i, card := range p.Script {
		if card.Text != "" {
			t.Errorf("card %d text = %q, want empty", i, card.Text)
		}
	}
	if p.IntroCompleted || p.LessonADone || p.LessonBDone {
		t.Error("completion flags should start false")
	}

	// The template itself must be untouched
	if template[0].Text != "leftover text from the template" {
		t.Error("NewProject mutated the template")
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProject("Team", TopicArt3, sampleScript())
	p.UnlockedBadges = []string{"law_expert"}
	p.Script[0].Text = "original"

	clone := p.Clone()
	clone.Script[0].Text = "changed"
	clone.UnlockedBadges[0] = "word_acrobat"

	if p.Script[0].Text != "original" {
		t.Error("Clone shares the script slice")
	}
	if p.UnlockedBadges[0] != "law_expert" {
		t.Error("Clone shares the badge slice")
	}
}

func TestHasBadge(t *testing.T) {
	p := Project{UnlockedBadges: []string{"law_expert", "radio_star"}}
	if !p.HasBadge("radio_star") {
		t.Error("expected radio_star to be unlocked")
	}
	if p.HasBadge("word_acrobat") {
		t.Error("word_acrobat should not be unlocked")
	}
}

func TestParseProject(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid record",
			data: `{"teamName":"Team A","topicId":"art5","script":[{"type":"hook","title":"Hook","text":"","minWords":20}],"score":120,"unlockedBadges":["law_expert"]}`,
		},
		{
			name: "missing badges defaults to empty slice",
			data: `{"teamName":"Team A","topicId":"art1","script":[]}`,
		},
		{
			name:    "not json",
			data:    `{{{`,
			wantErr: true,
		},
		{
			name:    "empty team name",
			data:    `{"teamName":"","topicId":"art1","script":[]}`,
			wantErr: true,
		},
		{
			name:    "unknown topic",
			data:    `{"teamName":"Team","topicId":"art99","script":[]}`,
			wantErr: true,
		},
		{
			name:    "missing script",
			data:    `{"teamName":"Team","topicId":"art1"}`,
			wantErr: true,
		},
		{
			name:    "negative score",
			data:    `{"teamName":"Team","topicId":"art1","script":[],"score":-10}`,
			wantErr: true,
		},
		{
			name:    "unknown card type",
			data:    `{"teamName":"Team","topicId":"art1","script":[{"type":"jingle","title":"X"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProject([]byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedProject) {
					t.Errorf("ParseProject() error = %v, want ErrMalformedProject", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseProject() error = %v", err)
			}
			if p.UnlockedBadges == nil {
				t.Error("UnlockedBadges should never be nil after parsing")
			}
		})
	}
}

func TestLevelLadder(t *testing.T) {
	tests := []struct {
		score     int
		wantTitle string
		wantNext  string
	}{
		{0, "Reporter-Neuling", "Wort-Entdecker"},
		{99, "Reporter-Neuling", "Wort-Entdecker"},
		{100, "Wort-Entdecker", "Fakten-Sammler"},
		{599, "Fakten-Sammler", "Grundrechte-Experte"},
		{600, "Grundrechte-Experte", "Chefredakteur"},
		{1000, "Chefredakteur", ""},
		{5000, "Chefredakteur", ""},
	}

	for _, tt := range tests {
		got := CurrentLevel(tt.score)
		if got.Title != tt.wantTitle {
			t.Errorf("CurrentLevel(%d) = %q, want %q", tt.score, got.Title, tt.wantTitle)
		}
		next := NextLevel(tt.score)
		if tt.wantNext == "" {
			if next != nil {
				t.Errorf("NextLevel(%d) = %v, want nil", tt.score, next)
			}
		} else if next == nil || next.Title != tt.wantNext {
			t.Errorf("NextLevel(%d) = %v, want %q", tt.score, next, tt.wantNext)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %v, want 0", got)
	}
	if got := LevelProgress(50); got != 50 {
		t.Errorf("LevelProgress(50) = %v, want 50", got)
	}
	if got := LevelProgress(200); got != 50 {
		t.Errorf("LevelProgress(200) = %v, want 50", got)
	}
	if got := LevelProgress(1000); got != 100 {
		t.Errorf("LevelProgress(1000) = %v, want 100", got)
	}
}
