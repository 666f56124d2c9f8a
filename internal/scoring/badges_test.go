package scoring

import (
	"strings"
	"testing"

	"podcastwerkstatt/internal/models"
)

func badgeIDs(badges []models.Badge) []string {
	ids := make([]string, len(badges))
	for i, b := range badges {
		ids[i] = b.ID
	}
	return ids
}

func TestEvaluateBadges(t *testing.T) {
	longText := strings.Repeat("wort ", 100)

	tests := []struct {
		name    string
		project models.Project
		want    []string
	}{
		{
			name:    "fresh project earns nothing",
			project: models.Project{Script: []models.ScriptCard{{Type: models.CardHook, MinWords: 10}}},
			want:    nil,
		},
		{
			name:    "intro completion unlocks law expert",
			project: models.Project{IntroCompleted: true, Script: []models.ScriptCard{{Type: models.CardHook, MinWords: 10}}},
			want:    []string{"law_expert"},
		},
		{
			name: "lesson flags unlock both knowledge badges",
			project: models.Project{
				LessonADone: true,
				LessonBDone: true,
				Script:      []models.ScriptCard{{Type: models.CardHook, MinWords: 10}},
			},
			want: []string{"knowledge_starter", "knowledge_pro"},
		},
		{
			name: "hundred words unlock word acrobat",
			project: models.Project{
				Script: []models.ScriptCard{{Type: models.CardHook, Text: longText, MinWords: 200}},
			},
			want: []string{"word_acrobat"},
		},
		{
			name: "all cards complete unlock radio star",
			project: models.Project{
				Script: []models.ScriptCard{
					{Type: models.CardHook, Text: "eins zwei drei", MinWords: 3},
					{Type: models.CardOutro, Text: "vier fünf", MinWords: 2},
				},
			},
			want: []string{"radio_star"},
		},
		{
			name:    "empty script never earns radio star",
			project: models.Project{Script: []models.ScriptCard{}},
			want:    nil,
		},
		{
			name: "unlocked badges are not returned again",
			project: models.Project{
				IntroCompleted: true,
				UnlockedBadges: []string{"law_expert"},
				Script:         []models.ScriptCard{{Type: models.CardHook, MinWords: 10}},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := badgeIDs(EvaluateBadges(tt.project))
			if len(got) != len(tt.want) {
				t.Fatalf("EvaluateBadges = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("EvaluateBadges = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestEvaluateBadgesIdempotent(t *testing.T) {
	p := models.Project{
		IntroCompleted: true,
		Script:         []models.ScriptCard{{Type: models.CardHook, Text: "eins zwei", MinWords: 2}},
	}

	first := EvaluateBadges(p)
	for _, b := range first {
		p.UnlockedBadges = append(p.UnlockedBadges, b.ID)
	}
	if second := EvaluateBadges(p); len(second) != 0 {
		t.Errorf("second evaluation returned %v, want none", badgeIDs(second))
	}
}

func TestBadgeByID(t *testing.T) {
	if b := BadgeByID("radio_star"); b == nil || b.Title != "Radio Star" {
		t.Errorf("BadgeByID(radio_star) = %+v", b)
	}
	if b := BadgeByID("unknown"); b != nil {
		t.Errorf("BadgeByID(unknown) = %+v, want nil", b)
	}
}
