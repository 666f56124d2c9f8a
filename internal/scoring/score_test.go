package scoring

import (
	"reflect"
	"testing"

	"podcastwerkstatt/internal/models"
)

func TestScriptScore(t *testing.T) {
	wordBank := []models.WordDef{
		{Word: "Respekt", Definition: "Andere freundlich behandeln."},
		{Word: "fair", Definition: "Gerecht spielen."},
		{Word: "Stopp", Definition: "Sofort aufhören."},
	}

	tests := []struct {
		name   string
		script []models.ScriptCard
		want   int
	}{
		{
			name:   "empty script",
			script: []models.ScriptCard{},
			want:   0,
		},
		{
			name: "words only",
			// 5 words, below minimum, no bank words: 5*2 = 10.
			script: []models.ScriptCard{
				{Type: models.CardHook, Text: "eins zwei drei vier fünf", MinWords: 10},
			},
			want: 10,
		},
		{
			name: "completed card",
			// 3 words * 2 + 1 completed card * 50 = 56.
			script: []models.ScriptCard{
				{Type: models.CardHook, Text: "kurz und knapp", MinWords: 3},
			},
			want: 56,
		},
		{
			name: "word bank bonus once per word",
			// "Respekt" twice still counts once: 4*2 + 50 + 30 = 88.
			script: []models.ScriptCard{
				{Type: models.CardHook, Text: "Respekt! Respekt ist wichtig", MinWords: 2},
			},
			want: 88,
		},
		{
			name: "bank match is case-insensitive",
			// 3*2 + 50 + 30 = 86.
			script: []models.ScriptCard{
				{Type: models.CardTip, Text: "Seid immer FAIR", MinWords: 3},
			},
			want: 86,
		},
		{
			name: "bank word inside a longer word counts",
			// "fair" sits inside "Fairness": 2*2 + 50 + 30 = 84.
			script: []models.ScriptCard{
				{Type: models.CardTip, Text: "Fairness gewinnt", MinWords: 2},
			},
			want: 84,
		},
		{
			name: "speaker labels add no points",
			// Labels stripped: 2 words * 2 = 4.
			script: []models.ScriptCard{
				{Type: models.CardHook, Text: "Sprecher A: Hallo zusammen", MinWords: 10},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScriptScore(tt.script, wordBank); got != tt.want {
				t.Errorf("ScriptScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreBreakdown(t *testing.T) {
	wordBank := []models.WordDef{
		{Word: "Respekt"},
		{Word: "Stopp"},
	}
	script := []models.ScriptCard{
		{Type: models.CardHook, Text: "Respekt ist wichtig für alle", MinWords: 5},
		{Type: models.CardIntro, Text: "Hallo", MinWords: 15},
	}

	got := ScoreBreakdown(script, wordBank)
	want := Breakdown{
		TotalWords:     6,
		CompletedCards: 1,
		UsedWords:      1,
		Total:          6*2 + 1*50 + 1*30,
	}
	if got != want {
		t.Errorf("ScoreBreakdown = %+v, want %+v", got, want)
	}
}

func TestUsedWordBankWords(t *testing.T) {
	wordBank := []models.WordDef{
		{Word: "Recht"},
		{Word: "fair"},
		{Word: "Mut"},
	}
	script := []models.ScriptCard{
		{Type: models.CardExplanation, Text: "Gerechtigkeit ist wichtig"},
		{Type: models.CardTip, Text: "spielt fair miteinander"},
	}

	// "Recht" matches inside "Gerechtigkeit"; words come back in bank order.
	got := UsedWordBankWords(script, wordBank)
	want := []string{"Recht", "fair"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UsedWordBankWords = %v, want %v", got, want)
	}
}
