package scoring

import (
	"testing"

	"podcastwerkstatt/internal/models"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "   \n\t  ", want: 0},
		{name: "simple words", text: "Hallo liebe Zuhörer", want: 3},
		{name: "collapses runs of whitespace", text: "ein  zwei\n\ndrei\tvier", want: 4},
		{name: "strips speaker label", text: "Sprecher A: Hallo zusammen", want: 2},
		{name: "strips lowercase label", text: "sprecher b: Guten Morgen", want: 2},
		{name: "strips multiple labels", text: "Sprecher A: Hallo. Sprecher B: Hi!", want: 2},
		{name: "label with extra spaces", text: "Sprecher   C: Willkommen", want: 1},
		{name: "only labels", text: "Sprecher A: Sprecher B:", want: 0},
		{name: "label letter out of range kept", text: "Sprecher F: Hallo", want: 3},
		{name: "punctuation sticks to tokens", text: "Stopp! Das reicht, oder?", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTotalWords(t *testing.T) {
	script := []models.ScriptCard{
		{Type: models.CardHook, Text: "Sprecher A: Habt ihr das gehört?"},
		{Type: models.CardIntro, Text: ""},
		{Type: models.CardOutro, Text: "Tschüss und bis bald"},
	}
	if got := TotalWords(script); got != 9 {
		t.Errorf("TotalWords = %d, want 9", got)
	}
}

func TestCardComplete(t *testing.T) {
	tests := []struct {
		name string
		card models.ScriptCard
		want bool
	}{
		{name: "below minimum", card: models.ScriptCard{Text: "zu kurz", MinWords: 3}, want: false},
		{name: "exactly minimum", card: models.ScriptCard{Text: "genau drei Wörter", MinWords: 3}, want: true},
		{name: "above minimum", card: models.ScriptCard{Text: "das sind jetzt vier Wörter", MinWords: 3}, want: true},
		{name: "labels do not count", card: models.ScriptCard{Text: "Sprecher A: nur zwei", MinWords: 3}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardComplete(tt.card); got != tt.want {
				t.Errorf("CardComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpeechZone(t *testing.T) {
	// 75 words per minute: 3 minutes = 225 words, 5 minutes = 375 words.
	tests := []struct {
		name  string
		words int
		want  TimeZone
	}{
		{name: "empty script", words: 0, want: TimeTooShort},
		{name: "just under three minutes", words: 224, want: TimeTooShort},
		{name: "exactly three minutes", words: 225, want: TimeGood},
		{name: "exactly five minutes", words: 375, want: TimeGood},
		{name: "over five minutes", words: 377, want: TimeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := []models.ScriptCard{{Type: models.CardHook, Text: repeatWords(tt.words)}}
			if got := SpeechZone(script); got != tt.want {
				t.Errorf("SpeechZone(%d words) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func repeatWords(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += " "
		}
		out += "wort"
	}
	return out
}
