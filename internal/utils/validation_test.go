package utils

import (
	"strings"
	"testing"
)

func TestValidateTeamName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Die Radio-Füchse", false},
		{"two characters", "AB", false},
		{"umlauts count as one rune", "Öö", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single character", "A", true},
		{"forty characters", strings.Repeat("a", 40), false},
		{"forty one characters", strings.Repeat("a", 41), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeamName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTeamName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
