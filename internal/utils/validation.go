package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateTeamName checks if a team name is acceptable. The blocked-words
// check against the database happens separately in the service layer.
func ValidateTeamName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "teamName", Message: "team name is required"}
	}
	if utf8.RuneCountInString(name) < 2 {
		return ValidationError{Field: "teamName", Message: "team name must be at least 2 characters"}
	}
	if utf8.RuneCountInString(name) > 40 {
		return ValidationError{Field: "teamName", Message: "team name must be at most 40 characters"}
	}
	return nil
}
