package models

import (
	"encoding/json"
	"errors"
	"time"
)

// TopicID identifies one of the five fixed constitutional-rights topics.
type TopicID string

const (
	TopicArt1   TopicID = "art1"   // Menschenwürde
	TopicArt2   TopicID = "art2"   // Freiheit & Körper
	TopicArt3   TopicID = "art3"   // Gleichheit
	TopicArt5   TopicID = "art5"   // Meinung
	TopicArt16a TopicID = "art16a" // Asyl
)

// TopicIDs lists all valid topic identifiers in display order.
var TopicIDs = []TopicID{TopicArt1, TopicArt2, TopicArt3, TopicArt5, TopicArt16a}

// Valid reports whether the topic identifier is one of the five fixed topics.
func (id TopicID) Valid() bool {
	for _, known := range TopicIDs {
		if id == known {
			return true
		}
	}
	return false
}

// CardType identifies one of the seven fixed script sections.
type CardType string

const (
	CardHook        CardType = "hook"
	CardIntro       CardType = "intro"
	CardExplanation CardType = "explanation"
	CardExample     CardType = "example"
	CardBoundary    CardType = "boundary"
	CardTip         CardType = "tip"
	CardOutro       CardType = "outro"
)

// ScriptCard is one section of the podcast script. The sequence of card
// types and their order is fixed by the script template; only Text mutates.
type ScriptCard struct {
	Type     CardType `json:"type"`
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	MinWords int      `json:"minWords"`
}

// WordDef is a topic-scoped word-bank entry. Whether a word is "used" is
// always derived from the script text, never stored.
type WordDef struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Project is one team's podcast effort. The engine operates on value copies
// and returns updated values; it never mutates shared state in place.
type Project struct {
	TeamName       string       `json:"teamName"`
	TopicID        TopicID      `json:"topicId"`
	Script         []ScriptCard `json:"script"`
	DateCreated    string       `json:"dateCreated"`
	Score          int          `json:"score"`
	UnlockedBadges []string     `json:"unlockedBadges"`
	IntroCompleted bool         `json:"introCompleted"`
	LessonADone    bool         `json:"lessonA_Done"`
	LessonBDone    bool         `json:"lessonB_Done"`
}

// NewProject creates a fresh project for a team: template cards with empty
// text, score 0, no badges, all completion flags false.
func NewProject(teamName string, topicID TopicID, template []ScriptCard) Project {
	script := make([]ScriptCard, len(template))
	copy(script, template)
	for i := range script {
		script[i].Text = ""
	}
	return Project{
		TeamName:       teamName,
		TopicID:        topicID,
		Script:         script,
		DateCreated:    time.Now().UTC().Format(time.RFC3339),
		Score:          0,
		UnlockedBadges: []string{},
	}
}

// HasBadge reports whether the badge identifier is in the unlocked set.
func (p Project) HasBadge(id string) bool {
	for _, b := range p.UnlockedBadges {
		if b == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the project so callers can hand out snapshots
// without sharing the script or badge slices.
func (p Project) Clone() Project {
	out := p
	out.Script = make([]ScriptCard, len(p.Script))
	copy(out.Script, p.Script)
	out.UnlockedBadges = make([]string, len(p.UnlockedBadges))
	copy(out.UnlockedBadges, p.UnlockedBadges)
	return out
}

// ErrMalformedProject marks a persisted project value that cannot be used.
// Callers treat it as "no project exists" rather than failing.
var ErrMalformedProject = errors.New("malformed project record")

// ParseProject decodes and validates a persisted project record. A missing,
// malformed, or structurally invalid record yields ErrMalformedProject so
// the caller can degrade to "no project" instead of surfacing an error.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, ErrMalformedProject
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.UnlockedBadges == nil {
		p.UnlockedBadges = []string{}
	}
	return &p, nil
}

// Validate checks the structural invariants of a project value.
func (p Project) Validate() error {
	if p.TeamName == "" {
		return ErrMalformedProject
	}
	if !p.TopicID.Valid() {
		return ErrMalformedProject
	}
	if p.Script == nil {
		return ErrMalformedProject
	}
	if p.Score < 0 {
		return ErrMalformedProject
	}
	for _, card := range p.Script {
		switch card.Type {
		case CardHook, CardIntro, CardExplanation, CardExample, CardBoundary, CardTip, CardOutro:
		default:
			return ErrMalformedProject
		}
	}
	return nil
}
