// Package workshop coordinates the script editor: active-card selection,
// text edits, score recomputation and badge unlocks. Each edit commits one
// (script, score, badges) tuple back to the project.
package workshop

import (
	"fmt"
	"strings"

	"podcastwerkstatt/internal/content"
	"podcastwerkstatt/internal/models"
	"podcastwerkstatt/internal/scoring"
)

// Update is the result of one text edit: the committed state plus the
// transient values the view surfaces (score delta flash, badge toast).
type Update struct {
	Script     []models.ScriptCard
	TotalScore int
	Delta      int
	NewBadges  []models.Badge
}

// Session is one team's editing session. It works on a private copy of the
// project; the committed state is exposed via Project(). Not safe for
// concurrent use.
type Session struct {
	topic     *content.Topic
	project   models.Project
	active    int
	base      int
	displayed int
}

// New starts an editing session. The base score is the part of the project
// score earned outside the script (lessons), captured once so re-editing
// text never double-counts lesson points. It is clamped at zero in case the
// stored total is smaller than the recomputed script score.
func New(project models.Project, topic *content.Topic) *Session {
	p := project.Clone()
	scriptScore := scoring.ScriptScore(p.Script, topic.WordBank)
	base := p.Score - scriptScore
	if base < 0 {
		base = 0
	}
	return &Session{
		topic:     topic,
		project:   p,
		base:      base,
		displayed: base + scriptScore,
	}
}

// Project returns a snapshot of the committed project state.
func (s *Session) Project() models.Project { return s.project.Clone() }

func (s *Session) Topic() *content.Topic { return s.topic }
func (s *Session) Active() int           { return s.active }
func (s *Session) BaseScore() int        { return s.base }
func (s *Session) DisplayedScore() int   { return s.displayed }

// ActiveCard returns the card currently being edited.
func (s *Session) ActiveCard() models.ScriptCard { return s.project.Script[s.active] }

// SetActive switches the focused card. Switching alone never recomputes the
// score; it depends only on card contents.
func (s *Session) SetActive(idx int) error {
	if idx < 0 || idx >= len(s.project.Script) {
		return fmt.Errorf("card index %d out of range [0,%d)", idx, len(s.project.Script))
	}
	s.active = idx
	return nil
}

// UpdateText replaces the text of the given card and commits the result:
// score recomputed, delta recorded when the total rose, newly satisfied
// badges unlocked. Exactly one committed tuple per edit.
func (s *Session) UpdateText(idx int, text string) (Update, error) {
	if idx < 0 || idx >= len(s.project.Script) {
		return Update{}, fmt.Errorf("card index %d out of range [0,%d)", idx, len(s.project.Script))
	}
	s.project.Script[idx].Text = text

	total := s.base + scoring.ScriptScore(s.project.Script, s.topic.WordBank)
	delta := 0
	if total > s.displayed {
		delta = total - s.displayed
	}
	s.displayed = total
	s.project.Score = total

	newBadges := scoring.EvaluateBadges(s.project)
	for _, b := range newBadges {
		s.project.UnlockedBadges = append(s.project.UnlockedBadges, b.ID)
	}

	committed := s.Project()
	return Update{
		Script:     committed.Script,
		TotalScore: total,
		Delta:      delta,
		NewBadges:  newBadges,
	}, nil
}

// InsertText appends a starter or suggestion to the active card's text,
// separating it with a space unless the text already ends in whitespace,
// and commits like any other edit.
func (s *Session) InsertText(insert string) (Update, error) {
	current := s.project.Script[s.active].Text
	if current != "" && !strings.HasSuffix(current, " ") && !strings.HasSuffix(current, "\n") {
		insert = " " + insert
	}
	return s.UpdateText(s.active, current+insert)
}
