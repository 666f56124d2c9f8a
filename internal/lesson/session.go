// Package lesson drives a team through one learning mission: the intro
// story and quiz round in basics mode, or the case and check rounds in pro
// mode. A session is transient and owns only its own running score; the
// committed project score is touched exactly once, through the completion
// callback.
package lesson

import (
	"errors"
	"fmt"

	"podcastwerkstatt/internal/content"
)

// Mode selects which half of the topic lesson a session runs.
type Mode string

const (
	ModeBasics Mode = "basics" // intro story, then quizzes
	ModePro    Mode = "pro"    // cases, then checks
)

// Step is the current stage of the session.
type Step string

const (
	StepIntro    Step = "intro"
	StepQuiz     Step = "quiz"
	StepCases    Step = "cases"
	StepChecks   Step = "checks"
	StepFinished Step = "finished"
)

// Points awarded per correct answer and for finishing the lesson.
const (
	quizPoints      = 10
	casePoints      = 20
	checkPoints     = 10
	completionBonus = 50
)

var (
	ErrFinished        = errors.New("lesson already finished")
	ErrNotAnswered     = errors.New("current item not answered yet")
	ErrNoCurrentItem   = errors.New("no answerable item in this step")
	ErrAlreadyReported = errors.New("lesson result already reported")
)

// Session is the state of one lesson run. Not safe for concurrent use; one
// session belongs to one team's view.
type Session struct {
	mode         Mode
	lesson       content.TopicLesson
	projectScore int

	step            Step
	index           int
	selected        *int
	checkAnswer     content.CheckAnswer
	showExplanation bool
	sessionScore    int
	reported        bool
}

// New creates a session at the first non-empty step for the mode. A lesson
// with no items at all starts finished, with the completion bonus intact.
func New(mode Mode, lesson content.TopicLesson, projectScore int) *Session {
	s := &Session{mode: mode, lesson: lesson, projectScore: projectScore}
	if mode == ModePro {
		s.step = s.nextStep(StepIntro)
	} else {
		s.step = StepIntro
	}
	return s
}

func (s *Session) Mode() Mode            { return s.mode }
func (s *Session) Step() Step            { return s.step }
func (s *Session) Index() int            { return s.index }
func (s *Session) SessionScore() int     { return s.sessionScore }
func (s *Session) ShowExplanation() bool { return s.showExplanation }

// Selected returns the chosen option index for the current quiz or case
// item, or nil if nothing was selected yet.
func (s *Session) Selected() *int { return s.selected }

// CheckAnswer returns the answer given to the current check item, or "" if
// it is still unanswered.
func (s *Session) CheckAnswer() content.CheckAnswer { return s.checkAnswer }

// DisplayedScore is what the scoreboard shows while the lesson runs: the
// committed project score plus everything earned this session.
func (s *Session) DisplayedScore() int { return s.projectScore + s.sessionScore }

// Total is the amount reported to the project on completion: the session
// score plus the completion bonus.
func (s *Session) Total() int { return s.sessionScore + completionBonus }

// CurrentQuiz returns the active quiz question, or nil outside the quiz step.
func (s *Session) CurrentQuiz() *content.QuizQuestion {
	if s.step != StepQuiz || s.index >= len(s.lesson.Quizzes) {
		return nil
	}
	return &s.lesson.Quizzes[s.index]
}

// CurrentCase returns the active case card, or nil outside the cases step.
func (s *Session) CurrentCase() *content.CaseCard {
	if s.step != StepCases || s.index >= len(s.lesson.Cases) {
		return nil
	}
	return &s.lesson.Cases[s.index]
}

// CurrentCheck returns the active check card, or nil outside the checks step.
func (s *Session) CurrentCheck() *content.CheckCard {
	if s.step != StepChecks || s.index >= len(s.lesson.Checks) {
		return nil
	}
	return &s.lesson.Checks[s.index]
}

// SelectOption records the answer for the current quiz or case item and
// reveals the explanation. Selecting again on an answered item is a no-op.
// An out-of-range option index is a caller bug and rejected.
func (s *Session) SelectOption(option int) error {
	if s.selected != nil {
		return nil
	}

	var correct int
	var options int
	var points int
	switch s.step {
	case StepQuiz:
		q := s.CurrentQuiz()
		if q == nil {
			return ErrNoCurrentItem
		}
		correct, options, points = q.CorrectIndex, len(q.Options), quizPoints
	case StepCases:
		c := s.CurrentCase()
		if c == nil {
			return ErrNoCurrentItem
		}
		correct, options, points = c.CorrectIndex, len(c.Options), casePoints
	default:
		return ErrNoCurrentItem
	}

	if option < 0 || option >= options {
		return fmt.Errorf("option index %d out of range [0,%d)", option, options)
	}
	chosen := option
	s.selected = &chosen
	s.showExplanation = true
	if option == correct {
		s.sessionScore += points
	}
	return nil
}

// AnswerCheck records the answer for the current check item and reveals the
// explanation. Answering again is a no-op.
func (s *Session) AnswerCheck(answer content.CheckAnswer) error {
	if s.checkAnswer != "" {
		return nil
	}
	c := s.CurrentCheck()
	if c == nil {
		return ErrNoCurrentItem
	}
	switch answer {
	case content.CheckYes, content.CheckNo, content.CheckDepends:
	default:
		return fmt.Errorf("unknown check answer %q", answer)
	}
	s.checkAnswer = answer
	s.showExplanation = true
	if answer == c.Answer {
		s.sessionScore += checkPoints
	}
	return nil
}

// Advance moves past the current item: to the next index, or to the next
// step when the active list is exhausted. Quiz, case and check items must
// be answered before advancing; the intro story advances freely.
func (s *Session) Advance() error {
	switch s.step {
	case StepFinished:
		return ErrFinished
	case StepIntro:
		s.step = s.nextStep(StepIntro)
		return nil
	}

	if !s.answered() {
		return ErrNotAnswered
	}
	s.selected = nil
	s.checkAnswer = ""
	s.showExplanation = false

	if s.index+1 < s.stepLen(s.step) {
		s.index++
		return nil
	}
	s.index = 0
	s.step = s.nextStep(s.step)
	return nil
}

// Confirm reports the lesson total to the owning project exactly once. The
// callback receives the session score plus completion bonus; a second
// confirmation is rejected.
func (s *Session) Confirm(report func(total int)) error {
	if s.step != StepFinished {
		return ErrNotAnswered
	}
	if s.reported {
		return ErrAlreadyReported
	}
	s.reported = true
	report(s.Total())
	return nil
}

func (s *Session) answered() bool {
	if s.step == StepChecks {
		return s.checkAnswer != ""
	}
	return s.selected != nil
}

func (s *Session) stepLen(step Step) int {
	switch step {
	case StepQuiz:
		return len(s.lesson.Quizzes)
	case StepCases:
		return len(s.lesson.Cases)
	case StepChecks:
		return len(s.lesson.Checks)
	default:
		return 0
	}
}

// nextStep returns the step after the given one for the session mode,
// skipping steps whose item list is empty.
func (s *Session) nextStep(after Step) Step {
	var order []Step
	if s.mode == ModePro {
		order = []Step{StepCases, StepChecks}
	} else {
		order = []Step{StepQuiz}
	}

	passed := after == StepIntro
	for _, step := range order {
		if !passed {
			if step == after {
				passed = true
			}
			continue
		}
		if s.stepLen(step) > 0 {
			return step
		}
	}
	return StepFinished
}
