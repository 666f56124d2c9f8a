package lesson

import (
	"testing"

	"podcastwerkstatt/internal/content"
)

func twoQuizLesson() content.TopicLesson {
	return content.TopicLesson{
		IntroStory: "Es war einmal...",
		Quizzes: []content.QuizQuestion{
			{ID: "q1", Question: "Frage eins?", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
			{ID: "q2", Question: "Frage zwei?", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
	}
}

func proLesson() content.TopicLesson {
	return content.TopicLesson{
		Cases: []content.CaseCard{
			{ID: "c1", Title: "Fall", Options: []string{"a", "b"}, CorrectIndex: 1},
		},
		Checks: []content.CheckCard{
			{ID: "ch1", Statement: "Darf ich das?", Answer: content.CheckNo},
		},
	}
}

func mustAdvance(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}

func mustSelect(t *testing.T, s *Session, option int) {
	t.Helper()
	if err := s.SelectOption(option); err != nil {
		t.Fatalf("SelectOption(%d): %v", option, err)
	}
}

func TestBasicsFlow(t *testing.T) {
	s := New(ModeBasics, twoQuizLesson(), 0)
	if s.Step() != StepIntro {
		t.Fatalf("initial step = %q, want intro", s.Step())
	}

	mustAdvance(t, s)
	if s.Step() != StepQuiz || s.Index() != 0 {
		t.Fatalf("after intro: step %q index %d", s.Step(), s.Index())
	}

	// First quiz answered correctly, second incorrectly.
	mustSelect(t, s, 1)
	if s.SessionScore() != 10 {
		t.Errorf("session score after correct answer = %d, want 10", s.SessionScore())
	}
	if !s.ShowExplanation() {
		t.Error("explanation hidden after answering")
	}
	mustAdvance(t, s)
	if s.Selected() != nil || s.ShowExplanation() {
		t.Error("selection not reset on advance")
	}
	mustSelect(t, s, 1)
	if s.SessionScore() != 10 {
		t.Errorf("session score after wrong answer = %d, want 10", s.SessionScore())
	}
	mustAdvance(t, s)

	if s.Step() != StepFinished {
		t.Fatalf("step = %q, want finished", s.Step())
	}
	if s.Total() != 60 {
		t.Errorf("Total = %d, want 60", s.Total())
	}

	var reported int
	if err := s.Confirm(func(total int) { reported = total }); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if reported != 60 {
		t.Errorf("reported total = %d, want 60", reported)
	}
}

func TestProFlow(t *testing.T) {
	s := New(ModePro, proLesson(), 100)
	if s.Step() != StepCases {
		t.Fatalf("pro mode starts at %q, want cases", s.Step())
	}

	mustSelect(t, s, 1)
	if s.SessionScore() != 20 {
		t.Errorf("session score after correct case = %d, want 20", s.SessionScore())
	}
	if s.DisplayedScore() != 120 {
		t.Errorf("displayed score = %d, want 120", s.DisplayedScore())
	}
	mustAdvance(t, s)

	if s.Step() != StepChecks {
		t.Fatalf("step = %q, want checks", s.Step())
	}
	if err := s.AnswerCheck(content.CheckNo); err != nil {
		t.Fatalf("AnswerCheck: %v", err)
	}
	if s.SessionScore() != 30 {
		t.Errorf("session score after correct check = %d, want 30", s.SessionScore())
	}
	mustAdvance(t, s)

	if s.Step() != StepFinished {
		t.Fatalf("step = %q, want finished", s.Step())
	}
	if s.Total() != 80 {
		t.Errorf("Total = %d, want 80", s.Total())
	}
}

func TestSelectIsOneShot(t *testing.T) {
	s := New(ModeBasics, twoQuizLesson(), 0)
	mustAdvance(t, s)

	mustSelect(t, s, 1)
	mustSelect(t, s, 0) // no-op, already answered
	if got := *s.Selected(); got != 1 {
		t.Errorf("selected option changed to %d after re-select", got)
	}
	if s.SessionScore() != 10 {
		t.Errorf("session score = %d after re-select, want 10", s.SessionScore())
	}

	// Selecting the correct answer repeatedly must not stack points either.
	mustSelect(t, s, 1)
	if s.SessionScore() != 10 {
		t.Errorf("session score = %d after repeated select, want 10", s.SessionScore())
	}
}

func TestOutOfRangeOption(t *testing.T) {
	s := New(ModeBasics, twoQuizLesson(), 0)
	mustAdvance(t, s)

	if err := s.SelectOption(3); err == nil {
		t.Error("SelectOption(3) on a 3-option quiz did not fail")
	}
	if err := s.SelectOption(-1); err == nil {
		t.Error("SelectOption(-1) did not fail")
	}
	if s.Selected() != nil {
		t.Error("failed selection left state behind")
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := New(ModeBasics, twoQuizLesson(), 0)
	mustAdvance(t, s)

	if err := s.Advance(); err != ErrNotAnswered {
		t.Errorf("Advance before answering = %v, want ErrNotAnswered", err)
	}
}

func TestEmptyLessonFinishesImmediately(t *testing.T) {
	s := New(ModePro, content.TopicLesson{}, 0)
	if s.Step() != StepFinished {
		t.Fatalf("empty pro lesson starts at %q, want finished", s.Step())
	}
	if s.Total() != 50 {
		t.Errorf("Total = %d, want the bare completion bonus 50", s.Total())
	}

	s = New(ModeBasics, content.TopicLesson{IntroStory: "nur Text"}, 0)
	mustAdvance(t, s)
	if s.Step() != StepFinished {
		t.Fatalf("basics lesson without quizzes ended at %q, want finished", s.Step())
	}
}

func TestEmptyCasesSkipToChecks(t *testing.T) {
	lesson := content.TopicLesson{
		Checks: []content.CheckCard{{ID: "ch1", Statement: "Frage?", Answer: content.CheckYes}},
	}
	s := New(ModePro, lesson, 0)
	if s.Step() != StepChecks {
		t.Fatalf("step = %q, want checks when cases are empty", s.Step())
	}
}

func TestConfirmReportsOnce(t *testing.T) {
	s := New(ModePro, content.TopicLesson{}, 0)

	calls := 0
	if err := s.Confirm(func(int) { calls++ }); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if err := s.Confirm(func(int) { calls++ }); err != ErrAlreadyReported {
		t.Errorf("second Confirm = %v, want ErrAlreadyReported", err)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestConfirmBeforeFinished(t *testing.T) {
	s := New(ModeBasics, twoQuizLesson(), 0)
	if err := s.Confirm(func(int) {}); err == nil {
		t.Error("Confirm before finished did not fail")
	}
}

func TestAdvancePastFinished(t *testing.T) {
	s := New(ModePro, content.TopicLesson{}, 0)
	if err := s.Advance(); err != ErrFinished {
		t.Errorf("Advance on finished = %v, want ErrFinished", err)
	}
}
