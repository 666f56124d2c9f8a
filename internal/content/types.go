package content

import "podcastwerkstatt/internal/models"

// StarterOption is one sentence-starter category for a card type: a display
// label, the opening fragment, and complete-sentence suggestions that each
// continue the fragment.
type StarterOption struct {
	Label       string
	Fragment    string
	Suggestions []string
}

// QuizQuestion is a multiple-choice question with exactly one correct option.
type QuizQuestion struct {
	ID           string
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// CaseCard is an applied scenario ("Fallbeispiel") with a question about it.
type CaseCard struct {
	ID           string
	Title        string
	Scenario     string
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// CheckAnswer is the answer to a "Darf ich das?" check.
type CheckAnswer string

const (
	CheckYes     CheckAnswer = "yes"
	CheckNo      CheckAnswer = "no"
	CheckDepends CheckAnswer = "depends"
)

// CheckCard is a yes/no/depends statement check.
type CheckCard struct {
	ID          string
	Statement   string
	Answer      CheckAnswer
	Explanation string
}

// TopicLesson bundles the learning content for one topic: the basics lesson
// (intro story plus quizzes) and the pro lesson (cases plus checks).
type TopicLesson struct {
	IntroStory string
	Quizzes    []QuizQuestion
	Cases      []CaseCard
	Checks     []CheckCard
}

// Topic is the full static content record for one constitutional right.
type Topic struct {
	ID               models.TopicID
	Title            string
	SimpleTitle      string
	ArticleRef       string
	Icon             string
	Description      string
	Lesson           TopicLesson
	MiniExplain      []string
	KeySentence      string
	ExampleIdeas     []string
	BoundaryIdeas    []string
	SchoolTips       []string
	SentenceStarters map[models.CardType][]StarterOption
	WordBank         []models.WordDef
}
