package service

import (
	"errors"
	"fmt"
	"strings"

	"podcastwerkstatt/internal/content"
	"podcastwerkstatt/internal/database"
	"podcastwerkstatt/internal/models"
	"podcastwerkstatt/internal/repository"
	"podcastwerkstatt/internal/scoring"
	"podcastwerkstatt/internal/utils"
)

var (
	ErrNoProject    = errors.New("no project exists for this session")
	ErrUnknownTopic = errors.New("unknown topic")
)

// BlockedTeamNameError is returned when a proposed team name contains
// words from the blocked list.
type BlockedTeamNameError struct {
	Words []string
}

func (e BlockedTeamNameError) Error() string {
	return fmt.Sprintf("team name contains blocked words: %s", strings.Join(e.Words, ", "))
}

// LessonKind identifies which completion flag a finished lesson sets.
type LessonKind string

const (
	LessonIntro LessonKind = "intro"
	LessonA     LessonKind = "lessonA"
	LessonB     LessonKind = "lessonB"
)

// ProjectService owns the project lifecycle: creation, lesson completion,
// script commits and reset. All mutations go through here and end in a
// repository save, so the stored record always reflects the last commit.
type ProjectService struct {
	repo *repository.ProjectRepository
	db   *database.DB
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository, db *database.DB) *ProjectService {
	return &ProjectService{repo: repo, db: db}
}

// Get returns the session's project, or nil when none exists (including
// when the stored record is malformed).
func (s *ProjectService) Get(sessionID string) (*models.Project, error) {
	return s.repo.Load(sessionID)
}

// Create forms a new team project with the fixed script template. The team
// name is validated for length and against the blocked-words list.
func (s *ProjectService) Create(sessionID, teamName string, topicID models.TopicID) (*models.Project, error) {
	teamName = strings.TrimSpace(teamName)
	if err := utils.ValidateTeamName(teamName); err != nil {
		return nil, err
	}
	blocked, err := s.db.ValidateTeamName(teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if len(blocked) > 0 {
		return nil, BlockedTeamNameError{Words: blocked}
	}
	if !topicID.Valid() {
		return nil, ErrUnknownTopic
	}

	project := models.NewProject(teamName, topicID, content.ScriptTemplate())
	if err := s.repo.Save(sessionID, project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Reset discards the session's project.
func (s *ProjectService) Reset(sessionID string) error {
	return s.repo.Clear(sessionID)
}

// CompleteLesson applies a finished lesson's total to the project: the
// points are added to the cumulative score, the matching completion flag is
// set, and any newly satisfied badges are unlocked. Returns the updated
// project and the badges unlocked by this completion.
func (s *ProjectService) CompleteLesson(sessionID string, kind LessonKind, total int) (*models.Project, []models.Badge, error) {
	project, err := s.repo.Load(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if project == nil {
		return nil, nil, ErrNoProject
	}

	project.Score += total
	switch kind {
	case LessonIntro:
		project.IntroCompleted = true
	case LessonA:
		project.LessonADone = true
	case LessonB:
		project.LessonBDone = true
	default:
		return nil, nil, fmt.Errorf("unknown lesson kind %q", kind)
	}

	newBadges := scoring.EvaluateBadges(*project)
	for _, b := range newBadges {
		project.UnlockedBadges = append(project.UnlockedBadges, b.ID)
	}

	if err := s.repo.Save(sessionID, *project); err != nil {
		return nil, nil, err
	}
	return project, newBadges, nil
}

// CommitScript stores the tuple produced by one workshop edit: the script,
// the recomputed total score, and the unlocked badge set.
func (s *ProjectService) CommitScript(sessionID string, script []models.ScriptCard, totalScore int, unlockedBadges []string) (*models.Project, error) {
	project, err := s.repo.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNoProject
	}

	project.Script = script
	project.Score = totalScore
	project.UnlockedBadges = unlockedBadges

	if err := s.repo.Save(sessionID, *project); err != nil {
		return nil, err
	}
	return project, nil
}

// Topic resolves the project's topic content record.
func (s *ProjectService) Topic(project *models.Project) (*content.Topic, error) {
	topic := content.TopicByID(project.TopicID)
	if topic == nil {
		return nil, ErrUnknownTopic
	}
	return topic, nil
}
