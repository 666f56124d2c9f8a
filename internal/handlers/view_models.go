package handlers

import (
	"podcastwerkstatt/internal/content"
	"podcastwerkstatt/internal/models"
	"podcastwerkstatt/internal/scoring"
)

// BadgeView is a badge with its unlock status for the current project
type BadgeView struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	Unlocked    bool
}

// LevelView summarizes the score ladder position for the dashboard
type LevelView struct {
	Title        string
	Icon         string
	Progress     float64
	NextTitle    string
	PointsToNext int
}

// CardView is one script card with its derived editing state
type CardView struct {
	Index     int
	Type      models.CardType
	Title     string
	Text      string
	MinWords  int
	WordCount int
	Complete  bool
	Active    bool
}

// WordBankView is a glossary entry with its derived usage status
type WordBankView struct {
	Word       string
	Definition string
	Used       bool
}

// TopicView is the subset of a topic shown on the selection page
type TopicView struct {
	ID          models.TopicID
	Title       string
	SimpleTitle string
	ArticleRef  string
	Icon        string
	Description string
}

func buildBadgeViews(p *models.Project) []BadgeView {
	views := make([]BadgeView, 0, len(scoring.Badges))
	for _, b := range scoring.Badges {
		views = append(views, BadgeView{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Icon:        b.Icon,
			Color:       b.Color,
			Unlocked:    p.HasBadge(b.ID),
		})
	}
	return views
}

func buildLevelView(score int) LevelView {
	current := models.CurrentLevel(score)
	view := LevelView{
		Title:    current.Title,
		Icon:     current.Icon,
		Progress: models.LevelProgress(score),
	}
	if next := models.NextLevel(score); next != nil {
		view.NextTitle = next.Title
		view.PointsToNext = next.Min - score
	}
	return view
}

func buildCardViews(script []models.ScriptCard, active int) []CardView {
	views := make([]CardView, 0, len(script))
	for i, card := range script {
		views = append(views, CardView{
			Index:     i,
			Type:      card.Type,
			Title:     card.Title,
			Text:      card.Text,
			MinWords:  card.MinWords,
			WordCount: scoring.WordCount(card.Text),
			Complete:  scoring.CardComplete(card),
			Active:    i == active,
		})
	}
	return views
}

func buildWordBankViews(script []models.ScriptCard, wordBank []models.WordDef) []WordBankView {
	used := make(map[string]bool)
	for _, w := range scoring.UsedWordBankWords(script, wordBank) {
		used[w] = true
	}
	views := make([]WordBankView, 0, len(wordBank))
	for _, def := range wordBank {
		views = append(views, WordBankView{
			Word:       def.Word,
			Definition: def.Definition,
			Used:       used[def.Word],
		})
	}
	return views
}

func buildTopicViews() []TopicView {
	topics := content.Topics()
	views := make([]TopicView, 0, len(topics))
	for _, t := range topics {
		views = append(views, TopicView{
			ID:          t.ID,
			Title:       t.Title,
			SimpleTitle: t.SimpleTitle,
			ArticleRef:  t.ArticleRef,
			Icon:        t.Icon,
			Description: t.Description,
		})
	}
	return views
}
