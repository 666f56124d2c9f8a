package scoring

import "podcastwerkstatt/internal/models"

// Badges is the fixed badge catalog. Conditions only ever look at the
// project snapshot, so unlocking is idempotent.
var Badges = []models.Badge{
	{
		ID:          "law_expert",
		Title:       "Gesetzes-Hüter",
		Description: "Du weißt, was das Grundgesetz ist!",
		Icon:        "📜",
		Color:       "bg-orange-100 text-orange-600 border-orange-200",
		Condition:   func(p models.Project) bool { return p.IntroCompleted },
	},
	{
		ID:          "knowledge_starter",
		Title:       "Wissens-Starter",
		Description: "Das Basis-Wissen gemeistert!",
		Icon:        "💡",
		Color:       "bg-yellow-100 text-yellow-600 border-yellow-200",
		Condition:   func(p models.Project) bool { return p.LessonADone },
	},
	{
		ID:          "knowledge_pro",
		Title:       "Grundrechte-Profi",
		Description: "Den Profi-Check bestanden!",
		Icon:        "🎓",
		Color:       "bg-indigo-100 text-indigo-600 border-indigo-200",
		Condition:   func(p models.Project) bool { return p.LessonBDone },
	},
	{
		ID:          "word_acrobat",
		Title:       "Wort-Akrobat",
		Description: "Über 100 Wörter im Skript!",
		Icon:        "🎪",
		Color:       "bg-purple-100 text-purple-600 border-purple-200",
		Condition:   func(p models.Project) bool { return TotalWords(p.Script) >= 100 },
	},
	{
		ID:          "radio_star",
		Title:       "Radio Star",
		Description: "Alle Teile des Skripts sind fertig!",
		Icon:        "🎙️",
		Color:       "bg-green-100 text-green-600 border-green-200",
		Condition: func(p models.Project) bool {
			if len(p.Script) == 0 {
				return false
			}
			for _, card := range p.Script {
				if !CardComplete(card) {
					return false
				}
			}
			return true
		},
	},
}

// BadgeByID returns the catalog badge with the given identifier, or nil.
func BadgeByID(id string) *models.Badge {
	for i := range Badges {
		if Badges[i].ID == id {
			return &Badges[i]
		}
	}
	return nil
}

// EvaluateBadges returns the badges the project newly qualifies for, in
// catalog order. Already-unlocked badges are never returned again, and
// badges are never revoked once unlocked.
func EvaluateBadges(p models.Project) []models.Badge {
	var earned []models.Badge
	for _, badge := range Badges {
		if p.HasBadge(badge.ID) {
			continue
		}
		if badge.Condition(p) {
			earned = append(earned, badge)
		}
	}
	return earned
}
