package models

// Level is one rung of the score ladder shown on the dashboard.
type Level struct {
	Min   int
	Title string
	Icon  string
}

// Levels is the fixed ladder, ordered by minimum score.
var Levels = []Level{
	{Min: 0, Title: "Reporter-Neuling", Icon: "🎤"},
	{Min: 100, Title: "Wort-Entdecker", Icon: "🔎"},
	{Min: 300, Title: "Fakten-Sammler", Icon: "📚"},
	{Min: 600, Title: "Grundrechte-Experte", Icon: "⭐"},
	{Min: 1000, Title: "Chefredakteur", Icon: "👑"},
}

// CurrentLevel returns the highest level whose minimum the score reaches.
func CurrentLevel(score int) Level {
	current := Levels[0]
	for _, l := range Levels {
		if score >= l.Min {
			current = l
		}
	}
	return current
}

// NextLevel returns the next level above the score, or nil at the top.
func NextLevel(score int) *Level {
	for i := range Levels {
		if Levels[i].Min > score {
			return &Levels[i]
		}
	}
	return nil
}

// LevelProgress returns the percentage of the way from the current level to
// the next, clamped to [0,100]. At the top level it is always 100.
func LevelProgress(score int) float64 {
	current := CurrentLevel(score)
	next := NextLevel(score)
	if next == nil {
		return 100
	}
	levelRange := next.Min - current.Min
	if levelRange <= 0 {
		return 100
	}
	progress := float64(score-current.Min) / float64(levelRange) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
