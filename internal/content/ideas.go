package content

import (
	"fmt"

	"podcastwerkstatt/internal/models"
)

// IdeaList is a titled list of writing prompts for one script card.
type IdeaList struct {
	Title string
	Items []string
}

// ContentIdeas returns the idea panel for the given card type. The
// explanation, example, boundary and tip lists come from the topic record;
// hook, intro and outro have generic prompts shared by all topics.
func ContentIdeas(topic *Topic, cardType models.CardType) IdeaList {
	switch cardType {
	case models.CardExplanation:
		return IdeaList{Title: fmt.Sprintf("Erklärung: %s", topic.SimpleTitle), Items: topic.MiniExplain}
	case models.CardExample:
		return IdeaList{Title: "Ideen für Beispiele", Items: topic.ExampleIdeas}
	case models.CardBoundary:
		return IdeaList{Title: "Wann ist die Grenze erreicht?", Items: topic.BoundaryIdeas}
	case models.CardTip:
		return IdeaList{Title: "Tipps für die Klasse", Items: topic.SchoolTips}
	case models.CardHook:
		return IdeaList{Title: "Ideen für den Einstieg", Items: []string{
			"Starte mit einem lauten Geräusch!",
			"Stelle eine Frage an die Zuhörer.",
			"Erzähle ein kurzes Rätsel.",
			"Mach ein kleines Rollenspiel.",
		}}
	case models.CardIntro:
		return IdeaList{Title: "Ideen für die Begrüßung", Items: []string{
			fmt.Sprintf("Sagt eure Namen und: Wir sind das Team %s!", topic.SimpleTitle),
			"Sagt, aus welcher Klasse ihr kommt.",
			"Macht Musik am Anfang.",
			"Erklärt kurz, was ein Grundrecht überhaupt ist.",
		}}
	case models.CardOutro:
		return IdeaList{Title: "Ideen für den Schluss", Items: []string{
			"Bedankt euch fürs Zuhören.",
			"Spielt ein Lied zum Schluss.",
			"Wünscht allen einen schönen Tag.",
			"Wiederholt nochmal den wichtigsten Satz.",
		}}
	default:
		return IdeaList{Title: "Allgemeine Ideen"}
	}
}
