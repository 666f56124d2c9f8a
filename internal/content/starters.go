package content

import "podcastwerkstatt/internal/models"

// Generic sentence starters shared by every topic.

var commonHooks = []StarterOption{
	{Label: "Der Sound-Effekt", Fragment: "(Geräusch: PANG! BOOM!) ", Suggestions: []string{"Habt ihr das gehört?", "So fühlt es sich an, wenn...", "Genau so platzt ein Traum."}},
	{Label: "Stell dir vor...", Fragment: "Stell dir vor, ", Suggestions: []string{"du kommst in die Schule und keiner redet mit dir.", "plötzlich gehört dir alles.", "jemand nimmt dir einfach dein Pausenbrot weg."}},
	{Label: "Frage an alle", Fragment: "Hand aufs Herz: ", Suggestions: []string{"Wer von euch wurde schon mal ungerecht behandelt?", "Kennt ihr das Gefühl von Angst?"}},
	{Label: "Achtung, wichtig!", Fragment: "Spitzt die Ohren, denn ", Suggestions: []string{"heute geht es um etwas, das uns alle angeht!", "wir lüften ein Geheimnis."}},
}

var commonIntros = []StarterOption{
	{Label: "Die Profis", Fragment: "Hallo, hier sind ", Suggestions: []string{"die Grundrechte-Checker.", "eure Reporter aus der 3b.", "das Team Gerechtigkeit."}},
	{Label: "Das Thema", Fragment: "In unserer heutigen Sendung geht es um ", Suggestions: []string{"ein sehr wichtiges Grundrecht.", "Fairness in der Schule.", "die Regeln unseres Zusammenlebens."}},
	{Label: "Neugierig machen", Fragment: "Bleibt dran, denn wir erklären euch heute, ", Suggestions: []string{"warum dieses Recht so wichtig ist.", "was ihr tun könnt, wenn es Ärger gibt."}},
}

var commonOutros = []StarterOption{
	{Label: "Fazit", Fragment: "Merkt euch also: ", Suggestions: []string{"Seid nett zueinander!", "Achtet auf eure Rechte!", "Respekt ist das Wichtigste!"}},
	{Label: "Tschüss!", Fragment: "Danke fürs Zuhören! Das waren ", Suggestions: []string{"eure Grundrechte-Profis.", "die Kinder aus der 3b."}},
	{Label: "Aufruf", Fragment: "Und jetzt seid ihr dran: ", Suggestions: []string{"Macht die Welt ein bisschen besser!", "Passt gut aufeinander auf!"}},
}

var commonTips = []StarterOption{
	{Label: "Unser Rat", Fragment: "Unser wichtigster Tipp für euch ist: ", Suggestions: []string{"Sagt laut und deutlich STOPP!", "Holt euch Hilfe bei einem Erwachsenen."}},
	{Label: "Das hilft", Fragment: "Wenn ihr sowas seht, dann könnt ihr ", Suggestions: []string{"hingehen und fragen 'Alles okay?'.", "die Lehrerin holen."}},
	{Label: "Gemeinsam", Fragment: "Wir alle können helfen, indem wir ", Suggestions: []string{"freundlich zueinander sind.", "nicht wegsehen."}},
}

var commonExplanations = []StarterOption{
	{Label: "Das bedeutet...", Fragment: "Das bedeutet ganz einfach, dass ", Suggestions: []string{"jeder Mensch gleich viel wert ist.", "niemand bestimmen darf, was du denkst.", "wir alle geschützt sind."}},
	{Label: "Im Gesetz", Fragment: "Im Grundgesetz steht dazu: ", Suggestions: []string{"'Die Würde des Menschen ist unantastbar'.", "'Alle Menschen sind vor dem Gesetz gleich'."}},
	{Label: "Einfach gesagt", Fragment: "Man kann auch sagen: ", Suggestions: []string{"Es ist wie ein Schutzschild.", "Es ist die wichtigste Spielregel in Deutschland."}},
}

var commonExamples = []StarterOption{
	{Label: "Schule", Fragment: "Stellt euch vor, in der Schule ", Suggestions: []string{"wird jemand beim Sport nie gewählt.", "nimmt dir jemand einfach dein Pausenbrot weg."}},
	{Label: "Alltag", Fragment: "Ein Beispiel aus dem Alltag ist: ", Suggestions: []string{"Wenn jemand im Bus beleidigt wird.", "Wenn du entscheiden darfst, welche Musik du hörst."}},
	{Label: "Erlebnis", Fragment: "Vielleicht habt ihr das auch schon erlebt: ", Suggestions: []string{"Jemand wird ausgelacht, weil er eine Brille trägt.", "Jemand traut sich nicht, seine Meinung zu sagen."}},
}

var commonBoundaries = []StarterOption{
	{Label: "Das Aber", Fragment: "Aber Achtung: ", Suggestions: []string{"Das gilt nicht immer!", "Es gibt eine wichtige Grenze."}},
	{Label: "Die Regel", Fragment: "Die Freiheit hört da auf, wo ", Suggestions: []string{"man anderen wehtut.", "man jemanden beleidigt.", "es gefährlich wird."}},
	{Label: "Verboten", Fragment: "Nicht erlaubt ist zum Beispiel, ", Suggestions: []string{"Lügen zu verbreiten.", "zu schlagen oder zu treten."}},
}

// commonStarters is shared by all topics; the reference content set has no
// topic-specific starter variants.
func commonStarters() map[models.CardType][]StarterOption {
	return map[models.CardType][]StarterOption{
		models.CardHook:        commonHooks,
		models.CardIntro:       commonIntros,
		models.CardOutro:       commonOutros,
		models.CardTip:         commonTips,
		models.CardExplanation: commonExplanations,
		models.CardExample:     commonExamples,
		models.CardBoundary:    commonBoundaries,
	}
}
