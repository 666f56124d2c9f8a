package content

import "podcastwerkstatt/internal/models"

func init() {
	register(&Topic{
		ID:          models.TopicArt16a,
		Title:       "Art. 16a GG",
		SimpleTitle: "Asyl (Schutz)",
		ArticleRef:  "Art. 16a",
		Icon:        "🏠",
		Description: "Schutz suchen, wenn man nicht sicher ist.",
		Lesson: TopicLesson{
			IntroStory: "In Alis Heimatland ist Krieg. Bomben fallen auf Häuser. Seine Familie musste fliehen. Sie haben alles zurückgelassen: Spielzeug, Freunde, Oma und Opa. Jetzt sind sie in Deutschland. Art. 16a sagt: Politisch Verfolgte genießen Asyl. Das ist ein schweres Wort. Es bedeutet: Menschen, die in ihrer Heimat in Lebensgefahr sind (z.B. wegen ihrer Meinung, Religion oder weil Krieg ist), dürfen hier Schutz suchen. Deutschland hilft ihnen, bis es wieder sicher ist.",
			Quizzes: []QuizQuestion{
				{ID: "q1", Question: "Warum fliehen Menschen?", Options: []string{"Urlaub", "Gefahr (Krieg, Verfolgung)", "Langeweile"}, CorrectIndex: 1, Explanation: "Sie haben Angst um ihr Leben oder ihre Freiheit."},
				{ID: "q2", Question: "Was brauchen Flüchtlinge?", Options: []string{"Sicherheit und Frieden", "Süßigkeiten", "Ein schnelles Auto"}, CorrectIndex: 0, Explanation: "Sicherheit ist das Wichtigste. Sie wollen keine Angst mehr haben."},
				{ID: "q3", Question: "Was bedeutet Asyl?", Options: []string{"Urlaub im Hotel", "Schutz vor Gefahr", "Hausaufgabenfrei"}, CorrectIndex: 1, Explanation: "Es ist ein sicherer Ort für Menschen in Not."},
				{ID: "q4", Question: "Ist es leicht, die Heimat zu verlassen?", Options: []string{"Ja, macht Spaß", "Nein, man vermisst alles", "Egal"}, CorrectIndex: 1, Explanation: "Die meisten Menschen wären lieber zu Hause, wenn es dort sicher wäre. Man verliert Freunde und Heimat."},
				{ID: "q5", Question: "Dürfen Kinder auch Asyl bekommen?", Options: []string{"Nein, nur Erwachsene", "Ja, natürlich", "Nur wenn sie brav sind"}, CorrectIndex: 1, Explanation: "Kinder brauchen besonders viel Schutz, besonders im Krieg."},
				{ID: "q6", Question: "Was ist das Wichtigste für neue Kinder?", Options: []string{"Dass sie coole Kleidung haben", "Dass sie Freunde finden", "Dass sie gut Fußball spielen"}, CorrectIndex: 1, Explanation: "Freunde helfen beim Ankommen und beim Deutsch lernen."},
			},
			Cases: []CaseCard{
				{ID: "c1", Title: "Die Sprache", Scenario: "Ein neues Kind spricht kein Deutsch. Manche Kinder verdrehen die Augen, weil das Spielen so kompliziert ist.", Question: "Wie reagierst du?", Options: []string{"Ich spiele nicht mit ihm.", "Ich zeige mit Händen, wie es geht."}, CorrectIndex: 1, Explanation: "Man kann auch ohne Worte spielen. Das Kind freut sich riesig über Anschluss und lernt so schneller."},
				{ID: "c2", Title: "Vorurteile", Scenario: "Jemand sagt: \"Die Flüchtlinge nehmen uns alles weg!\"", Question: "Stimmt das?", Options: []string{"Ja, habe ich gehört.", "Nein, das ist ein Vorurteil."}, CorrectIndex: 1, Explanation: "Menschen suchen Schutz vor dem Tod. Wir haben genug, um zu teilen. Solche Sätze machen Angst."},
				{ID: "c3", Title: "Das Trauma", Scenario: "Ali erschrickt sehr laut und zittert, als eine Tür zuknallt.", Question: "Warum?", Options: []string{"Er ist ein Angsthase.", "Das Geräusch erinnert ihn an den Krieg."}, CorrectIndex: 1, Explanation: "Viele Flüchtlinge haben schlimme Dinge (Bomben) erlebt und sind deshalb schreckhaft (Trauma). Wir müssen geduldig sein."},
				{ID: "c4", Title: "Das Essen", Scenario: "Fatima isst in der Pause etwas, das du nicht kennst und das anders riecht. Ein Kind sagt \"Igitt\".", Question: "Wie reagierst du?", Options: []string{"Ich sage 'Probier doch mal oder sei still'.", "Ich lache mit."}, CorrectIndex: 0, Explanation: "Andere Länder, anderes Essen. Man muss nicht alles mögen, aber man darf es nicht beleidigen."},
				{ID: "c5", Title: "Heimweh", Scenario: "Das neue Kind weint in der Ecke und zeigt auf ein Foto von einem Haus.", Question: "Was ist los?", Options: []string{"Es hat Bauchweh.", "Es vermisst sein altes Zuhause."}, CorrectIndex: 1, Explanation: "Es ist sehr schwer, alles zurückzulassen. Ein bisschen Trost hilft."},
			},
			Checks: []CheckCard{
				{ID: "ch1", Statement: "Darf ich fragen, warum jemand geflohen ist?", Answer: CheckDepends, Explanation: "Ja, aber sei vorsichtig. Manche Erinnerungen sind sehr traurig. Wenn das Kind nicht reden will, ist das okay."},
				{ID: "ch2", Statement: "Darf ich sagen: 'Geh zurück in dein Land'?", Answer: CheckNo, Explanation: "Das ist sehr verletzend und gemein. Jeder Mensch hat das Recht auf Sicherheit."},
				{ID: "ch3", Statement: "Darf ich mein Pausenbrot teilen?", Answer: CheckYes, Explanation: "Das ist eine super nette Geste und hilft beim Freunde finden!"},
				{ID: "ch4", Statement: "Müssen Flüchtlinge für immer bleiben?", Answer: CheckDepends, Explanation: "Viele wollen zurück, wenn der Krieg vorbei ist. Manche bleiben auch hier und werden neue Nachbarn."},
			},
		},
		MiniExplain:      []string{"Schutz bei Verfolgung.", "Krieg ist ein Fluchtgrund.", "Sicherheit ist ein Recht."},
		KeySentence:      "Asyl heißt: Schutz finden.",
		ExampleIdeas:     []string{"Neues Kind in der Klasse.", "Familie auf der Flucht.", "Angst vor Polizei."},
		BoundaryIdeas:    []string{"Keine Vorurteile.", "Herkunft ist egal.", "Nicht ständig nach schlimmen Dingen fragen."},
		SchoolTips:       []string{"Wir sind Paten.", "Wir erklären mit Händen und Füßen.", "Wir sind freundlich."},
		SentenceStarters: commonStarters(),
		WordBank: []models.WordDef{
			{Word: "Schutz", Definition: "In Sicherheit sein."},
			{Word: "sicher", Definition: "Keine Gefahr."},
			{Word: "Flucht", Definition: "Weglaufen, weil es gefährlich ist."},
			{Word: "Krieg", Definition: "Wenn Länder gegeneinander kämpfen."},
			{Word: "Willkommen", Definition: "Sagen: Schön, dass du da bist!"},
			{Word: "Hilfe", Definition: "Jemandem Unterstützung geben."},
			{Word: "Zuhause", Definition: "Der Ort, wo man sich wohl fühlt."},
			{Word: "Verfolgung", Definition: "Wenn jemand gejagt oder eingesperrt wird, weil er eine andere Meinung hat."},
			{Word: "Heimat", Definition: "Das Land oder die Stadt, wo man herkommt."},
			{Word: "Sicherheit", Definition: "Keine Angst haben müssen."},
			{Word: "Integration", Definition: "Sich in einem neuen Land einleben und Teil davon werden."},
			{Word: "Sprache", Definition: "Wichtig, um sich zu verstehen und Freunde zu finden."},
			{Word: "Heimweh", Definition: "Traurig sein, weil man sein altes Zuhause vermisst."},
			{Word: "Trauma", Definition: "Eine seelische Verletzung durch schlimme Erlebnisse."},
		},
	})
}
