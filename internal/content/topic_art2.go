package content

import "podcastwerkstatt/internal/models"

func init() {
	register(&Topic{
		ID:          models.TopicArt2,
		Title:       "Art. 2 GG",
		SimpleTitle: "Freiheit & Körper",
		ArticleRef:  "Art. 2",
		Icon:        "🕊️",
		Description: "Dein Körper gehört dir.",
		Lesson: TopicLesson{
			IntroStory: "Paul mag es nicht, wenn seine Tante ihn immer fest drückt und abknutscht. Er traut sich nicht, 'Nein' zu sagen, weil sie ja eine Erwachsene ist und es gut meint. Aber Art. 2 im Grundgesetz ist eindeutig: Dein Körper gehört dir! Das nennt man 'Körperliche Unversehrtheit'. Keiner darf dich anfassen oder verletzen, wenn du das nicht willst. Außerdem darf jeder seine Persönlichkeit entfalten – also so sein, wie er will, Hobbys haben die er mag, und Kleidung tragen die ihm gefällt – solange er anderen damit nicht schadet.",
			Quizzes: []QuizQuestion{
				{ID: "q1", Question: "Wem gehört dein Körper?", Options: []string{"Meinen Eltern", "Mir allein", "Der Schule"}, CorrectIndex: 1, Explanation: "Korrekt! Du bist der Bestimmer über deinen Körper."},
				{ID: "q2", Question: "Was gilt bei 'Stopp'?", Options: []string{"Weitermachen", "Sofort aufhören", "Lachen"}, CorrectIndex: 1, Explanation: "Stopp heißt Stopp. Sofort. Egal ob im Spiel oder im Ernst."},
				{ID: "q3", Question: "Darf ich laut Musik hören?", Options: []string{"Immer und überall", "Ja, aber nicht wenn Nachbarn schlafen wollen", "Nein, nie"}, CorrectIndex: 1, Explanation: "Das ist das Wichtigste: Deine Freiheit endet dort, wo die Freiheit der anderen beginnt."},
				{ID: "q4", Question: "Darf man jemanden einsperren?", Options: []string{"Ja, aus Spaß", "Nein, Freiheit ist ein hohes Gut", "Nur Lehrer dürfen das"}, CorrectIndex: 1, Explanation: "Niemand darf einfach so eingesperrt werden (außer Polizei/Gefängnis mit richterlichem Grund)."},
				{ID: "q5", Question: "Gehören deine Geheimnisse dir?", Options: []string{"Ja, das ist Privatsphäre", "Nein, Eltern müssen alles wissen", "Nur am Geburtstag"}, CorrectIndex: 0, Explanation: "Du hast ein Recht auf Privatsphäre. Tagebücher oder Chatnachrichten gehen andere nichts an."},
				{ID: "q6", Question: "Darf ich anziehen was ich will?", Options: []string{"Ja, das ist freie Entfaltung", "Nein, alle müssen gleich aussehen", "Nur grüne Sachen"}, CorrectIndex: 0, Explanation: "Im Prinzip ja! Manchmal gibt es aber Regeln (z.B. keine Badesachen im Unterricht)."},
			},
			Cases: []CaseCard{
				{ID: "c1", Title: "Der Haarschnitt", Scenario: "Lena möchte sich die Haare kurz schneiden lassen. Ihre Freundin sagt: \"Das sieht bestimmt doof aus, mach das nicht!\"", Question: "Wer entscheidet?", Options: []string{"Die Freundin", "Lena"}, CorrectIndex: 1, Explanation: "Es ist Lenas Kopf und ihre Entscheidung (Freie Entfaltung der Persönlichkeit)."},
				{ID: "c2", Title: "Die Rauferei", Scenario: "Ben und Ali raufen aus Spaß. Plötzlich ruft Ali \"Aua, Stopp!\". Ben macht weiter, weil er gerade gewinnt.", Question: "Ist das okay?", Options: []string{"Nein, er muss aufhören.", "Ja, er gewinnt ja gerade."}, CorrectIndex: 0, Explanation: "Sobald einer Stopp sagt oder Schmerzen hat, ist die Grenze überschritten. Weitermachen ist Körperverletzung."},
				{ID: "c3", Title: "Das Tagebuch", Scenario: "Die Mutter liest heimlich das Tagebuch ihrer Tochter, weil sie neugierig ist, in wen sie verliebt ist.", Question: "Darf sie das?", Options: []string{"Ja, sie ist die Mutter.", "Nein, das gehört zur Persönlichkeit."}, CorrectIndex: 1, Explanation: "Auch Kinder haben ein Recht auf Geheimnisse und Privatsphäre, besonders bei Gefühlen."},
				{ID: "c4", Title: "Der Zettel", Scenario: "Der Lehrer findet einen Zettel, den Sarah geschrieben hat. Er will ihn laut vor der Klasse vorlesen.", Question: "Darf er das?", Options: []string{"Nein, das ist Sarahs privates Eigentum.", "Ja, in der Schule gibt es keine Geheimnisse."}, CorrectIndex: 0, Explanation: "Der Lehrer darf den Zettel wegnehmen, wenn er stört, aber er darf ihn nicht laut vorlesen und Sarah bloßstellen."},
				{ID: "c5", Title: "Die Mutprobe II", Scenario: "Die anderen sagen: \"Spring von der Mauer, sonst bist du ein Feigling!\" Die Mauer ist sehr hoch.", Question: "Was ist Freiheit?", Options: []string{"Springen, um cool zu sein.", "Nein sagen und auf seinen Körper achten."}, CorrectIndex: 1, Explanation: "Freiheit heißt auch, 'Nein' zu sagen, wenn etwas gefährlich für deinen Körper ist."},
			},
			Checks: []CheckCard{
				{ID: "ch1", Statement: "Darf ich meine Haare grün färben?", Answer: CheckYes, Explanation: "Das ist deine persönliche Freiheit (wenn deine Eltern zustimmen)."},
				{ID: "ch2", Statement: "Darf ich jemanden schubsen, der mich nervt?", Answer: CheckNo, Explanation: "Damit verletzt du seine körperliche Unversehrtheit. Hände weg!"},
				{ID: "ch3", Statement: "Darf ich 'Nein' sagen, wenn Oma mich küssen will?", Answer: CheckYes, Explanation: "Dein Körper, deine Regeln. Ein Handschlag oder Winken reicht auch."},
				{ID: "ch4", Statement: "Darf ich in der Bibliothek schreien?", Answer: CheckNo, Explanation: "Hier stört deine Freiheit die anderen beim Lesen."},
			},
		},
		MiniExplain:      []string{"Du darfst vieles selbst entscheiden.", "Dein Körper gehört dir allein.", "Niemand darf dir wehtun."},
		KeySentence:      "Mein Körper gehört mir – Stopp heißt Stopp.",
		ExampleIdeas:     []string{"Jemand schubst oder kneift.", "Ungewollte Umarmung.", "Mütze wegnehmen."},
		BoundaryIdeas:    []string{"Deine Freiheit endet dort, wo sie anderen wehtut.", "Regeln schützen uns.", "Stopp akzeptieren."},
		SchoolTips:       []string{"Wir akzeptieren ein 'Nein' sofort.", "Wir fragen vor dem Umarmen.", "Wir klären Streit mit Worten."},
		SentenceStarters: commonStarters(),
		WordBank: []models.WordDef{
			{Word: "Freiheit", Definition: "Tun können, was man möchte (solange man niemanden stört)."},
			{Word: "entscheiden", Definition: "Selbst eine Wahl treffen."},
			{Word: "Nein", Definition: "Ein wichtiges Wort, um Grenzen zu setzen."},
			{Word: "Stopp", Definition: "Sofort aufhören."},
			{Word: "sicher", Definition: "Keine Angst haben müssen."},
			{Word: "Grenze", Definition: "Bis hierhin und nicht weiter."},
			{Word: "Körper", Definition: "Er gehört nur dir allein."},
			{Word: "Privatsphäre", Definition: "Dein persönlicher Bereich (z.B. im Bad oder Tagebuch)."},
			{Word: "Unversehrtheit", Definition: "Dass der Körper nicht verletzt werden darf."},
			{Word: "Entfaltung", Definition: "Sich so entwickeln, wie man möchte (Hobbys, Kleidung)."},
			{Word: "Zwang", Definition: "Wenn dich jemand zwingt, etwas zu tun, was du nicht willst."},
			{Word: "Rücksicht", Definition: "Aufpassen, dass man andere nicht stört."},
			{Word: "Schmerz", Definition: "Das Signal des Körpers, dass etwas nicht stimmt."},
			{Word: "Einwilligung", Definition: "Ja sagen, bevor jemand dich anfasst."},
		},
	})
}
