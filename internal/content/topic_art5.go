package content

import "podcastwerkstatt/internal/models"

func init() {
	register(&Topic{
		ID:          models.TopicArt5,
		Title:       "Art. 5 GG",
		SimpleTitle: "Meinung",
		ArticleRef:  "Art. 5",
		Icon:        "📢",
		Description: "Du darfst deine Meinung sagen.",
		Lesson: TopicLesson{
			IntroStory: "Tim sagt im Unterricht: 'Ich finde das Projekt langweilig.' Der Lehrer schimpft: 'Sei still! Deine Meinung interessiert nicht.' Darf der Lehrer das? Nein! Art. 5 schützt unsere Meinung. In Deutschland darf jeder sagen, schreiben oder malen, was er denkt. Es gibt keine Zensur (das heißt, der Staat darf Zeitungen nicht verbieten). Aber Vorsicht: Es gibt einen Unterschied zwischen einer Meinung und einer Beleidigung! Und man darf keine Lügen verbreiten.",
			Quizzes: []QuizQuestion{
				{ID: "q1", Question: "Darfst du deine Meinung sagen?", Options: []string{"Nein, Kinder nicht", "Ja, das ist mein Recht", "Nur zu Hause"}, CorrectIndex: 1, Explanation: "Jeder darf seine Meinung sagen, auch Kinder."},
				{ID: "q2", Question: "Was ist verboten?", Options: []string{"Kritik üben", "Beleidigung und Lügen", "Lob aussprechen"}, CorrectIndex: 1, Explanation: "Beleidigungen ('Du Idiot') sind keine Meinung, sondern verletzend. Lügen sind auch keine Meinung."},
				{ID: "q3", Question: "Wo darf man seine Meinung sagen?", Options: []string{"Überall (Schule, Internet, Straße)", "Nur im Keller", "Nur wenn man leise flüstert"}, CorrectIndex: 0, Explanation: "Meinungsfreiheit gilt überall, auch bei Demos auf der Straße oder im Internet."},
				{ID: "q4", Question: "Darf man Zeitungen verbieten?", Options: []string{"Ja, wenn sie den Politiker nerven", "Nein, es gibt Pressefreiheit", "Ja, am Wochenende"}, CorrectIndex: 1, Explanation: "Journalisten dürfen schreiben, was passiert, auch wenn es Politikern nicht gefällt."},
				{ID: "q5", Question: "Darf ich im Internet alles schreiben?", Options: []string{"Ja, ist ja anonym", "Nein, auch da gelten Regeln", "Nur in Großbuchstaben"}, CorrectIndex: 1, Explanation: "Auch im Internet darf man nicht beleidigen oder hetzen (Hass-Kommentare)."},
				{ID: "q6", Question: "Was sind 'Fake News'?", Options: []string{"Langweilige Nachrichten", "Absichtliche Lügen", "Wetterbericht"}, CorrectIndex: 1, Explanation: "Lügen, die so aussehen sollen wie echte Nachrichten, um Leute zu täuschen. Das ist gefährlich."},
			},
			Cases: []CaseCard{
				{ID: "c1", Title: "Das Bild", Scenario: "Mia hat ein Bild gemalt. Leo findet es hässlich. Er sagt: \"Das ist das hässlichste Gekritzel der Welt, du kannst gar nix!\"", Question: "Ist das eine Meinung?", Options: []string{"Ja, er ist ehrlich.", "Nein, das ist beleidigend."}, CorrectIndex: 1, Explanation: "Er hätte sagen können: 'Mir gefällt es nicht so gut.' Das wäre eine Meinung. 'Du kannst gar nix' ist verletzend."},
				{ID: "c2", Title: "Die Lüge", Scenario: "Jemand erzählt in der Pause: \"Die neue Lehrerin isst Regenwürmer!\" Alle lachen.", Question: "Ist das Meinungsfreiheit?", Options: []string{"Nein, das ist eine Lüge.", "Ja, kann man doch sagen."}, CorrectIndex: 0, Explanation: "Lügen verbreiten (Fake News), um jemanden schlecht zu machen, ist nicht von der Meinungsfreiheit geschützt."},
				{ID: "c3", Title: "Die Demo", Scenario: "Schüler malen Plakate: \"Wir wollen besseres Essen in der Mensa!\" und stellen sich auf den Schulhof.", Question: "Dürfen die das?", Options: []string{"Nein, Kinder müssen still sein.", "Ja, das ist eine Demonstration."}, CorrectIndex: 1, Explanation: "Seine Meinung gemeinsam zu zeigen (versammeln) ist ein Grundrecht. Kritik bringt oft Verbesserungen."},
				{ID: "c4", Title: "Das T-Shirt", Scenario: "Max trägt ein T-Shirt mit dem Spruch: \"Hausaufgaben sind doof\". Der Lehrer will, dass er es auszieht.", Question: "Darf Max es tragen?", Options: []string{"Ja, das ist seine Meinung.", "Nein, der Lehrer ist Chef."}, CorrectIndex: 0, Explanation: "Solange der Spruch niemanden beleidigt, darf er seine Meinung auch auf dem T-Shirt zeigen."},
				{ID: "c5", Title: "Der Gruppenchat", Scenario: "In der WhatsApp-Gruppe schreiben alle: \"Lara ist doof.\" Du findest Lara eigentlich nett.", Question: "Was tust du?", Options: []string{"Ich schreibe nichts.", "Ich schreibe meine Meinung: 'Ich finde Lara okay'."}, CorrectIndex: 1, Explanation: "Es ist mutig, seine Meinung zu sagen, auch wenn alle anderen etwas anderes sagen."},
			},
			Checks: []CheckCard{
				{ID: "ch1", Statement: "Darf ich sagen, dass ich Mathe hasse?", Answer: CheckYes, Explanation: "Das ist deine persönliche Meinung und dein Gefühl. Niemand kann dir das verbieten."},
				{ID: "ch2", Statement: "Darf ich zum Lehrer 'Dummkopf' sagen?", Answer: CheckNo, Explanation: "Das ist eine Beleidigung und respektlos. Meinung geht auch höflich."},
				{ID: "ch3", Statement: "Darf ich sagen: 'Ich finde deine Schuhe nicht schön'?", Answer: CheckYes, Explanation: "Das ist eine Meinung. Aber überleg dir, ob du den anderen damit traurig machst."},
				{ID: "ch4", Statement: "Darf ich Lügen über andere erzählen?", Answer: CheckNo, Explanation: "Lügen verletzen oft andere und sind keine Meinung."},
			},
		},
		MiniExplain:      []string{"Jeder darf sagen, was er denkt.", "Sich informieren ist erlaubt.", "Beleidigungen sind verboten."},
		KeySentence:      "Meinung ja – Beleidigung nein.",
		ExampleIdeas:     []string{"Kritik äußern.", "Beleidigung vs Meinung.", "Sich nicht trauen was zu sagen."},
		BoundaryIdeas:    []string{"Lügen sind verboten.", "Beleidigung verletzt die Ehre.", "Hass ist keine Meinung."},
		SchoolTips:       []string{"Wir sagen 'Ich finde...' statt 'Du bist...'", "Wir lassen ausreden.", "Wir prüfen Wahrheiten."},
		SentenceStarters: commonStarters(),
		WordBank: []models.WordDef{
			{Word: "Meinung", Definition: "Das, was du denkst."},
			{Word: "Kritik", Definition: "Sagen, was man nicht gut findet (ohne gemein zu sein)."},
			{Word: "sachlich", Definition: "Ruhig bleiben und beim Thema bleiben."},
			{Word: "Beleidigung", Definition: "Schimpfwörter, die anderen wehtun."},
			{Word: "Wahrheit", Definition: "Das, was wirklich passiert ist."},
			{Word: "Fake News", Definition: "Lügen, die als Nachrichten verkleidet sind."},
			{Word: "Diskussion", Definition: "Friedlich streiten und Argumente austauschen."},
			{Word: "Zuhören", Definition: "Den anderen ausreden lassen, auch wenn man anders denkt."},
			{Word: "Information", Definition: "Wissen, das man sammelt (z.B. aus Büchern)."},
			{Word: "Presse", Definition: "Zeitungen und Nachrichten, die uns informieren."},
			{Word: "Mut", Definition: "Sich trauen, seine Meinung laut zu sagen."},
			{Word: "Leserbrief", Definition: "Seine Meinung an eine Zeitung schreiben."},
			{Word: "Zensur", Definition: "Wenn der Staat verbietet, bestimmte Dinge zu sagen (bei uns verboten!)."},
			{Word: "Argument", Definition: "Ein guter Grund für deine Meinung."},
			{Word: "Widerspruch", Definition: "Sagen, dass man etwas anders sieht."},
			{Word: "Nachrichten", Definition: "Wissen, was in der Welt passiert."},
			{Word: "Interview", Definition: "Jemanden befragen, um Infos zu bekommen."},
			{Word: "Plakat", Definition: "Ein Schild mit deiner Meinung (z.B. auf einer Demo)."},
			{Word: "Kommentar", Definition: "Seine Meinung zu einem Thema aufschreiben oder sagen."},
			{Word: "Recherche", Definition: "Nachforschen, ob eine Information wirklich stimmt."},
			{Word: "Beweis", Definition: "Ein Beleg dafür, dass etwas wahr ist (z.B. ein Foto)."},
			{Word: "Netiquette", Definition: "Regeln für höfliches Benehmen im Internet."},
			{Word: "Standpunkt", Definition: "Deine persönliche Sicht auf ein Thema."},
			{Word: "Austausch", Definition: "Miteinander reden und Meinungen teilen."},
		},
	})
}
