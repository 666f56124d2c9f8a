package content

import "podcastwerkstatt/internal/models"

func init() {
	register(&Topic{
		ID:          models.TopicArt3,
		Title:       "Art. 3 GG",
		SimpleTitle: "Gleichheit",
		ArticleRef:  "Art. 3",
		Icon:        "⚖️",
		Description: "Alle gehören dazu.",
		Lesson: TopicLesson{
			IntroStory: "Beim Fußball wählen die Kapitäne Teams. 'Mädchen können kein Fußball', sagt einer und lässt Lena stehen, obwohl sie im Verein spielt. Ein anderer Junge wird nicht gewählt, weil er eine Brille trägt. Ein dritter, weil er nicht so gut Deutsch spricht. Das ist ungerecht! Art. 3 sagt: Alle Menschen sind vor dem Gesetz gleich. Niemand darf benachteiligt werden, nur weil er ein Junge oder Mädchen ist, woanders herkommt, anders aussieht oder an einen anderen Gott glaubt.",
			Quizzes: []QuizQuestion{
				{ID: "q1", Question: "Was bedeutet Gleichberechtigung?", Options: []string{"Alle sehen gleich aus", "Alle haben die gleichen Rechte", "Alle essen das Gleiche"}, CorrectIndex: 1, Explanation: "Egal ob Junge oder Mädchen, jeder hat die gleichen Rechte."},
				{ID: "q2", Question: "Was ist Diskriminierung?", Options: []string{"Jemanden einladen", "Jemanden wegen seines Aussehens ausschließen", "Jemanden grüßen"}, CorrectIndex: 1, Explanation: "Jemanden unfair zu behandeln, weil er 'anders' ist, ist verboten."},
				{ID: "q3", Question: "Dürfen Jungs weinen?", Options: []string{"Nein, Indianer weinen nicht", "Klar, Gefühle sind für alle da", "Nur wenn niemand guckt"}, CorrectIndex: 1, Explanation: "Vorurteile wie 'Jungs weinen nicht' sind Quatsch. Alle Menschen haben Gefühle."},
				{ID: "q4", Question: "Müssen alle genau das Gleiche bekommen?", Options: []string{"Ja, immer", "Nein, gerecht heißt: Jeder kriegt was er braucht", "Nur die Schnellen"}, CorrectIndex: 1, Explanation: "Beispiel: Ein Kind im Rollstuhl braucht eine Rampe, ein Läufer nicht. Gerechtigkeit heißt, Nachteile auszugleichen."},
				{ID: "q5", Question: "Sind reiche Menschen wichtiger?", Options: []string{"Ja, sie haben mehr Geld", "Nein, vor dem Gesetz sind alle gleich", "Vielleicht"}, CorrectIndex: 1, Explanation: "Geld darf keinen Unterschied bei den Rechten machen."},
				{ID: "q6", Question: "Ist es okay, jemanden wegen seiner Sprache auszulachen?", Options: []string{"Nein, niemals", "Ja, wenn es lustig klingt", "Nur im Urlaub"}, CorrectIndex: 0, Explanation: "Sprache oder Herkunft dürfen kein Grund für Ausgrenzung sein."},
			},
			Cases: []CaseCard{
				{ID: "c1", Title: "Die Einladung", Scenario: "Tim feiert Geburtstag. Er lädt alle Jungs ein, aber Kevin nicht, weil Kevins Eltern wenig Geld haben und Kevin keine coolen Marken-Klamotten trägt.", Question: "Ist das fair?", Options: []string{"Ja, ist Tims Party.", "Nein, das ist Ausgrenzung."}, CorrectIndex: 1, Explanation: "Kevin wird wegen 'Armut' benachteiligt. Das verletzt den Gedanken von Art. 3."},
				{ID: "c2", Title: "Der Ausflug", Scenario: "Die Klasse plant einen Wandertag. Es gibt einen steilen Weg. Ein Kind im Rollstuhl kann da nicht mit.", Question: "Was tun?", Options: []string{"Das Kind bleibt daheim.", "Wir suchen einen Weg für alle."}, CorrectIndex: 1, Explanation: "Gleichberechtigung heißt: Wir lassen niemanden zurück. Wir müssen eine Lösung für alle finden."},
				{ID: "c3", Title: "Die Mathe-AG", Scenario: "Der Lehrer sagt: \"In die Mathe-AG dürfen nur Jungs, Mädchen können eh nicht rechnen.\"", Question: "Stimmt das?", Options: []string{"Das ist ein verbotenes Vorurteil.", "Ja, Jungs sind schlauer."}, CorrectIndex: 0, Explanation: "Das ist Diskriminierung wegen dem Geschlecht. Mädchen können genauso gut Mathe."},
				{ID: "c4", Title: "Das Casting", Scenario: "Für das Theaterstück werden Feen gesucht. Die Lehrerin sagt: \"Nur Kinder mit blonden Haaren dürfen Feen sein.\"", Question: "Ist das okay?", Options: []string{"Ja, Feen sind immer blond.", "Nein, Haarfarbe ist egal."}, CorrectIndex: 1, Explanation: "Jeder sollte die Chance haben, die Rolle zu spielen, egal wie er aussieht."},
				{ID: "c5", Title: "Das Tanzen", Scenario: "Mehmet möchte in die Tanz-AG. Die anderen Jungs lachen: \"Tanzen ist doch nur für Mädchen!\"", Question: "Haben sie Recht?", Options: []string{"Nein, Hobbys sind für alle da.", "Ja, Jungs spielen Fußball."}, CorrectIndex: 0, Explanation: "Das ist ein Klischee (Vorurteil). Jungs dürfen tanzen, Mädchen dürfen Fußball spielen."},
			},
			Checks: []CheckCard{
				{ID: "ch1", Statement: "Darf ich sagen: Jungs sind stärker als Mädchen?", Answer: CheckNo, Explanation: "Das ist ein Vorurteil und stimmt so nicht pauschal. Es gibt sehr starke Mädchen!"},
				{ID: "ch2", Statement: "Darf ich nur Kinder mit teuren Schuhen einladen?", Answer: CheckNo, Explanation: "Das wäre unfair. Geld macht niemanden zu einem besseren Freund."},
				{ID: "ch3", Statement: "Darf ich mit jedem spielen, den ich mag?", Answer: CheckYes, Explanation: "Ja, aber du solltest niemanden gemein ausschließen."},
				{ID: "ch4", Statement: "Darf ein blinder Mensch Lehrer werden?", Answer: CheckYes, Explanation: "Na klar! Mit den richtigen Hilfsmitteln geht das."},
			},
		},
		MiniExplain:      []string{"Alle sind vor dem Gesetz gleich.", "Niemand darf benachteiligt werden.", "Gleiche Chancen für alle."},
		KeySentence:      "Fair heißt: Alle gehören dazu.",
		ExampleIdeas:     []string{"Mädchen dürfen nicht mitspielen.", "Rollstuhlfahrer kommt nicht rein.", "Ausgrenzung wegen Sprache."},
		BoundaryIdeas:    []string{"Ausgrenzen ist nie okay.", "Gerecht heißt manchmal auch: helfen.", "Niemand ist 'besser'."},
		SchoolTips:       []string{"Wir lassen alle mitspielen.", "Wir wählen Teams fair.", "Wir helfen einander."},
		SentenceStarters: commonStarters(),
		WordBank: []models.WordDef{
			{Word: "fair", Definition: "Gerecht spielen."},
			{Word: "gleich", Definition: "Alle haben den gleichen Wert."},
			{Word: "gerecht", Definition: "Niemanden benachteiligen."},
			{Word: "Chance", Definition: "Jeder soll es versuchen dürfen."},
			{Word: "ausgrenzen", Definition: "Jemanden nicht mitspielen lassen."},
			{Word: "Respekt", Definition: "Nett und höflich zu anderen sein."},
			{Word: "Vielfalt", Definition: "Es ist toll, dass alle unterschiedlich sind."},
			{Word: "Diskriminierung", Definition: "Jemanden schlecht behandeln, weil er 'anders' ist."},
			{Word: "Behinderung", Definition: "Wenn jemand körperliche oder geistige Einschränkungen hat."},
			{Word: "Vorurteil", Definition: "Eine Meinung über jemanden haben, bevor man ihn kennt."},
			{Word: "Herkunft", Definition: "Woher jemand (oder seine Familie) kommt."},
			{Word: "Religion", Definition: "Woran jemand glaubt (z.B. Kirche, Moschee)."},
			{Word: "Armut", Definition: "Wenn man wenig Geld hat. Das darf kein Nachteil sein."},
			{Word: "Barrierefrei", Definition: "So gebaut, dass auch Rollstuhlfahrer überall hinkommen."},
		},
	})
}
