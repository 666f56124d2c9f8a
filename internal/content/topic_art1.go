package content

import "podcastwerkstatt/internal/models"

func init() {
	register(&Topic{
		ID:          models.TopicArt1,
		Title:       "Art. 1 GG",
		SimpleTitle: "Menschenwürde",
		ArticleRef:  "Art. 1",
		Icon:        "👑",
		Description: "Jeder Mensch ist wertvoll.",
		Lesson: TopicLesson{
			IntroStory: "Stell dir vor, du bist auf dem Schulhof. Eine Gruppe älterer Schüler steht im Kreis um Tom. Tom ist in eine Pfütze gefallen und seine Hose ist nass. Anstatt ihm zu helfen, lachen die anderen, machen Fotos und rufen 'Pfützen-Tom'. Tom schämt sich furchtbar. Er fühlt sich ganz klein, fast wie ein Ding, nicht mehr wie ein Mensch. Hier sagt das Grundgesetz ganz laut: STOPP! Das verletzt Toms Würde. Würde heißt: Jeder Mensch ist wertvoll, nur weil er ein Mensch ist. Niemand darf wie Müll behandelt, gedemütigt oder bloßgestellt werden. Das gilt für den Bundeskanzler genauso wie für Tom.",
			Quizzes: []QuizQuestion{
				{ID: "q1", Question: "Was bedeutet 'Menschenwürde'?", Options: []string{"Dass nur Reiche wichtig sind", "Dass jeder Mensch wertvoll ist", "Dass der Stärkste bestimmt"}, CorrectIndex: 1, Explanation: "Genau! Egal ob arm, reich, groß oder klein – jeder Mensch ist wertvoll."},
				{ID: "q2", Question: "Was darf man NIEMALS tun?", Options: []string{"Jemanden auslachen und bloßstellen", "Jemanden kritisieren", "Beim Spielen gewinnen"}, CorrectIndex: 0, Explanation: "Richtig. Jemanden fertig zu machen oder zu erniedrigen verletzt seine Würde."},
				{ID: "q3", Question: "Gilt die Menschenwürde auch für Verbrecher?", Options: []string{"Nein, die sind böse", "Ja, für jeden Menschen", "Nur wenn sie nett sind"}, CorrectIndex: 1, Explanation: "Das ist schwer, aber ja: Auch wer etwas Schlimmes getan hat, bleibt ein Mensch und darf z.B. nicht gefoltert werden."},
				{ID: "q4", Question: "Wer muss die Würde schützen?", Options: []string{"Nur die Polizei", "Der Staat und wir alle", "Niemand"}, CorrectIndex: 1, Explanation: "Das Grundgesetz sagt: Alle staatliche Gewalt muss die Würde achten und schützen."},
				{ID: "q5", Question: "Darf ich ein peinliches Foto posten?", Options: []string{"Ja, wenn es viele Likes kriegt", "Nein, das verletzt die Würde", "Nur am Wochenende"}, CorrectIndex: 1, Explanation: "Jemanden im Internet bloßzustellen ist genauso schlimm wie auf dem Schulhof. Es bleibt oft für immer."},
				{ID: "q6", Question: "Verliert man seine Würde, wenn man alt und krank ist?", Options: []string{"Ja, dann ist man schwach", "Nein, niemals", "Vielleicht"}, CorrectIndex: 1, Explanation: "Die Würde behält man sein ganzes Leben lang, bis zum Schluss. Auch alte Menschen müssen mit Respekt behandelt werden."},
			},
			Cases: []CaseCard{
				{ID: "c1", Title: "Der Spitzname", Scenario: "Jonas hat Segelohren. Max nennt ihn nur noch \"Dumbo\". Alle lachen, aber Jonas wird ganz still und guckt auf den Boden.", Question: "Ist das nur Spaß?", Options: []string{"Ja, Jonas soll sich nicht so anstellen.", "Nein, das ist beleidigend und verletzt die Würde."}, CorrectIndex: 1, Explanation: "Wenn einer leidet, ist es kein Spaß mehr. Jonas wird auf sein Aussehen reduziert."},
				{ID: "c2", Title: "Das Foto", Scenario: "Lisa hat beim Sport eine peinliche Pose gemacht. Mia hat ein Foto davon und will es in die Klassengruppe schicken.", Question: "Was soll Mia tun?", Options: []string{"Das Foto löschen.", "Es verschicken, ist doch lustig."}, CorrectIndex: 0, Explanation: "Das Foto könnte Lisa bloßstellen. Das verletzt ihre Würde und ihr Recht am eigenen Bild."},
				{ID: "c3", Title: "Die Mutprobe", Scenario: "Die coole Gang sagt zu Paul: \"Du darfst nur mitspielen, wenn du aus dem Mülleimer isst.\" Paul ekelt sich.", Question: "Ist das okay?", Options: []string{"Nein, das erniedrigt Paul.", "Klar, ist halt eine Mutprobe."}, CorrectIndex: 0, Explanation: "Niemand darf gezwungen werden, sich selbst zu erniedrigen (sich klein zu machen), um dazuzugehören."},
				{ID: "c4", Title: "Der Obdachlose", Scenario: "Auf dem Weg zur Schule sitzt ein Mann auf der Straße, der alt ist und schlecht riecht. Ein Kind spuckt vor ihm aus.", Question: "Was sagst du dazu?", Options: []string{"Egal, der merkt das nicht.", "Das geht gar nicht! Auch er hat Würde."}, CorrectIndex: 1, Explanation: "Jeder Mensch verdient Respekt, egal wie er lebt oder aussieht."},
				{ID: "c5", Title: "Das Pausenbrot", Scenario: "Svenja hat ein Brot dabei, das anders riecht als das der anderen. Kevin hält sich demonstrativ die Nase zu und ruft \"Pfui!\".", Question: "Ist das Würde-Verletzung?", Options: []string{"Ja, Svenja wird gedemütigt.", "Nein, es stinkt ja wirklich."}, CorrectIndex: 0, Explanation: "Es beschämt Svenja vor allen anderen. Man kann höflich weggehen, aber 'Pfui' rufen verletzt."},
			},
			Checks: []CheckCard{
				{ID: "ch1", Statement: "Darf ich lachen, wenn jemand hinfällt?", Answer: CheckDepends, Explanation: "Wenn dem Kind nichts passiert ist und es selbst lacht: Okay. Wenn es weint oder sich schämt: Nein!"},
				{ID: "ch2", Statement: "Darf ich jemanden 'Lauch' nennen?", Answer: CheckNo, Explanation: "Das ist eine Beleidigung und reduziert den anderen auf seinen Körper."},
				{ID: "ch3", Statement: "Darf ich bestimmen, wer neben mir sitzt?", Answer: CheckYes, Explanation: "Das ist deine Freiheit, solange du den anderen nicht beleidigst ('Du stinkst, geh weg')."},
				{ID: "ch4", Statement: "Darf ein Lehrer einen Schüler schlagen?", Answer: CheckNo, Explanation: "Niemals! Das ist verboten und verletzt die Würde und den Körper."},
			},
		},
		MiniExplain:      []string{"Würde bedeutet: Jeder Mensch ist wertvoll.", "Niemand darf wie ein Gegenstand behandelt werden.", "Keiner darf gedemütigt oder bloßgestellt werden."},
		KeySentence:      "Würde heißt: Jeder Mensch ist wertvoll.",
		ExampleIdeas:     []string{"Jemand wird ausgelacht wegen Kleidung.", "Jemand wird ausgeschlossen.", "Ein peinliches Foto wird herumgezeigt."},
		BoundaryIdeas:    []string{"‘Nur Spaß’ gilt nicht, wenn jemand verletzt ist.", "Bloßstellen ist verboten.", "Jemanden 'Opfer' nennen verletzt die Würde."},
		SchoolTips:       []string{"Wir sagen laut Stopp!", "Wir lachen niemanden aus.", "Wir holen Hilfe."},
		SentenceStarters: commonStarters(),
		WordBank: []models.WordDef{
			{Word: "Respekt", Definition: "Andere freundlich und höflich behandeln."},
			{Word: "wertvoll", Definition: "Jeder Mensch ist wie ein Schatz, der geschützt werden muss."},
			{Word: "Stopp", Definition: "Das Signal, dass eine Grenze erreicht ist."},
			{Word: "bloßstellen", Definition: "Jemanden vor anderen lächerlich machen."},
			{Word: "auslachen", Definition: "Über jemanden lachen, um ihm weh zu tun."},
			{Word: "fair", Definition: "Gerecht spielen und niemanden benachteiligen."},
			{Word: "einzigartig", Definition: "Jeder Mensch ist besonders und gibt es nur einmal."},
			{Word: "Mensch", Definition: "Egal ob Kind oder Erwachsener, alle haben Rechte."},
			{Word: "Zivilcourage", Definition: "Mutig sein und helfen, wenn andere ungerecht behandelt werden."},
			{Word: "Privatsphäre", Definition: "Dein persönlicher Bereich, den niemand stören darf (z.B. dein Tagebuch)."},
			{Word: "Achtung", Definition: "Aufpassen, dass es dem anderen gut geht."},
			{Word: "Gefühle", Definition: "Ob jemand traurig, froh oder wütend ist - das ist wichtig."},
			{Word: "Ehre", Definition: "Dein guter Ruf. Niemand darf Lügen über dich erzählen."},
			{Word: "Gemeinschaft", Definition: "Wir halten zusammen und lassen niemanden allein."},
			{Word: "Toleranz", Definition: "Andere so akzeptieren, wie sie sind."},
			{Word: "Mitgefühl", Definition: "Merken, wenn jemand traurig ist."},
			{Word: "Geheimnis", Definition: "Etwas, das dir gehört und niemand wissen muss."},
			{Word: "Gewaltlos", Definition: "Streit ohne Schlagen lösen."},
			{Word: "Gerechtigkeit", Definition: "Wenn alle fair behandelt werden."},
			{Word: "Vorurteil", Definition: "Schlecht über jemanden denken, ohne ihn zu kennen."},
			{Word: "Mobbing", Definition: "Jemanden immer wieder gemein behandeln oder ausschließen."},
			{Word: "Identität", Definition: "Das, was dich besonders macht (wer du bist)."},
			{Word: "Vertrauen", Definition: "Sich auf jemanden verlassen können."},
			{Word: "Scham", Definition: "Das unangenehme Gefühl, wenn man ausgelacht wird."},
			{Word: "Hilfsbereitschaft", Definition: "Bereit sein, anderen zu helfen."},
		},
	})
}
