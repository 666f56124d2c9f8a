package content

// generalIntroLesson is the fixed "Was ist das Grundgesetz?" lesson used by
// the start mission, independent of the selected topic.
var generalIntroLesson = TopicLesson{
	IntroStory: "Stell dir vor, ihr spielt Fußball, aber es gibt keine Regeln. Einer nimmt den Ball in die Hand, ein anderer stellt ein drittes Tor auf, und der Schiedsrichter pfeift nie. Chaos, oder? Genau deshalb braucht ein Land Regeln. In Deutschland heißt das wichtigste Regelbuch 'Grundgesetz'. Es ist der 'Chef' von allen Gesetzen. Es wurde nach einem schlimmen Krieg geschrieben, damit nie wieder ein Staat seine Bürger schlecht behandelt. Das Grundgesetz ist wie ein unsichtbares Schutzschild für jeden von uns - egal ob Kind oder Erwachsener.",
	Quizzes: []QuizQuestion{
		{ID: "g1", Question: "Was ist das Grundgesetz?", Options: []string{"Ein Kochbuch", "Die Spielregeln für Deutschland", "Ein Comic"}, CorrectIndex: 1, Explanation: "Es ist das wichtigste Gesetzbuch. Alle müssen sich daran halten, auch die Politiker."},
		{ID: "g2", Question: "Wer ist der 'Chef'?", Options: []string{"Das Grundgesetz steht über allem", "Der Hausmeister", "Die Polizei kann machen was sie will"}, CorrectIndex: 0, Explanation: "Niemand steht über dem Grundgesetz. Kein Gesetz darf dem Grundgesetz widersprechen."},
		{ID: "g3", Question: "Wen schützt das Grundgesetz?", Options: []string{"Nur Erwachsene", "Nur reiche Leute", "Alle Menschen in Deutschland"}, CorrectIndex: 2, Explanation: "Es gilt für alle Menschen, die hier sind. Egal ob Groß, Klein, Alt oder Jung."},
		{ID: "g4", Question: "Wann wurde es geschrieben?", Options: []string{"Letzte Woche", "Nach dem zweiten Weltkrieg (1949)", "Vor 1000 Jahren"}, CorrectIndex: 1, Explanation: "Die Menschen wollten sicherstellen, dass nie wieder so schreckliche Dinge passieren wie im Krieg."},
		{ID: "g5", Question: "Können wir das Grundgesetz sehen?", Options: []string{"Nein, es ist unsichtbar", "Ja, es steht in einem Buch", "Nur im Fernsehen"}, CorrectIndex: 1, Explanation: "Es ist ein Text, der in einem Buch steht. Aber die Rechte sind wie ein unsichtbarer Schutz um dich herum."},
	},
	Cases: []CaseCard{
		{ID: "gc1", Title: "Das neue Gesetz", Scenario: "Ein Politiker sagt: \"Ab heute müssen alle Menschen blaue Hüte tragen, sonst kommen sie ins Gefängnis!\"", Question: "Geht das?", Options: []string{"Klar, er ist Politiker.", "Nein, das verstößt gegen die Freiheit im Grundgesetz."}, CorrectIndex: 1, Explanation: "Politiker dürfen keine Quatsch-Gesetze machen, die unsere Freiheit grundlos einschränken."},
		{ID: "gc2", Title: "Der Brief", Scenario: "Die Polizei will einfach so deine Post öffnen und lesen, weil sie neugierig sind.", Question: "Dürfen die das?", Options: []string{"Nein, das Postgeheimnis steht im Grundgesetz.", "Ja, die dürfen alles."}, CorrectIndex: 0, Explanation: "Das Grundgesetz schützt deine Privatsphäre (Briefgeheimnis). Nur mit richterlichem Beschluss darf man das."},
		{ID: "gc3", Title: "Die Strafe", Scenario: "Ein Lehrer möchte einführen, dass Schüler, die zu spät kommen, den ganzen Tag in der Ecke stehen müssen ohne Pause.", Question: "Ist das erlaubt?", Options: []string{"Ja, Strafe muss sein.", "Nein, das verletzt die Würde des Kindes."}, CorrectIndex: 1, Explanation: "Grausame oder erniedrigende Strafen sind durch das Grundgesetz verboten."},
	},
	Checks: []CheckCard{
		{ID: "gch1", Statement: "Darf man das Grundgesetz ändern?", Answer: CheckDepends, Explanation: "Manches ja, aber die wichtigsten Regeln (wie Art. 1, die Menschenwürde) dürfen NIEMALS abgeschafft werden."},
		{ID: "gch2", Statement: "Gilt das Grundgesetz auch für Kinder?", Answer: CheckYes, Explanation: "Ja! Kinder haben genau die gleichen Grundrechte wie Erwachsene, und sogar noch besondere Kinderrechte dazu."},
	},
}
