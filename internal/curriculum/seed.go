package curriculum

func init() {
	items := seedItems()
	if err := validate(items); err != nil {
		panic("curriculum: invalid seed: " + err.Error())
	}
	t = buildTable(items)
}

// seedItems returns the static curriculum table. Subcategories follow the
// German Bildungsstandards naming for the primary and lower secondary level.
func seedItems() []Item {
	var items []Item
	add := func(grade int, q Quarter, d Domain, sub, skill string, tags ...string) {
		items = append(items, Item{Grade: grade, Quarter: q, Domain: d, Subcategory: sub, Skill: skill, Tags: tags})
	}

	// Klasse 1
	add(1, Q1, DomainZahlen, "Zahlen bis 10", "Zahlen bis 10 lesen, schreiben und ordnen", "zahlenraum-10")
	add(1, Q1, DomainZahlen, "Mengen erfassen", "Mengen bis 10 simultan und strukturiert erfassen")
	add(1, Q1, DomainRaumForm, "Formen erkennen", "Kreis, Dreieck, Viereck in der Umwelt erkennen")
	add(1, Q2, DomainZahlen, "Plus und Minus bis 10", "Addition und Subtraktion im Zahlenraum bis 10")
	add(1, Q2, DomainGroessen, "Geld kennenlernen", "Münzen bis 10 Euro unterscheiden und zählen", "geld")
	add(1, Q3, DomainZahlen, "Zahlen bis 20", "Zahlenraum bis 20 mit Zehnerübergang", "zehneruebergang")
	add(1, Q3, DomainGroessen, "Längen vergleichen", "Längen direkt vergleichen und mit Einheiten messen")
	add(1, Q4, DomainZahlen, "Rechnen bis 20", "Addition und Subtraktion bis 20 sicher beherrschen")
	add(1, Q4, DomainDaten, "Daten sammeln", "Einfache Strichlisten und Bilddiagramme erstellen")

	// Klasse 2
	add(2, Q1, DomainZahlen, "Zahlen bis 100", "Zahlenraum bis 100 strukturieren und ordnen")
	add(2, Q1, DomainGroessen, "Uhrzeiten", "Volle und halbe Stunden ablesen", "zeit")
	add(2, Q2, DomainZahlen, "Einmaleins Einstieg", "Kernaufgaben des kleinen Einmaleins", "einmaleins")
	add(2, Q2, DomainRaumForm, "Körper erkennen", "Würfel, Quader, Kugel benennen und unterscheiden")
	add(2, Q3, DomainZahlen, "Halbschriftlich rechnen", "Halbschriftliche Addition und Subtraktion bis 100")
	add(2, Q3, DomainGroessen, "Geld bis 100 Euro", "Mit Geldbeträgen rechnen und Rückgeld bestimmen", "geld")
	add(2, Q4, DomainZahlen, "Einmaleins festigen", "Alle Einmaleinsreihen automatisieren", "einmaleins")
	add(2, Q4, DomainDaten, "Diagramme lesen", "Säulendiagramme lesen und auswerten")

	// Klasse 3
	add(3, Q1, DomainZahlen, "Zahlen bis 1000", "Zahlenraum bis 1000, Stellenwerte verstehen", "stellenwert")
	add(3, Q1, DomainGroessen, "Längen umrechnen", "mm, cm, m, km umrechnen und schätzen")
	add(3, Q2, DomainZahlen, "Schriftliche Addition", "Schriftliche Addition und Subtraktion bis 1000")
	add(3, Q2, DomainRaumForm, "Symmetrie", "Achsensymmetrische Figuren erkennen und zeichnen")
	add(3, Q3, DomainZahlen, "Multiplizieren und Dividieren", "Multiplikation und Division mit Zehnerzahlen")
	add(3, Q3, DomainGroessen, "Gewichte", "g und kg umrechnen, mit Gewichten rechnen")
	add(3, Q4, DomainZahlen, "Sachaufgaben", "Mehrschrittige Sachaufgaben im Zahlenraum 1000")
	add(3, Q4, DomainDaten, "Zufallsversuche", "Einfache Zufallsversuche als sicher/möglich/unmöglich einordnen")

	// Klasse 4
	add(4, Q1, DomainZahlen, "Zahlen bis 1 Million", "Große Zahlen lesen, schreiben und runden", "stellenwert")
	add(4, Q1, DomainGroessen, "Zeitspannen", "Zeitspannen berechnen, Fahrpläne lesen", "zeit")
	add(4, Q2, DomainZahlen, "Schriftliche Multiplikation", "Schriftliche Multiplikation mit mehrstelligen Faktoren")
	add(4, Q2, DomainRaumForm, "Flächeninhalt", "Flächeninhalt und Umfang von Rechtecken bestimmen")
	add(4, Q3, DomainZahlen, "Schriftliche Division", "Schriftliche Division mit Rest")
	add(4, Q3, DomainGroessen, "Volumen", "Liter und Milliliter, einfache Volumenvergleiche")
	add(4, Q4, DomainZahlen, "Brüche Einstieg", "Einfache Bruchteile von Größen bestimmen", "brueche")
	add(4, Q4, DomainDaten, "Kombinatorik", "Einfache kombinatorische Aufgaben systematisch lösen")

	// Klasse 5
	add(5, Q1, DomainZahlen, "Natürliche Zahlen", "Große Zahlen, Zahlenstrahl, Runden und Überschlagen")
	add(5, Q1, DomainRaumForm, "Geometrische Grundbegriffe", "Punkt, Gerade, Strecke, parallel und senkrecht")
	add(5, Q2, DomainZahlen, "Grundrechenarten", "Rechengesetze und Rechenvorteile nutzen")
	add(5, Q2, DomainGroessen, "Einheiten", "Längen, Massen und Zeiten sicher umrechnen")
	add(5, Q3, DomainZahlen, "Teilbarkeit", "Teiler, Vielfache und Teilbarkeitsregeln")
	add(5, Q3, DomainRaumForm, "Winkel", "Winkel schätzen, messen und klassifizieren")
	add(5, Q4, DomainZahlen, "Brüche verstehen", "Brüche erweitern, kürzen und vergleichen", "brueche")
	add(5, Q4, DomainDaten, "Häufigkeiten", "Absolute und relative Häufigkeiten bestimmen")

	// Klasse 6
	add(6, Q1, DomainZahlen, "Bruchrechnung", "Addition und Subtraktion von Brüchen", "brueche")
	add(6, Q1, DomainGroessen, "Maßstab", "Maßstäbe lesen und Strecken umrechnen")
	add(6, Q2, DomainZahlen, "Dezimalzahlen", "Dezimalzahlen ordnen, runden und rechnen")
	add(6, Q2, DomainRaumForm, "Kreis und Kreisfiguren", "Kreise beschreiben, Radius und Durchmesser")
	add(6, Q3, DomainZahlen, "Bruch mal Bruch", "Multiplikation und Division von Brüchen", "brueche")
	add(6, Q3, DomainDaten, "Diagramme erstellen", "Daten in Säulen- und Kreisdiagrammen darstellen")
	add(6, Q4, DomainZahlen, "Ganze Zahlen", "Negative Zahlen ordnen und addieren")
	add(6, Q4, DomainGroessen, "Flächen und Volumen", "Flächen- und Volumeneinheiten umrechnen")

	// Klasse 7
	add(7, Q1, DomainZahlen, "Rationale Zahlen", "Alle vier Grundrechenarten mit rationalen Zahlen")
	add(7, Q1, DomainGleichungen, "Terme", "Terme aufstellen, umformen und zusammenfassen", "terme")
	add(7, Q2, DomainGleichungen, "Lineare Gleichungen", "Lineare Gleichungen durch Äquivalenzumformung lösen")
	add(7, Q2, DomainDaten, "Prozentrechnung", "Prozentwert, Prozentsatz und Grundwert berechnen", "prozent")
	add(7, Q3, DomainRaumForm, "Dreieckskonstruktionen", "Dreiecke aus gegebenen Stücken konstruieren")
	add(7, Q3, DomainGleichungen, "Proportionalität", "Proportionale und antiproportionale Zuordnungen", "dreisatz")
	add(7, Q4, DomainDaten, "Wahrscheinlichkeit", "Laplace-Wahrscheinlichkeiten bestimmen")
	add(7, Q4, DomainGroessen, "Zinsrechnung", "Zinsen und Zinseszinsen berechnen", "prozent")

	// Klasse 8
	add(8, Q1, DomainGleichungen, "Binomische Formeln", "Binomische Formeln anwenden und faktorisieren", "terme")
	add(8, Q1, DomainRaumForm, "Prismen", "Oberfläche und Volumen von Prismen berechnen")
	add(8, Q2, DomainGleichungen, "Lineare Funktionen", "Lineare Funktionen zeichnen und interpretieren", "funktionen")
	add(8, Q2, DomainDaten, "Statistische Kennwerte", "Mittelwert, Median und Spannweite bestimmen")
	add(8, Q3, DomainGleichungen, "Gleichungssysteme", "Lineare Gleichungssysteme mit zwei Variablen lösen")
	add(8, Q3, DomainRaumForm, "Kreisberechnung", "Umfang und Flächeninhalt des Kreises berechnen")
	add(8, Q4, DomainGleichungen, "Wurzeln", "Quadratwurzeln und reelle Zahlen")
	add(8, Q4, DomainDaten, "Mehrstufige Zufallsversuche", "Baumdiagramme und Pfadregeln anwenden")

	// Klasse 9
	add(9, Q1, DomainGleichungen, "Quadratische Funktionen", "Parabeln zeichnen, Scheitelpunktform nutzen", "funktionen")
	add(9, Q1, DomainRaumForm, "Satz des Pythagoras", "Seitenlängen in rechtwinkligen Dreiecken berechnen")
	add(9, Q2, DomainGleichungen, "Quadratische Gleichungen", "Quadratische Gleichungen mit pq-Formel lösen")
	add(9, Q2, DomainRaumForm, "Strahlensätze", "Strahlensätze in Anwendungsaufgaben nutzen")
	add(9, Q3, DomainRaumForm, "Körperberechnung", "Zylinder, Pyramide und Kegel berechnen")
	add(9, Q3, DomainDaten, "Bedingte Häufigkeiten", "Vierfeldertafeln aufstellen und auswerten")
	add(9, Q4, DomainGleichungen, "Potenzen", "Potenzgesetze und wissenschaftliche Notation")
	add(9, Q4, DomainGroessen, "Zusammengesetzte Größen", "Geschwindigkeit und Dichte berechnen")

	// Klasse 10
	add(10, Q1, DomainGleichungen, "Exponentialfunktionen", "Wachstums- und Zerfallsprozesse modellieren", "funktionen")
	add(10, Q1, DomainRaumForm, "Trigonometrie", "Sinus, Kosinus und Tangens im rechtwinkligen Dreieck")
	add(10, Q2, DomainGleichungen, "Funktionsuntersuchung", "Funktionsgraphen beschreiben und transformieren", "funktionen")
	add(10, Q2, DomainRaumForm, "Kugel", "Oberfläche und Volumen der Kugel berechnen")
	add(10, Q3, DomainDaten, "Stochastische Simulation", "Zufallsexperimente simulieren und bewerten")
	add(10, Q3, DomainGleichungen, "Trigonometrische Funktionen", "Sinusfunktion und periodische Vorgänge", "funktionen")
	add(10, Q4, DomainDaten, "Beurteilende Statistik", "Stichproben interpretieren, Manipulation erkennen")
	add(10, Q4, DomainGleichungen, "Vermischte Übungen", "Prüfungsvorbereitung über alle Leitideen")

	return items
}
