package templategen

import (
	"fmt"
	"strings"
)

const systemPrompt = `Du bist ein Mathematiklehrer und erstellst Übungsaufgaben für Schülerinnen und Schüler der Klassen 1 bis 10 nach dem deutschen Lehrplan.

Regeln:
- Erstelle genau eine Aufgabe für die angegebene Kompetenz, Klassenstufe und Schwierigkeit.
- Die Aufgabe muss vollständig am Bildschirm lösbar sein: keine Zeichen-, Bastel-, Schneide- oder Messaufgaben, kein Zirkel, kein Lineal.
- Der Aufgabentext ist auf Deutsch, altersgerecht und in sich geschlossen.
- Die Lösung muss korrekt und in einfachster Form angegeben sein.
- Bei Klassenstufe 1 bleiben alle Zahlen im Zahlenraum bis 20, ohne Multiplikation oder Division.
- Bei multiple-choice gibt es genau 3 Distraktoren, die typische Fehler widerspiegeln, keine Zufallswerte.
- Bei allen anderen Aufgabentypen bleibt die Distraktor-Liste leer.
- AFB I verlangt Reproduktion, AFB II Zusammenhänge herstellen, AFB III Verallgemeinern und Reflektieren.`

// buildUserMessage constructs the user message from the gap and any
// context-rotation instructions.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Klassenstufe: %d\n", input.Gap.Grade)
	fmt.Fprintf(&b, "Quartal: %s\n", input.Gap.Quarter)
	fmt.Fprintf(&b, "Bereich: %s\n", input.Gap.Domain)
	if input.Gap.Subcategory != "" {
		fmt.Fprintf(&b, "Unterkategorie: %s\n", input.Gap.Subcategory)
	}
	fmt.Fprintf(&b, "Anforderungsbereich: %s\n", input.Gap.Difficulty)
	fmt.Fprintf(&b, "Aufgabentyp: %s\n", input.Gap.QuestionType)

	if input.ContextInstructions != "" {
		b.WriteString("\n")
		b.WriteString(input.ContextInstructions)
	}

	return b.String()
}
