package rotation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lernzeit/lernzeit/internal/diversity"
)

// PromptInstructions renders the selected context combinations as
// instructions for the template-generation prompt. One numbered block per
// question, each naming the scenario and its dimension values, followed by
// the variation rules the model must follow.
func PromptInstructions(combos []diversity.Combination) string {
	if len(combos) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("KONTEXT-ROTATION:\n")
	b.WriteString("Verwende für jede Aufgabe genau das zugewiesene Szenario.\n\n")

	for i, combo := range combos {
		fmt.Fprintf(&b, "Aufgabe %d: Szenario \"%s\"\n", i+1, combo.FamilyName)
		for _, dim := range sortedKeys(combo.Values) {
			fmt.Fprintf(&b, "  - %s: %s\n", dim, combo.Values[dim])
		}
	}

	b.WriteString("\nRegeln:\n")
	b.WriteString("- Baue alle angegebenen Kontextwerte in den Aufgabentext ein.\n")
	b.WriteString("- Erfinde keine zusätzlichen Szenarien und tausche keine Werte.\n")
	b.WriteString("- Die Mathematik bleibt im Vordergrund, der Kontext dient der Einkleidung.\n")

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
