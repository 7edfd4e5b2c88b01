package content

import "strings"

// promptBlacklist lists phrase fragments that mark a prompt as unusable in
// the app: tasks that require drawing, cutting, or other physical
// manipulation, and circular-measurement tasks that need a compass or
// string. Matching is a case-insensitive substring check. The template
// selector enforces the same list at the query layer.
var promptBlacklist = []string{
	"zeichne",
	"zeichnung",
	"male ein",
	"malt ein",
	"bastel",
	"schneide",
	"ausschneiden",
	"ausgeschnitten",
	"klebe",
	"falte",
	"lege mit",
	"baue ein modell",
	"mit der schere",
	"mit dem zirkel",
	"zirkel",
	"miss den umfang",
	"messt den umfang",
	"umfang mit einem faden",
	"mit dem lineal nach",
}

// Blacklist returns the prompt keyword blacklist. The caller may not
// modify the returned slice.
func Blacklist() []string {
	out := make([]string, len(promptBlacklist))
	copy(out, promptBlacklist)
	return out
}

// MatchBlacklist reports the first blacklisted phrase contained in the
// prompt, if any.
func MatchBlacklist(prompt string) (string, bool) {
	lower := strings.ToLower(prompt)
	for _, phrase := range promptBlacklist {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	return "", false
}
