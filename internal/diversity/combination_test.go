package diversity

import "testing"

func TestHashIsOrderIndependent(t *testing.T) {
	a := HashValues(map[string]string{"location": "Bäckerei", "character": "Bäcker"})
	b := HashValues(map[string]string{"character": "Bäcker", "location": "Bäckerei"})
	if a != b {
		t.Errorf("hashes differ for identical combinations: %s vs %s", a, b)
	}
}

func TestHashDiffersForDifferentValues(t *testing.T) {
	a := HashValues(map[string]string{"location": "Bäckerei"})
	b := HashValues(map[string]string{"location": "Markt"})
	if a == b {
		t.Error("different combinations must not collide")
	}

	c := HashValues(map[string]string{"location": "Bäckerei", "character": "Bäcker"})
	if a == c {
		t.Error("subset combination must not collide with superset")
	}
}

func TestFillSubstitutesPlaceholders(t *testing.T) {
	combo := Combination{
		Values: map[string]string{"location": "Bäckerei", "character": "Bäcker"},
	}
	got := combo.Fill("Der {character} in der {location} verkauft {count} Brötchen.")
	want := "Der Bäcker in der Bäckerei verkauft {count} Brötchen."
	if got != want {
		t.Errorf("Fill = %q, want %q", got, want)
	}
}
