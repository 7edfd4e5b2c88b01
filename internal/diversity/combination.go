package diversity

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Combination is one chosen context assignment for a scenario family,
// e.g. {location: "Bäckerei", character: "Bäcker"}.
type Combination struct {
	FamilyID   int
	FamilyName string

	// Values maps dimension name to the chosen variant value.
	Values map[string]string

	// Clusters maps dimension name to the chosen variant's semantic
	// cluster; dimensions without cluster data are absent.
	Clusters map[string]string

	// VariantIDs maps dimension name to the chosen variant's store ID,
	// used for usage-count increments.
	VariantIDs map[string]int
}

// Hash returns an order-independent fingerprint of the combination's
// values. Two combinations with the same dimension/value pairs hash
// identically regardless of map iteration order.
func (c Combination) Hash() string {
	return HashValues(c.Values)
}

// HashValues fingerprints a dimension->value mapping.
func HashValues(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(values[k])
		b.WriteByte('|')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:16])
}

// Fill renders the family's base template by substituting {dimension}
// placeholders with the chosen values.
func (c Combination) Fill(baseTemplate string) string {
	out := baseTemplate
	for dim, val := range c.Values {
		out = strings.ReplaceAll(out, "{"+dim+"}", val)
	}
	return out
}
