// Package normalize cleans up player and team names scraped from game pages.
// Pages mix accented and unaccented spellings of the same player, so names
// are folded to a restricted character set and then canonicalized through a
// configurable alias map.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips combining diacritical marks (NFD decompose, drop non-spacing
// marks, NFC recompose), collapses whitespace runs and trims. It never fails;
// input that cannot be transformed is returned with only whitespace cleanup.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(folded), " ")
}

// AliasMap groups raw observed spellings under one canonical name:
// canonical -> list of raw spellings.
type AliasMap map[string][]string

// Normalizer folds names and resolves them through an alias map. It is
// immutable after construction and safe for concurrent use.
type Normalizer struct {
	canonical map[string]string // folded raw spelling -> canonical name
}

// New builds a Normalizer from an alias map. Raw spellings are folded on the
// way in so lookups match regardless of the accents a page happened to use.
func New(aliases AliasMap) *Normalizer {
	canonical := make(map[string]string)
	for name, raws := range aliases {
		// The canonical name maps to itself, which keeps Normalize
		// idempotent even when the canonical spelling carries accents.
		canonical[Fold(name)] = name
		for _, raw := range raws {
			canonical[Fold(raw)] = name
		}
	}
	return &Normalizer{canonical: canonical}
}

// Normalize returns the canonical form of a raw name. The cleaned name is
// returned unchanged when no alias group claims it, so the result is always
// usable and the operation is idempotent.
func (n *Normalizer) Normalize(raw string) string {
	cleaned := Fold(raw)
	if name, ok := n.canonical[cleaned]; ok {
		return name
	}
	return cleaned
}
