package registry

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes, drops combining marks, recomposes.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName folds a country name for lookup: trimmed, lowercased,
// diacritics removed, so "Côte d'Ivoire", "cote d'ivoire" and
// "CÔTE D'IVOIRE" all index the same entry.
func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	folded, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		return s
	}
	return folded
}
