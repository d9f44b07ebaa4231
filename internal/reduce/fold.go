package reduce

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes to NFD, removes combining marks, and
// recomposes, turning "Śiva" into "Siva" and "puellā" into "puella".
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldASCII strips diacritics from s. Transliteration schemes for the
// supported languages differ only in their combining marks, so folding
// makes name-list lookups and constant ids scheme-independent.
func FoldASCII(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}
