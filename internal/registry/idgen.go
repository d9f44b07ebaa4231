package registry

import (
	"strings"

	"github.com/okeanid/glossarion/internal/domain"
	"github.com/okeanid/glossarion/internal/reduce"
)

// maxIDTokens caps how many content words a derived id carries.
const maxIDTokens = 3

// DeriveConstantID builds an UPPER_SNAKE_CASE identifier from a gloss:
// normalize (which strips stop-words), take the leading content words of
// the first gloss segment, fold diacritics, uppercase, underscore-join.
// "Śiva, the deity" becomes SIVA_DEITY. The result is deterministic for
// a given (gloss, language); numeric collision suffixes are the
// caller's concern.
func DeriveConstantID(gloss string, language domain.Language) domain.ConstantID {
	normalized := reduce.NormalizeGloss(gloss, language)

	tokens := normalized.Tokens
	if len(normalized.Segments) > 0 {
		tokens = normalized.Segments[0]
	}
	if len(tokens) > maxIDTokens {
		tokens = tokens[:maxIDTokens]
	}

	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		cleaned := sanitizeIDToken(tok)
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	if len(parts) == 0 {
		// Glosses made entirely of stop-words or symbols still need an id.
		return "SENSE"
	}

	return domain.ConstantID(strings.Join(parts, "_"))
}

// sanitizeIDToken folds diacritics, uppercases, and drops anything
// outside [A-Z0-9].
func sanitizeIDToken(tok string) string {
	folded := strings.ToUpper(reduce.FoldASCII(tok))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CanonicalLabel extracts the first gloss segment as the constant's
// human-readable label; the full gloss becomes the description.
func CanonicalLabel(gloss string) string {
	label, _, _ := strings.Cut(gloss, ";")
	return strings.TrimSpace(label)
}
