package reduce

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/okeanid/glossarion/internal/domain"
)

// NormalizeGloss canonicalizes a raw gloss for comparison. The steps run
// in fixed order: NFC normalization, lowercasing, whitespace collapse,
// abbreviation expansion (longest match first), tokenization, stop-word
// removal. Entity detection runs on the raw text before lowercasing so
// capitalization evidence survives.
//
// The result is used only for scoring; display always shows GlossRaw.
// Identical (glossRaw, language) inputs always yield identical output:
// nothing here depends on locale, time, or map iteration order.
func NormalizeGloss(glossRaw string, language domain.Language) domain.NormalizedGloss {
	entity := detectEntity(glossRaw, language)

	text := norm.NFC.String(glossRaw)
	text = strings.ToLower(text)
	text = collapseWhitespace(text)
	text = expandAbbreviations(text, language)

	segments := splitSegments(text, language)

	seen := make(map[string]bool)
	var tokens []string
	for _, seg := range segments {
		for _, tok := range seg {
			if !seen[tok] {
				seen[tok] = true
				tokens = append(tokens, tok)
			}
		}
	}

	return domain.NormalizedGloss{
		Tokens:   tokens,
		Segments: segments,
		Entity:   entity,
		Negated:  containsNegation(tokens),
	}
}

// collapseWhitespace trims the text and compresses runs of whitespace
// into single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// splitSegments splits an expanded, lowercased gloss on ";" and tokenizes
// each segment, dropping stop-words and empty tokens. Segments that end
// up empty after stop-word removal are dropped.
func splitSegments(text string, language domain.Language) [][]string {
	stops := stopWords[language]

	var segments [][]string
	for _, part := range strings.Split(text, ";") {
		var seg []string
		segSeen := make(map[string]bool)
		for _, tok := range tokenize(part) {
			if stops[tok] || segSeen[tok] {
				continue
			}
			segSeen[tok] = true
			seg = append(seg, tok)
		}
		if len(seg) > 0 {
			segments = append(segments, seg)
		}
	}
	return segments
}

// tokenize splits on any rune that is neither a letter, a digit, nor a
// combining mark. Hyphens inside words are split too: "non-being" yields
// "non", "being", which is what the negation scan expects.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	})
}

// containsNegation reports whether any normalized token is a negation
// marker. Markers must survive stop-word removal, so none of them may
// appear in a stop list.
func containsNegation(tokens []string) bool {
	for _, tok := range tokens {
		if negationMarkers[tok] {
			return true
		}
	}
	return false
}

// negationMarkers is the fixed cross-language list of tokens that flip a
// gloss's polarity. Glosses in all supported sources are English, so the
// list is shared. "non" covers hyphenated "non-" after tokenization.
var negationMarkers = map[string]bool{
	"not":     true,
	"no":      true,
	"non":     true,
	"without": true,
	"never":   true,
	"neither": true,
	"lacking": true,
	"devoid":  true,
	"un":      true,
}

// stopWords lists function words stripped from comparison token sets.
// The gloss text of every supported source is English, so the lists are
// near-identical; they stay per-language so a language can diverge
// (e.g. keeping particles meaningful in its sources) without touching
// the normalizer. Negation markers are deliberately absent.
var stopWords = map[domain.Language]map[string]bool{
	domain.LanguageLatin:    baseStopWords(),
	domain.LanguageGreek:    baseStopWords(),
	domain.LanguageSanskrit: baseStopWords(),
}

func baseStopWords() map[string]bool {
	words := []string{
		"a", "an", "the", "of", "to", "or", "and", "in", "on", "at",
		"by", "for", "with", "as", "is", "are", "be", "being", "it",
		"its", "that", "which", "who", "whom", "this", "these", "any",
		"one", "etc", "i", "e", "g",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// abbreviations maps lexicographic shorthand to its expansion, per
// language. Keys are matched against the lowercased gloss, longest key
// first, so "n. of" wins over "n.". Expansion is a literal substring
// replace; it never rewrites meaning.
var abbreviations = map[domain.Language]map[string]string{
	domain.LanguageSanskrit: {
		"n. of":   "name of",
		"ep. of":  "epithet of",
		"partic.": "particle",
		"esp.":    "especially",
		"lit.":    "literally",
		"fig.":    "figuratively",
		"cf.":     "compare",
		"ifc.":    "at the end of a compound",
		"mfn.":    "adjective",
	},
	domain.LanguageLatin: {
		"transf.": "transferred",
		"poet.":   "poetic",
		"esp.":    "especially",
		"lit.":    "literally",
		"fig.":    "figuratively",
		"cf.":     "compare",
		"subst.":  "substantive",
		"adj.":    "adjective",
		"adv.":    "adverb",
	},
	domain.LanguageGreek: {
		"freq.":  "frequently",
		"esp.":   "especially",
		"lit.":   "literally",
		"metaph": "metaphorically",
		"cf.":    "compare",
		"c. acc": "with accusative",
		"c. gen": "with genitive",
		"c. dat": "with dative",
	},
}

// expansionOrder caches per-language abbreviation keys sorted longest
// first (ties broken lexically) so replacement order is deterministic.
var expansionOrder = func() map[domain.Language][]string {
	out := make(map[domain.Language][]string, len(abbreviations))
	for lang, table := range abbreviations {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
		out[lang] = keys
	}
	return out
}()

func expandAbbreviations(text string, language domain.Language) string {
	table := abbreviations[language]
	for _, abbr := range expansionOrder[language] {
		text = strings.ReplaceAll(text, abbr, table[abbr])
	}
	return text
}
