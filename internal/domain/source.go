package domain

// Source identifies a lexicographic source. Never a free-form string:
// every witness sense unit must carry one of the registered codes below.
type Source string

const (
	// Sanskrit sources.
	SourceMW    Source = "MW"    // Monier-Williams Sanskrit-English Dictionary
	SourceAP90  Source = "AP90"  // Apte Practical Sanskrit-English Dictionary (1890)
	SourceSH    Source = "SH"    // Shabda-Sagara
	SourceINRIA Source = "INRIA" // Sanskrit Heritage morphological analyzer

	// Latin sources.
	SourceLS  Source = "LS"  // Lewis & Short
	SourceGAF Source = "GAF" // Gaffiot
	SourceWW  Source = "WW"  // Whitaker's Words
	SourceCOL Source = "COL" // Collatinus lemmatizer

	// Greek sources.
	SourceLSJ Source = "LSJ" // Liddell-Scott-Jones
	SourceMDL Source = "MDL" // Middle Liddell
	SourceCUN Source = "CUN" // Cunliffe, Lexicon of the Homeric Dialect
	SourceMOR Source = "MOR" // Morpheus analyzer
)

func (s Source) String() string { return string(s) }

// SourceInfo describes a registered source: the language it serves, its
// trust rank within that language (lower is higher trust, used as the
// clustering sort key), and whether it is the designated primary lexicon.
type SourceInfo struct {
	Code     Source
	Language Language
	Kind     SourceKind
	Rank     int
	Primary  bool
}

// sourceCatalog is the ordered registry of known sources. Rank ordering
// within a language is the single tie-break authority for clustering, so
// this table must stay stable across releases.
var sourceCatalog = []SourceInfo{
	{Code: SourceMW, Language: LanguageSanskrit, Kind: SourceKindLexicon, Rank: 1, Primary: true},
	{Code: SourceAP90, Language: LanguageSanskrit, Kind: SourceKindLexicon, Rank: 2},
	{Code: SourceSH, Language: LanguageSanskrit, Kind: SourceKindLexicon, Rank: 3},
	{Code: SourceINRIA, Language: LanguageSanskrit, Kind: SourceKindMorphology, Rank: 4},

	{Code: SourceLS, Language: LanguageLatin, Kind: SourceKindLexicon, Rank: 1, Primary: true},
	{Code: SourceGAF, Language: LanguageLatin, Kind: SourceKindLexicon, Rank: 2},
	{Code: SourceWW, Language: LanguageLatin, Kind: SourceKindMorphology, Rank: 3},
	{Code: SourceCOL, Language: LanguageLatin, Kind: SourceKindMorphology, Rank: 4},

	{Code: SourceLSJ, Language: LanguageGreek, Kind: SourceKindLexicon, Rank: 1, Primary: true},
	{Code: SourceMDL, Language: LanguageGreek, Kind: SourceKindLexicon, Rank: 2},
	{Code: SourceCUN, Language: LanguageGreek, Kind: SourceKindLexicon, Rank: 3},
	{Code: SourceMOR, Language: LanguageGreek, Kind: SourceKindMorphology, Rank: 4},
}

var sourceIndex = func() map[Source]SourceInfo {
	m := make(map[Source]SourceInfo, len(sourceCatalog))
	for _, info := range sourceCatalog {
		m[info.Code] = info
	}
	return m
}()

// LookupSource returns the catalog entry for a source code.
func LookupSource(code Source) (SourceInfo, bool) {
	info, ok := sourceIndex[code]
	return info, ok
}

// SourcesForLanguage returns the catalog entries serving one language,
// in rank order.
func SourcesForLanguage(lang Language) []SourceInfo {
	var out []SourceInfo
	for _, info := range sourceCatalog {
		if info.Language == lang {
			out = append(out, info)
		}
	}
	return out
}

// SourcePriority returns the trust rank of a source, or a rank past the
// end of the catalog for unknown codes so they sort last.
func SourcePriority(code Source) int {
	if info, ok := sourceIndex[code]; ok {
		return info.Rank
	}
	return len(sourceCatalog) + 1
}

// IsPrimarySource reports whether the source is the designated primary
// lexicon for its language.
func IsPrimarySource(code Source) bool {
	info, ok := sourceIndex[code]
	return ok && info.Primary
}
