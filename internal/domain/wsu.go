package domain

// WitnessSenseUnit is one atomic sense statement from one source: the unit
// of evidence the reduction pipeline clusters. It is immutable after
// extraction; all derived data (normalized tokens, scores, buckets) lives
// in separate structures.
type WitnessSenseUnit struct {
	// Source is the enumerated origin of the statement.
	Source Source
	// SenseRef is a stable locator unique within Source (for example a
	// dictionary entry id). It must be reproducible across runs.
	SenseRef string
	// GlossRaw is the untouched source text. It is authoritative for
	// display and is never mutated or paraphrased.
	GlossRaw string
	// Metadata carries optional domain and register tags.
	Metadata WitnessMetadata
	// Ordering is the original rank of the statement within its source,
	// used only as a tie-break. Zero means unknown.
	Ordering int
}

// Key returns the (source, sense_ref) identity of the witness, unique
// within one reduction run.
func (w WitnessSenseUnit) Key() WitnessKey {
	return WitnessKey{Source: w.Source, SenseRef: w.SenseRef}
}

// WitnessKey is the run-scoped identity of a witness sense unit.
type WitnessKey struct {
	Source   Source
	SenseRef string
}

// WitnessMetadata holds the optional tags a source attaches to a sense.
// Both sets may be empty; the pipeline must tolerate that.
type WitnessMetadata struct {
	// Domains are subject-field tags such as "ritual" or "botany".
	Domains []string
	// Register tags mark usage level, e.g. "poetic", "vedic", "late".
	Register []string
}

// NormalizedGloss is the derived, comparison-only view of a witness.
// It is regenerated deterministically from GlossRaw and never persisted
// independently of its witness.
type NormalizedGloss struct {
	// Tokens is the full normalized token set of the gloss.
	Tokens []string
	// Segments are the token sets of each ";"-separated gloss segment.
	// Dictionary glosses are typically semicolon-separated synonym runs;
	// segment-level overlap is how a single shared synonym is recognized.
	Segments [][]string
	// Entity is the rule-detected entity type tag.
	Entity EntityTag
	// Negated reports whether the gloss contains a negation marker.
	Negated bool
}
