package domain

// SenseBucket is a cluster of witness sense units judged to express the
// same underlying meaning. Buckets partition the witness set of one run:
// every witness appears in exactly one bucket and no bucket is empty.
type SenseBucket struct {
	// SenseID is the rank-derived label ("B1", "B2", ...) within one
	// reduction run. It is not globally stable.
	SenseID string
	// Witnesses are the member sense units, in the deterministic order
	// they joined the bucket. The first member is always the bucket seed,
	// which is minimal by (source priority, sense_ref) among members.
	Witnesses []WitnessSenseUnit
	// DisplayGloss is the raw gloss of the centroid witness: the member
	// from the highest-priority source, tie-broken by sense_ref.
	DisplayGloss string
	// Confidence is the mean pairwise similarity among members, in [0,1].
	// Singleton buckets have confidence 1.0. It measures bucket coherence,
	// not source reliability.
	Confidence float64
	// SemanticConstant is the attached concept identifier, empty when the
	// registry found no match and could not mint one.
	SemanticConstant ConstantID
}

// Centroid returns the bucket's centroid witness. Witnesses are stored in
// clustering order, so the centroid is always the first member.
func (b SenseBucket) Centroid() WitnessSenseUnit {
	return b.Witnesses[0]
}

// HasPrimaryWitness reports whether any member comes from the designated
// primary source for its language. Used for bucket ranking.
func (b SenseBucket) HasPrimaryWitness() bool {
	for _, w := range b.Witnesses {
		if IsPrimarySource(w.Source) {
			return true
		}
	}
	return false
}

// ReducedSenseSet is the final output of one reduction run.
type ReducedSenseSet struct {
	Lemma    string
	Language Language
	Mode     Mode
	Buckets  []SenseBucket
	// Warnings records every degradation of the run (dropped witnesses,
	// unreachable registry) so best-effort results are distinguishable
	// from fully successful ones without reading logs.
	Warnings []string
}

// SimilarityResult is the outcome of scoring one witness pair.
type SimilarityResult struct {
	// Value is the combined score clamped to [0,1].
	Value float64
	// Components maps signal names to their raw (unweighted) values:
	// "token_overlap", "metadata_overlap", "entity_agreement",
	// "primary_source", "negation".
	Components map[string]float64
}
