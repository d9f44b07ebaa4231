package reduce

import (
	"github.com/okeanid/glossarion/internal/domain"
)

// Raw signal magnitudes before normalization. These mirror the additive
// bonuses lexicographers agreed on for the evidence signals; the scorer
// divides by the caps so each signal enters the weighted sum in [0,1]
// (entity disagreement goes slightly negative).
const (
	metadataDomainBonus   = 0.20
	metadataRegisterBonus = 0.15
	metadataCap           = 0.40

	entityAgreeBonus    = 0.30
	entityDisagreeMalus = -0.10
	primaryBothBonus    = 0.25
	primaryOneBonus     = 0.10
	negationRawPenalty  = -0.40
)

// Scorer computes pairwise similarity between witness sense units from
// their cached normalized glosses. It is a pure function of its inputs:
// the same (a, b, mode) always yields the same value, and the score is
// symmetric in a and b.
type Scorer struct {
	glosses map[domain.WitnessKey]domain.NormalizedGloss
}

// NewScorer creates a Scorer over a run's normalized-gloss cache.
func NewScorer(glosses map[domain.WitnessKey]domain.NormalizedGloss) *Scorer {
	return &Scorer{glosses: glosses}
}

// Score combines the five signals linearly under the mode's weight table
// and clamps the result to [0,1]. The component breakdown carries the
// raw (unweighted) signal values for inspection.
func (s *Scorer) Score(a, b domain.WitnessSenseUnit, mode domain.Mode) domain.SimilarityResult {
	p := paramsFor(mode)
	ga := s.glosses[a.Key()]
	gb := s.glosses[b.Key()]

	token := tokenOverlap(ga, gb)
	meta := metadataOverlap(a.Metadata, b.Metadata)
	entity := entityAgreement(ga.Entity, gb.Entity)
	primary := primaryAgreement(a.Source, b.Source)
	negation := negationSignal(ga.Negated, gb.Negated)

	value := p.TokenWeight*token +
		p.MetadataWeight*(meta/metadataCap) +
		p.EntityWeight*(entity/entityAgreeBonus) +
		p.PrimaryWeight*(primary/primaryBothBonus)

	if negation != 0 {
		value -= p.NegationPenalty
	}

	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	return domain.SimilarityResult{
		Value: value,
		Components: map[string]float64{
			"token_overlap":    token,
			"metadata_overlap": meta,
			"entity_agreement": entity,
			"primary_source":   primary,
			"negation":         negation,
		},
	}
}

// tokenOverlap is the Jaccard similarity of the full token sets, or the
// best per-segment Jaccard if that is higher. Dictionary glosses are
// semicolon-separated synonym runs: "auspicious; benign; favorable" and
// "auspicious; lucky" share one full synonym, which whole-set Jaccard
// under-reports but segment matching recognizes.
func tokenOverlap(a, b domain.NormalizedGloss) float64 {
	best := jaccard(a.Tokens, b.Tokens)
	for _, sa := range a.Segments {
		for _, sb := range b.Segments {
			if j := jaccard(sa, sb); j > best {
				best = j
			}
		}
	}
	return best
}

// jaccard computes |A∩B| / |A∪B| over token slices (treated as sets).
// Returns 0 if either set is empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	var inter int
	union := len(set)
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if seen[t] {
			continue
		}
		seen[t] = true
		if set[t] {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

// Jaccard is the exported form used by the constant registry for label
// matching, so buckets and constants are compared with the same signal.
func Jaccard(a, b []string) float64 { return jaccard(a, b) }

// metadataOverlap awards fixed bonuses per shared domain and register
// tag, capped per kind and in total.
func metadataOverlap(a, b domain.WitnessMetadata) float64 {
	score := metadataDomainBonus * float64(sharedCount(a.Domains, b.Domains))
	if score > metadataCap {
		score = metadataCap
	}
	reg := metadataRegisterBonus * float64(sharedCount(a.Register, b.Register))
	if reg > 2*metadataRegisterBonus {
		reg = 2 * metadataRegisterBonus
	}
	score += reg
	if score > metadataCap {
		score = metadataCap
	}
	return score
}

func sharedCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	var n int
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if set[t] && !seen[t] {
			seen[t] = true
			n++
		}
	}
	return n
}

// entityAgreement rewards matching non-null entity tags and mildly
// penalizes conflicting ones. A null tag on either side contributes
// nothing.
func entityAgreement(a, b domain.EntityTag) float64 {
	if a == domain.EntityNone || b == domain.EntityNone {
		return 0
	}
	if a == b {
		return entityAgreeBonus
	}
	return entityDisagreeMalus
}

// primaryAgreement boosts pairs drawn from the designated primary
// lexicon: fully when both are primary, partially when one is.
func primaryAgreement(a, b domain.Source) float64 {
	pa := domain.IsPrimarySource(a)
	pb := domain.IsPrimarySource(b)
	switch {
	case pa && pb:
		return primaryBothBonus
	case pa || pb:
		return primaryOneBonus
	default:
		return 0
	}
}

// negationSignal is non-zero only when exactly one gloss is negated.
// Two negated glosses agree in polarity and are not penalized.
func negationSignal(a, b bool) float64 {
	if a != b {
		return negationRawPenalty
	}
	return 0
}
