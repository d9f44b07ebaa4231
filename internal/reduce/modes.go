package reduce

import "github.com/okeanid/glossarion/internal/domain"

// modeParams holds every mode-specific constant in one place. Adding a
// mode means adding a row here; the scorer and bucketer never branch on
// the mode themselves.
//
// Each signal weight is the maximum contribution of that signal to the
// combined score (signals are normalized to [0,1], or [-1/3,1] for
// entity agreement, before weighting). The four positive weights sum to
// 1.0 so the maximum achievable score before the negation penalty is
// exactly 1.0. NegationPenalty is applied additively after weighting.
//
// Invariant: TokenWeight >= Threshold in both modes, so two witnesses
// with identical glosses always land in the same bucket regardless of
// metadata. OPEN leans almost entirely on token overlap; SKEPTIC shifts
// weight toward metadata, entity, and primary-source evidence and
// penalizes negation harder.
type modeParams struct {
	Threshold       float64
	TokenWeight     float64
	MetadataWeight  float64
	EntityWeight    float64
	PrimaryWeight   float64
	NegationPenalty float64
}

var modeTable = map[domain.Mode]modeParams{
	domain.ModeOpen: {
		Threshold:       0.62,
		TokenWeight:     0.80,
		MetadataWeight:  0.08,
		EntityWeight:    0.07,
		PrimaryWeight:   0.05,
		NegationPenalty: 0.40,
	},
	domain.ModeSkeptic: {
		Threshold:       0.78,
		TokenWeight:     0.78,
		MetadataWeight:  0.085,
		EntityWeight:    0.08,
		PrimaryWeight:   0.055,
		NegationPenalty: 0.60,
	},
}

// paramsFor returns the mode constants. The caller is expected to have
// validated the mode already; an unknown mode panics because reaching it
// means input validation was bypassed.
func paramsFor(mode domain.Mode) modeParams {
	p, ok := modeTable[mode]
	if !ok {
		panic("reduce: unknown mode " + string(mode))
	}
	return p
}

// Threshold exposes a mode's clustering threshold for callers that need
// to report it (CLI output, logs).
func Threshold(mode domain.Mode) float64 {
	return paramsFor(mode).Threshold
}
