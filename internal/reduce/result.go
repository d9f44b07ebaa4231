package reduce

import (
	"github.com/okeanid/glossarion/internal/domain"
)

// RenderedSenseSet is the serializable view of a reduction result handed
// to the CLI/API boundary.
type RenderedSenseSet struct {
	Lemma    string           `json:"lemma"`
	Language string           `json:"language"`
	Mode     string           `json:"mode"`
	Buckets  []RenderedBucket `json:"buckets"`
	Warnings []string         `json:"warnings,omitempty"`
}

// RenderedBucket carries a bucket's learner-facing fields. Witnesses are
// present only when the caller asked for evidence.
type RenderedBucket struct {
	SenseID          string            `json:"sense_id"`
	DisplayGloss     string            `json:"display_gloss"`
	Confidence       float64           `json:"confidence"`
	SemanticConstant string            `json:"semantic_constant,omitempty"`
	Witnesses        []RenderedWitness `json:"witnesses,omitempty"`
}

// RenderedWitness exposes the full evidence trail of one witness.
type RenderedWitness struct {
	Source   string `json:"source"`
	SenseRef string `json:"sense_ref"`
	GlossRaw string `json:"gloss_raw"`
}

// Render shapes a result for output. With evidence=false only sense_id,
// display_gloss, confidence and semantic_constant are surfaced; with
// evidence=true each bucket also lists its witnesses with source,
// sense_ref and the untouched gloss_raw for inspection.
func Render(set *domain.ReducedSenseSet, evidence bool) RenderedSenseSet {
	out := RenderedSenseSet{
		Lemma:    set.Lemma,
		Language: set.Language.String(),
		Mode:     set.Mode.String(),
		Buckets:  make([]RenderedBucket, 0, len(set.Buckets)),
		Warnings: set.Warnings,
	}

	for _, b := range set.Buckets {
		rb := RenderedBucket{
			SenseID:          b.SenseID,
			DisplayGloss:     b.DisplayGloss,
			Confidence:       b.Confidence,
			SemanticConstant: b.SemanticConstant.String(),
		}
		if evidence {
			rb.Witnesses = make([]RenderedWitness, 0, len(b.Witnesses))
			for _, w := range b.Witnesses {
				rb.Witnesses = append(rb.Witnesses, RenderedWitness{
					Source:   w.Source.String(),
					SenseRef: w.SenseRef,
					GlossRaw: w.GlossRaw,
				})
			}
		}
		out.Buckets = append(out.Buckets, rb)
	}

	return out
}
