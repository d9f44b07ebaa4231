package reduce

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/okeanid/glossarion/internal/domain"
)

// LemmaDocument is the JSON input format the CLI tools consume: one
// lemma with its extracted witness sense units. Adapter output files
// use this shape, one document per file.
type LemmaDocument struct {
	Lemma     string        `json:"lemma"`
	Language  string        `json:"language"`
	Witnesses []WireWitness `json:"witnesses"`
}

// WireWitness is the JSON shape of one witness sense unit.
type WireWitness struct {
	Source   string   `json:"source"`
	SenseRef string   `json:"sense_ref"`
	Gloss    string   `json:"gloss"`
	Domains  []string `json:"domains,omitempty"`
	Register []string `json:"register,omitempty"`
	Ordering int      `json:"ordering,omitempty"`
}

// DecodeLemmaDocument reads one lemma document. The language must parse;
// witness-level problems are left for the pipeline's sanitization pass,
// which turns them into warnings rather than failures.
func DecodeLemmaDocument(r io.Reader) (lemma string, language domain.Language, wsus []domain.WitnessSenseUnit, err error) {
	var doc LemmaDocument

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return "", "", nil, fmt.Errorf("decode lemma document: %w", err)
	}

	if doc.Lemma == "" {
		return "", "", nil, domain.NewValidationError("lemma", "must not be empty")
	}
	lang, ok := domain.ParseLanguage(doc.Language)
	if !ok {
		return "", "", nil, domain.NewValidationError("language", "unknown language "+doc.Language)
	}

	wsus = make([]domain.WitnessSenseUnit, 0, len(doc.Witnesses))
	for _, w := range doc.Witnesses {
		wsus = append(wsus, domain.WitnessSenseUnit{
			Source:   domain.Source(w.Source),
			SenseRef: w.SenseRef,
			GlossRaw: w.Gloss,
			Metadata: domain.WitnessMetadata{
				Domains:  w.Domains,
				Register: w.Register,
			},
			Ordering: w.Ordering,
		})
	}

	return doc.Lemma, lang, wsus, nil
}
