package reduce

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okeanid/glossarion/internal/domain"
)

func TestDecodeLemmaDocument(t *testing.T) {
	t.Parallel()

	doc := `{
		"lemma": "agni",
		"language": "sanskrit",
		"witnesses": [
			{"source": "MW", "sense_ref": "1", "gloss": "fire", "domains": ["ritual"], "ordering": 1},
			{"source": "AP90", "sense_ref": "2", "gloss": "the god of fire"}
		]
	}`

	lemma, language, wsus, err := DecodeLemmaDocument(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Equal(t, "agni", lemma)
	assert.Equal(t, domain.LanguageSanskrit, language)
	require.Len(t, wsus, 2)
	assert.Equal(t, domain.SourceMW, wsus[0].Source)
	assert.Equal(t, "fire", wsus[0].GlossRaw)
	assert.Equal(t, []string{"ritual"}, wsus[0].Metadata.Domains)
	assert.Equal(t, 1, wsus[0].Ordering)
	assert.Equal(t, domain.SourceAP90, wsus[1].Source)
}

func TestDecodeLemmaDocument_EmptyWitnessesIsValid(t *testing.T) {
	t.Parallel()

	lemma, _, wsus, err := DecodeLemmaDocument(strings.NewReader(`{"lemma": "agni", "language": "sanskrit"}`))

	require.NoError(t, err)
	assert.Equal(t, "agni", lemma)
	require.NotNil(t, wsus)
	assert.Empty(t, wsus)
}

func TestDecodeLemmaDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{"missing lemma", `{"language": "sanskrit"}`},
		{"unknown language", `{"lemma": "agni", "language": "english"}`},
		{"unknown field", `{"lemma": "agni", "language": "sanskrit", "surprise": true}`},
		{"malformed json", `{"lemma": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, _, err := DecodeLemmaDocument(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	set := &domain.ReducedSenseSet{
		Lemma:    "agni",
		Language: domain.LanguageSanskrit,
		Mode:     domain.ModeOpen,
		Buckets: []domain.SenseBucket{
			{
				SenseID:          "B1",
				DisplayGloss:     "fire",
				Confidence:       0.91,
				SemanticConstant: "FIRE",
				Witnesses: []domain.WitnessSenseUnit{
					{Source: domain.SourceMW, SenseRef: "1", GlossRaw: "fire"},
					{Source: domain.SourceAP90, SenseRef: "2", GlossRaw: "fire, flame"},
				},
			},
		},
		Warnings: []string{"something was dropped"},
	}

	plain := Render(set, false)
	assert.Equal(t, "agni", plain.Lemma)
	assert.Equal(t, "SANSKRIT", plain.Language)
	assert.Equal(t, "OPEN", plain.Mode)
	require.Len(t, plain.Buckets, 1)
	assert.Equal(t, "FIRE", plain.Buckets[0].SemanticConstant)
	assert.Empty(t, plain.Buckets[0].Witnesses)
	assert.Equal(t, set.Warnings, plain.Warnings)

	evidence := Render(set, true)
	require.Len(t, evidence.Buckets[0].Witnesses, 2)
	assert.Equal(t, "MW", evidence.Buckets[0].Witnesses[0].Source)
	assert.Equal(t, "fire, flame", evidence.Buckets[0].Witnesses[1].GlossRaw)
}
