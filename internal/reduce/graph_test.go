package reduce

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okeanid/glossarion/internal/domain"
)

func TestBuildGraph_SymmetricLookup(t *testing.T) {
	t.Parallel()

	a := wsu(domain.SourceMW, "1", "bright, shining")
	b := wsu(domain.SourceAP90, "2", "bright, radiant")
	scorer := newTestScorer(domain.LanguageSanskrit, a, b)

	g := BuildGraph([]domain.WitnessSenseUnit{a, b}, scorer, domain.ModeOpen)

	assert.Equal(t, g.Score(a.Key(), b.Key()), g.Score(b.Key(), a.Key()))
	assert.Greater(t, g.Score(a.Key(), b.Key()), 0.0)
}

func TestBuildGraph_AbsentPairReadsZero(t *testing.T) {
	t.Parallel()

	a := wsu(domain.SourceMW, "1", "bright")
	scorer := newTestScorer(domain.LanguageSanskrit, a)
	g := BuildGraph([]domain.WitnessSenseUnit{a}, scorer, domain.ModeOpen)

	other := domain.WitnessKey{Source: domain.SourceAP90, SenseRef: "nope"}
	assert.Zero(t, g.Score(a.Key(), other))
	_, ok := g.Result(a.Key(), other)
	assert.False(t, ok)
}

func TestBuildGraph_FullMatrixBelowCutoff(t *testing.T) {
	t.Parallel()

	wsus := make([]domain.WitnessSenseUnit, 10)
	for i := range wsus {
		wsus[i] = wsu(domain.SourceMW, fmt.Sprintf("%d", i), fmt.Sprintf("word%d", i))
	}
	scorer := newTestScorer(domain.LanguageSanskrit, wsus...)

	g := BuildGraph(wsus, scorer, domain.ModeOpen)

	// Every pair is scored even when fully disjoint.
	for i := 0; i < len(wsus); i++ {
		for j := i + 1; j < len(wsus); j++ {
			_, ok := g.Result(wsus[i].Key(), wsus[j].Key())
			assert.True(t, ok, "pair (%d, %d) missing", i, j)
		}
	}
}

func TestBuildGraph_PrunesAboveCutoff(t *testing.T) {
	t.Parallel()

	n := fullMatrixCutoff + 1
	wsus := make([]domain.WitnessSenseUnit, n)
	for i := range wsus {
		wsus[i] = wsu(domain.SourceMW, fmt.Sprintf("%d", i), fmt.Sprintf("word%d", i))
	}
	// Exactly one pair shares a token.
	wsus[0].GlossRaw = "alpha shared"
	wsus[1].GlossRaw = "beta shared"
	scorer := newTestScorer(domain.LanguageSanskrit, wsus...)

	g := BuildGraph(wsus, scorer, domain.ModeOpen)

	_, ok := g.Result(wsus[0].Key(), wsus[1].Key())
	require.True(t, ok, "pair with shared token must survive pruning")

	_, ok = g.Result(wsus[2].Key(), wsus[3].Key())
	assert.False(t, ok, "fully disjoint pair must be pruned")
}

func TestBuildGraph_SharedMetadataSurvivesPruning(t *testing.T) {
	t.Parallel()

	n := fullMatrixCutoff + 1
	wsus := make([]domain.WitnessSenseUnit, n)
	for i := range wsus {
		wsus[i] = wsu(domain.SourceMW, fmt.Sprintf("%d", i), fmt.Sprintf("word%d", i))
	}
	wsus[5].Metadata.Domains = []string{"ritual"}
	wsus[6].Metadata.Domains = []string{"ritual"}
	scorer := newTestScorer(domain.LanguageSanskrit, wsus...)

	g := BuildGraph(wsus, scorer, domain.ModeOpen)

	_, ok := g.Result(wsus[5].Key(), wsus[6].Key())
	assert.True(t, ok, "pair sharing a domain tag must be scored")
}
