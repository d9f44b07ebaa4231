package reduce

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okeanid/glossarion/internal/domain"
)

// cluster is a test shorthand running the normalize-score-cluster
// pipeline on raw witnesses.
func cluster(t *testing.T, language domain.Language, mode domain.Mode, wsus ...domain.WitnessSenseUnit) []domain.SenseBucket {
	t.Helper()
	scorer := newTestScorer(language, wsus...)
	graph := BuildGraph(wsus, scorer, mode)
	return Cluster(wsus, graph, mode)
}

func TestCluster_SharedSynonymSegmentMerges(t *testing.T) {
	t.Parallel()

	// One fully shared synonym across semicolon runs is enough to merge.
	a := wsu(domain.SourceMW, "1", "auspicious; benign; favorable")
	b := wsu(domain.SourceAP90, "2", "auspicious; lucky")

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, a, b)

	require.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Witnesses, 2)
}

func TestCluster_SkepticSplitsWhatOpenMerges(t *testing.T) {
	t.Parallel()

	// Token overlap 0.8: above the open threshold once weighted, below
	// the skeptic one.
	a := wsu(domain.SourceSH, "1", "storm cloud dark rain")
	b := wsu(domain.SourceINRIA, "2", "storm cloud dark rain thunder")

	open := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, a, b)
	require.Len(t, open, 1)

	skeptic := cluster(t, domain.LanguageSanskrit, domain.ModeSkeptic, a, b)
	require.Len(t, skeptic, 2)
}

func TestCluster_IdenticalGlossesMergeDespiteMetadataConflict(t *testing.T) {
	t.Parallel()

	// Conflicting metadata never outvotes an identical gloss, even in
	// skeptic mode.
	a := wsu(domain.SourceMW, "1", "sacred utterance")
	a.Metadata = domain.WitnessMetadata{Domains: []string{"ritual"}}
	b := wsu(domain.SourceAP90, "2", "sacred utterance")
	b.Metadata = domain.WitnessMetadata{Domains: []string{"grammar"}}

	for _, mode := range []domain.Mode{domain.ModeOpen, domain.ModeSkeptic} {
		buckets := cluster(t, domain.LanguageSanskrit, mode, a, b)
		require.Len(t, buckets, 1, "mode %s", mode)
	}
}

func TestCluster_NegationMismatchSplits(t *testing.T) {
	t.Parallel()

	a := wsu(domain.SourceMW, "1", "having desire")
	b := wsu(domain.SourceAP90, "2", "without desire")

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, a, b)

	require.Len(t, buckets, 2)
}

func TestCluster_TransitiveClosure(t *testing.T) {
	t.Parallel()

	// a–b and b–c qualify, a–c is zero; the chain still forms one bucket.
	a := wsu(domain.SourceMW, "1", "alpha beta")
	b := wsu(domain.SourceAP90, "2", "alpha beta; gamma delta")
	c := wsu(domain.SourceSH, "3", "gamma delta")

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, a, b, c)

	require.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Witnesses, 3)
}

func TestCluster_PartitionComplete(t *testing.T) {
	t.Parallel()

	wsus := []domain.WitnessSenseUnit{
		wsu(domain.SourceMW, "1", "auspicious; favorable"),
		wsu(domain.SourceAP90, "2", "auspicious"),
		wsu(domain.SourceSH, "3", "name of a river"),
		wsu(domain.SourceINRIA, "4", "without desire"),
	}

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, wsus...)

	seen := make(map[domain.WitnessKey]int)
	for _, b := range buckets {
		for _, w := range b.Witnesses {
			seen[w.Key()]++
		}
	}
	require.Len(t, seen, len(wsus))
	for k, n := range seen {
		assert.Equal(t, 1, n, "witness %v assigned %d times", k, n)
	}
}

func TestCluster_DeterministicAcrossInputOrder(t *testing.T) {
	t.Parallel()

	wsus := []domain.WitnessSenseUnit{
		wsu(domain.SourceMW, "1", "auspicious; favorable"),
		wsu(domain.SourceAP90, "2", "auspicious"),
		wsu(domain.SourceSH, "3", "name of a river"),
		wsu(domain.SourceINRIA, "4", "propitious; auspicious"),
		wsu(domain.SourceMW, "5", "without desire"),
	}
	reversed := make([]domain.WitnessSenseUnit, len(wsus))
	for i, w := range wsus {
		reversed[len(wsus)-1-i] = w
	}

	first := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, wsus...)
	second := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, reversed...)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SenseID, second[i].SenseID)
		assert.Equal(t, first[i].DisplayGloss, second[i].DisplayGloss)
		assert.Equal(t, witnessKeysOf(first[i]), witnessKeysOf(second[i]))
	}
}

func witnessKeysOf(b domain.SenseBucket) []domain.WitnessKey {
	keys := make([]domain.WitnessKey, 0, len(b.Witnesses))
	for _, w := range b.Witnesses {
		keys = append(keys, w.Key())
	}
	return keys
}

func TestCluster_SeedIsHighestPrioritySource(t *testing.T) {
	t.Parallel()

	// AP90 comes first in the input, but MW outranks it, so the bucket's
	// display gloss is the MW witness's raw text.
	secondary := wsu(domain.SourceAP90, "2", "auspicious; lucky")
	primary := wsu(domain.SourceMW, "1", "auspicious; favorable")

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, secondary, primary)

	require.Len(t, buckets, 1)
	assert.Equal(t, primary.GlossRaw, buckets[0].DisplayGloss)
	assert.Equal(t, domain.SourceMW, buckets[0].Witnesses[0].Source)
	assert.Equal(t, buckets[0].Witnesses[0], buckets[0].Centroid())
}

func TestCluster_RankingAndSenseIDs(t *testing.T) {
	t.Parallel()

	// Three witnesses agree on one sense; a lone witness carries another.
	wsus := []domain.WitnessSenseUnit{
		wsu(domain.SourceAP90, "solo", "name of a river"),
		wsu(domain.SourceMW, "a", "bright, shining"),
		wsu(domain.SourceAP90, "b", "bright, shining"),
		wsu(domain.SourceSH, "c", "bright, shining"),
	}

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, wsus...)

	require.Len(t, buckets, 2)
	assert.Equal(t, "B1", buckets[0].SenseID)
	assert.Equal(t, "B2", buckets[1].SenseID)
	assert.Len(t, buckets[0].Witnesses, 3)
	assert.Len(t, buckets[1].Witnesses, 1)
}

func TestCluster_PrimaryPresenceBreaksCountTies(t *testing.T) {
	t.Parallel()

	// Two singleton buckets with equal witness counts: the one witnessed
	// by the primary lexicon ranks first.
	wsus := []domain.WitnessSenseUnit{
		wsu(domain.SourceAP90, "1", "name of a river"),
		wsu(domain.SourceMW, "2", "without desire"),
	}

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, wsus...)

	require.Len(t, buckets, 2)
	assert.Equal(t, domain.SourceMW, buckets[0].Witnesses[0].Source)
}

func TestCluster_Confidence(t *testing.T) {
	t.Parallel()

	a := wsu(domain.SourceMW, "1", "bright, shining")
	b := wsu(domain.SourceAP90, "2", "bright, shining")
	lone := wsu(domain.SourceSH, "3", "name of a river")

	buckets := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, a, b, lone)

	require.Len(t, buckets, 2)
	pair, single := buckets[0], buckets[1]
	require.Len(t, pair.Witnesses, 2)

	assert.Equal(t, 1.0, single.Confidence)
	assert.Greater(t, pair.Confidence, Threshold(domain.ModeOpen))
	assert.LessOrEqual(t, pair.Confidence, 1.0)
}

func TestCluster_SkepticNeverYieldsFewerBuckets(t *testing.T) {
	t.Parallel()

	sets := [][]domain.WitnessSenseUnit{
		{
			wsu(domain.SourceMW, "1", "auspicious; benign; favorable"),
			wsu(domain.SourceAP90, "2", "auspicious; lucky"),
			wsu(domain.SourceSH, "3", "storm cloud dark rain"),
			wsu(domain.SourceINRIA, "4", "storm cloud dark rain thunder"),
		},
		{
			wsu(domain.SourceMW, "1", "having desire"),
			wsu(domain.SourceAP90, "2", "without desire"),
			wsu(domain.SourceSH, "3", "desire, wish"),
		},
	}
	for i, wsus := range sets {
		open := cluster(t, domain.LanguageSanskrit, domain.ModeOpen, wsus...)
		skeptic := cluster(t, domain.LanguageSanskrit, domain.ModeSkeptic, wsus...)
		assert.GreaterOrEqual(t, len(skeptic), len(open), fmt.Sprintf("set %d", i))
	}
}
