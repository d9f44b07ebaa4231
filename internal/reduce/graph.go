package reduce

import (
	"github.com/okeanid/glossarion/internal/domain"
)

// fullMatrixCutoff is the witness count up to which the builder computes
// every pairwise score. Typical lemmas carry tens of witnesses, so the
// O(n²) matrix is the normal case.
const fullMatrixCutoff = 100

// SimilarityGraph is a symmetric score lookup over the unordered witness
// pairs of one run. Only the upper triangle is stored; lookups normalize
// the key order.
type SimilarityGraph struct {
	edges map[pairKey]domain.SimilarityResult
}

type pairKey struct {
	lo, hi domain.WitnessKey
}

func makePairKey(a, b domain.WitnessKey) pairKey {
	if less(b, a) {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

func less(a, b domain.WitnessKey) bool {
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	return a.SenseRef < b.SenseRef
}

// Score returns the similarity of an unordered pair. Pairs skipped by
// pruning read as zero, which is exactly how the bucketer treats an
// absent edge.
func (g *SimilarityGraph) Score(a, b domain.WitnessKey) float64 {
	return g.edges[makePairKey(a, b)].Value
}

// Result returns the full scoring result for a pair, with the component
// breakdown, and whether the pair was scored at all.
func (g *SimilarityGraph) Result(a, b domain.WitnessKey) (domain.SimilarityResult, bool) {
	r, ok := g.edges[makePairKey(a, b)]
	return r, ok
}

// BuildGraph scores all unordered witness pairs under the given mode.
//
// At or below fullMatrixCutoff witnesses the full matrix is computed.
// Above it, pairs that share no metadata tag AND have disjoint token
// sets are skipped: such a pair can only earn the entity and primary
// signals, which never reach either mode's threshold on their own. The
// trade-off is explicit: a skipped pair could in principle have scored
// non-zero, so very large witness sets may miss a weak true edge in the
// stored breakdowns.
func BuildGraph(wsus []domain.WitnessSenseUnit, scorer *Scorer, mode domain.Mode) *SimilarityGraph {
	g := &SimilarityGraph{
		edges: make(map[pairKey]domain.SimilarityResult, len(wsus)*(len(wsus)-1)/2),
	}

	prune := len(wsus) > fullMatrixCutoff

	for i := 0; i < len(wsus); i++ {
		for j := i + 1; j < len(wsus); j++ {
			a, b := wsus[i], wsus[j]
			if prune && skipPair(scorer, a, b) {
				continue
			}
			g.edges[makePairKey(a.Key(), b.Key())] = scorer.Score(a, b, mode)
		}
	}

	return g
}

// skipPair reports whether a pair can be pruned: nothing shared in
// metadata and token sets fully disjoint.
func skipPair(s *Scorer, a, b domain.WitnessSenseUnit) bool {
	if sharedCount(a.Metadata.Domains, b.Metadata.Domains) > 0 {
		return false
	}
	if sharedCount(a.Metadata.Register, b.Metadata.Register) > 0 {
		return false
	}
	ga := s.glosses[a.Key()]
	gb := s.glosses[b.Key()]
	return sharedCount(ga.Tokens, gb.Tokens) == 0
}
