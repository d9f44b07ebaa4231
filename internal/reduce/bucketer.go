package reduce

import (
	"fmt"
	"sort"

	"github.com/okeanid/glossarion/internal/domain"
)

// Cluster groups witnesses into sense buckets by deterministic greedy
// agglomeration over the similarity graph.
//
// Witnesses are first sorted by (source priority rank, sense_ref); that
// ordering is the single source of all tie-breaking and never depends on
// map iteration order. Each unassigned witness in turn seeds a bucket,
// which then absorbs, rescanning until a full pass adds nothing, every
// remaining witness whose similarity to ANY current member meets the
// mode threshold. The closure is transitive within a bucket: A–B and
// B–C edges pull C in even when A–C scores low.
//
// Once a witness joins a bucket it is never re-assigned. That makes the
// result deterministic and cheap but not globally optimal clustering;
// the trade-off is deliberate. A witness with no qualifying neighbor
// becomes its own singleton bucket, which is an expected outcome, not
// an error.
func Cluster(wsus []domain.WitnessSenseUnit, graph *SimilarityGraph, mode domain.Mode) []domain.SenseBucket {
	threshold := paramsFor(mode).Threshold

	ordered := make([]domain.WitnessSenseUnit, len(wsus))
	copy(ordered, wsus)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := domain.SourcePriority(ordered[i].Source), domain.SourcePriority(ordered[j].Source)
		if pi != pj {
			return pi < pj
		}
		return ordered[i].SenseRef < ordered[j].SenseRef
	})

	assigned := make(map[domain.WitnessKey]bool, len(ordered))
	var buckets []domain.SenseBucket

	for _, seed := range ordered {
		if assigned[seed.Key()] {
			continue
		}
		members := []domain.WitnessSenseUnit{seed}
		assigned[seed.Key()] = true

		for {
			added := false
			for _, cand := range ordered {
				if assigned[cand.Key()] {
					continue
				}
				if qualifies(graph, cand, members, threshold) {
					members = append(members, cand)
					assigned[cand.Key()] = true
					added = true
				}
			}
			if !added {
				break
			}
		}

		buckets = append(buckets, domain.SenseBucket{
			Witnesses:    members,
			DisplayGloss: members[0].GlossRaw,
			Confidence:   meanPairwise(graph, members),
		})
	}

	rankBuckets(buckets)

	for i := range buckets {
		buckets[i].SenseID = fmt.Sprintf("B%d", i+1)
	}

	return buckets
}

// qualifies reports whether the candidate's similarity to any current
// bucket member meets the threshold.
func qualifies(graph *SimilarityGraph, cand domain.WitnessSenseUnit, members []domain.WitnessSenseUnit, threshold float64) bool {
	for _, m := range members {
		if graph.Score(cand.Key(), m.Key()) >= threshold {
			return true
		}
	}
	return false
}

// meanPairwise is the bucket confidence: the mean similarity over all
// member pairs, 1.0 for singletons.
func meanPairwise(graph *SimilarityGraph, members []domain.WitnessSenseUnit) float64 {
	n := len(members)
	if n < 2 {
		return 1.0
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += graph.Score(members[i].Key(), members[j].Key())
		}
	}
	return sum / float64(n*(n-1)/2)
}

// rankBuckets orders buckets by descending witness count, then presence
// of a primary-source witness, then by the clustering order of their
// seeds. Buckets were appended in seed order, so a stable sort preserves
// that order as the final tie-break.
func rankBuckets(buckets []domain.SenseBucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if len(buckets[i].Witnesses) != len(buckets[j].Witnesses) {
			return len(buckets[i].Witnesses) > len(buckets[j].Witnesses)
		}
		pi, pj := buckets[i].HasPrimaryWitness(), buckets[j].HasPrimaryWitness()
		if pi != pj {
			return pi
		}
		return false
	})
}
