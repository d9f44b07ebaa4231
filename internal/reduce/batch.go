package reduce

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/okeanid/glossarion/internal/domain"
	"github.com/okeanid/glossarion/pkg/ctxutil"
)

// BatchRequest is one lemma's worth of adapter output.
type BatchRequest struct {
	Lemma    string
	Language domain.Language
	WSUs     []domain.WitnessSenseUnit
}

// BatchResult pairs a request with its outcome. Exactly one of Set and
// Err is non-nil.
type BatchResult struct {
	Lemma string
	Set   *domain.ReducedSenseSet
	Err   error
}

// ReduceBatch reduces independent lemmas concurrently. Runs share no
// mutable state besides the registry, which enforces its own
// single-writer discipline, so they parallelize freely; workers bounds
// the concurrency (values < 1 mean one worker).
//
// One lemma's hard failure does not abort the rest: failures are
// recorded per result. Results come back in request order regardless of
// completion order, keeping batch output deterministic.
func (s *Service) ReduceBatch(ctx context.Context, requests []BatchRequest, mode domain.Mode, workers int) []BatchResult {
	if workers < 1 {
		workers = 1
	}

	results := make([]BatchResult, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range requests {
		g.Go(func() error {
			runCtx := ctxutil.WithNewRunID(gctx)
			set, err := s.Reduce(runCtx, req.Lemma, req.Language, req.WSUs, mode)
			results[i] = BatchResult{Lemma: req.Lemma, Set: set, Err: err}
			// Per-lemma errors stay in the result slice; returning them
			// would cancel sibling runs.
			return nil
		})
	}

	_ = g.Wait()

	return results
}
