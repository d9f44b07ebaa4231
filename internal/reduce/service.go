package reduce

import (
	"context"
	"log/slog"

	"github.com/okeanid/glossarion/internal/domain"
	"github.com/okeanid/glossarion/pkg/ctxutil"
)

// constantRegistry is the injected registry dependency. The concrete
// implementation lives in internal/registry; unit tests use an in-memory
// fake. Keeping the interface here keeps the pipeline free of any
// process-wide registry singleton.
type constantRegistry interface {
	// FindMatch returns the best existing constant for a bucket, or
	// ok=false when nothing scores at or above the match threshold.
	FindMatch(ctx context.Context, bucket domain.SenseBucket, language domain.Language) (domain.ConstantID, bool, error)
	// CreateProvisional mints a new provisional constant for a bucket.
	CreateProvisional(ctx context.Context, bucket domain.SenseBucket, language domain.Language) (domain.ConstantID, error)
}

// Service is the reduction orchestrator: it composes the normalizer,
// scorer, graph builder, bucketer and constant registry into one
// Reduce call.
type Service struct {
	log      *slog.Logger
	registry constantRegistry
}

// NewService creates the orchestrator. A nil registry is allowed and
// simply leaves every bucket without a semantic constant; the CLI uses
// that for registry-less runs.
func NewService(logger *slog.Logger, registry constantRegistry) *Service {
	return &Service{
		log:      logger.With("service", "reduce"),
		registry: registry,
	}
}

// Reduce runs the full pipeline for one lemma.
//
// Hard failures are limited to structurally invalid input: an unknown
// mode, an unknown language, or a nil witness list. An empty (non-nil)
// witness list is a valid request that yields an empty bucket list with
// no warnings. Everything else (malformed or duplicate witnesses, an
// unreachable registry) degrades to a best-effort result whose
// Warnings field records exactly what was lost.
func (s *Service) Reduce(
	ctx context.Context,
	lemma string,
	language domain.Language,
	wsus []domain.WitnessSenseUnit,
	mode domain.Mode,
) (*domain.ReducedSenseSet, error) {
	if !mode.IsValid() {
		return nil, &domain.InvalidModeError{Value: string(mode)}
	}
	if !language.IsValid() {
		return nil, domain.NewValidationError("language", "unknown language "+string(language))
	}
	if wsus == nil {
		return nil, domain.ErrNoWitnesses
	}

	result := &domain.ReducedSenseSet{
		Lemma:    lemma,
		Language: language,
		Mode:     mode,
		Buckets:  []domain.SenseBucket{},
	}

	if len(wsus) == 0 {
		return result, nil
	}

	kept, warnings := sanitizeWitnesses(wsus, language)
	result.Warnings = warnings
	for _, w := range warnings {
		s.log.WarnContext(ctx, "witness dropped",
			slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
			slog.String("lemma", lemma),
			slog.String("reason", w),
		)
	}
	if len(kept) == 0 {
		return result, nil
	}

	// Normalize each witness exactly once for the run.
	glosses := make(map[domain.WitnessKey]domain.NormalizedGloss, len(kept))
	for _, w := range kept {
		glosses[w.Key()] = NormalizeGloss(w.GlossRaw, language)
	}

	scorer := NewScorer(glosses)
	graph := BuildGraph(kept, scorer, mode)
	result.Buckets = Cluster(kept, graph, mode)

	s.assignConstants(ctx, result)

	s.log.InfoContext(ctx, "reduction complete",
		slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
		slog.String("lemma", lemma),
		slog.String("language", language.String()),
		slog.String("mode", mode.String()),
		slog.Int("witnesses", len(kept)),
		slog.Int("buckets", len(result.Buckets)),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

// assignConstants attaches a semantic constant to every bucket via
// match-then-create. A registry failure degrades the whole run: all
// buckets end up without constants and one warning is recorded, so a
// partially-pinned result is never returned.
func (s *Service) assignConstants(ctx context.Context, result *domain.ReducedSenseSet) {
	if s.registry == nil {
		return
	}

	for i := range result.Buckets {
		id, ok, err := s.registry.FindMatch(ctx, result.Buckets[i], result.Language)
		if err == nil && !ok {
			id, err = s.registry.CreateProvisional(ctx, result.Buckets[i], result.Language)
		}
		if err != nil {
			for j := range result.Buckets {
				result.Buckets[j].SemanticConstant = ""
			}
			result.Warnings = append(result.Warnings, "constant registry unavailable: buckets left unpinned")
			s.log.WarnContext(ctx, "constant registry unavailable, degrading",
				slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
				slog.String("lemma", result.Lemma),
				slog.String("error", err.Error()),
			)
			return
		}
		result.Buckets[i].SemanticConstant = id
	}
}
