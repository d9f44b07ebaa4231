// Package registry implements the semantic constant registry: the
// match-or-create store of long-lived, language-agnostic concept
// identifiers that sense buckets get pinned to.
package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okeanid/glossarion/internal/domain"
	"github.com/okeanid/glossarion/internal/reduce"
)

// ConstantStore is the persistence boundary. Implementations live under
// internal/adapter (postgres, sqlite); tests inject an in-memory fake.
type ConstantStore interface {
	// List returns all constants ordered by (created_at, constant_id)
	// ascending, which makes match tie-breaking deterministic.
	List(ctx context.Context) ([]domain.SemanticConstant, error)
	// Get returns a constant by its ConstantID, or domain.ErrNotFound.
	Get(ctx context.Context, id domain.ConstantID) (*domain.SemanticConstant, error)
	// Create inserts a new constant. A ConstantID collision yields
	// domain.ErrAlreadyExists, never an overwrite.
	Create(ctx context.Context, c *domain.SemanticConstant) error
	// MarkCurated flips a constant's status to CURATED and records the
	// time. Returns domain.ErrNotFound for unknown ids.
	MarkCurated(ctx context.Context, id domain.ConstantID, at time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultMatchThreshold is the Jaccard score a stored constant must reach
// against a bucket's gloss tokens to count as a match. It is independent
// of the clustering mode.
const DefaultMatchThreshold = 0.85

// Service implements FindMatch / CreateProvisional / Promote over an
// injected store. Constant creation is an atomic check-then-insert: the
// match re-runs inside the transaction and unique-id conflicts converge
// on the existing row, so concurrent identical buckets never mint
// duplicate provisional constants.
type Service struct {
	log            *slog.Logger
	store          ConstantStore
	tx             txManager
	matchThreshold float64
	now            func() time.Time
}

// NewService creates the registry service. threshold <= 0 selects
// DefaultMatchThreshold.
func NewService(logger *slog.Logger, store ConstantStore, tx txManager, threshold float64) *Service {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}
	return &Service{
		log:            logger.With("service", "registry"),
		store:          store,
		tx:             tx,
		matchThreshold: threshold,
		now:            time.Now,
	}
}

// FindMatch compares the bucket's display gloss token set against each
// stored constant's canonical label + description tokens using the same
// Jaccard signal the scorer uses. The highest score at or above the
// threshold wins; ties go to the earliest created constant (the store's
// list order).
func (s *Service) FindMatch(ctx context.Context, bucket domain.SenseBucket, language domain.Language) (domain.ConstantID, bool, error) {
	id, ok, err := s.findMatch(ctx, bucket, language)
	if err != nil {
		return "", false, fmt.Errorf("find match: %w", errors.Join(domain.ErrRegistryUnavailable, err))
	}
	return id, ok, nil
}

func (s *Service) findMatch(ctx context.Context, bucket domain.SenseBucket, language domain.Language) (domain.ConstantID, bool, error) {
	constants, err := s.store.List(ctx)
	if err != nil {
		return "", false, err
	}

	glossTokens := reduce.NormalizeGloss(bucket.DisplayGloss, language).Tokens

	var (
		bestID    domain.ConstantID
		bestScore float64
		found     bool
	)
	for _, c := range constants {
		ref := reduce.NormalizeGloss(c.CanonicalLabel+"; "+c.Description, language).Tokens
		score := reduce.Jaccard(glossTokens, ref)
		// Strictly-greater keeps the earliest created constant on ties.
		if score >= s.matchThreshold && score > bestScore {
			bestID = c.ConstantID
			bestScore = score
			found = true
		}
	}

	return bestID, found, nil
}

// CreateProvisional mints a provisional constant for a bucket. The whole
// match-then-derive-then-insert sequence runs in one transaction; an id
// conflict from a concurrent writer is resolved by re-matching, so the
// caller always gets a usable id.
func (s *Service) CreateProvisional(ctx context.Context, bucket domain.SenseBucket, language domain.Language) (domain.ConstantID, error) {
	var id domain.ConstantID

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// A concurrent run may have minted the same concept between the
		// caller's FindMatch and now.
		existing, ok, err := s.findMatch(txCtx, bucket, language)
		if err != nil {
			return err
		}
		if ok {
			id = existing
			return nil
		}

		candidate, err := s.freeID(txCtx, DeriveConstantID(bucket.DisplayGloss, language))
		if err != nil {
			return err
		}

		centroid := bucket.Centroid()
		c := &domain.SemanticConstant{
			ID:             uuid.New(),
			ConstantID:     candidate,
			CanonicalLabel: CanonicalLabel(bucket.DisplayGloss),
			Description:    bucket.DisplayGloss,
			Domains:        centroid.Metadata.Domains,
			Status:         domain.StatusProvisional,
			CreatedFrom:    witnessKeys(bucket),
			CreatedAt:      s.now().UTC(),
		}
		if err := s.store.Create(txCtx, c); err != nil {
			return err
		}
		id = candidate
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			// Lost a race on the unique id; the winner's row is the same
			// concept or at least claims our id. Re-match outside the tx.
			if existing, ok, err := s.findMatch(ctx, bucket, language); err == nil && ok {
				return existing, nil
			}
		}
		return "", fmt.Errorf("create provisional: %w", errors.Join(domain.ErrRegistryUnavailable, txErr))
	}

	s.log.InfoContext(ctx, "provisional constant minted",
		slog.String("constant_id", id.String()),
		slog.String("label", bucket.DisplayGloss),
	)

	return id, nil
}

// freeID returns base if unclaimed, otherwise the first free numeric
// suffix variant (BASE_2, BASE_3, ...).
func (s *Service) freeID(ctx context.Context, base domain.ConstantID) (domain.ConstantID, error) {
	candidate := base
	for suffix := 2; ; suffix++ {
		_, err := s.store.Get(ctx, candidate)
		if errors.Is(err, domain.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = domain.ConstantID(fmt.Sprintf("%s_%d", base, suffix))
	}
}

// Promote marks a constant as curated. The transition is one-way;
// promoting an already-curated constant is an idempotent success, not an
// error. Unknown ids return domain.ErrNotFound.
func (s *Service) Promote(ctx context.Context, id domain.ConstantID) error {
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.store.Get(txCtx, id)
		if err != nil {
			return err
		}
		if c.IsCurated() {
			return nil
		}
		return s.store.MarkCurated(txCtx, id, s.now().UTC())
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrNotFound) {
			return txErr
		}
		return fmt.Errorf("promote %s: %w", id, errors.Join(domain.ErrRegistryUnavailable, txErr))
	}
	return nil
}

func witnessKeys(bucket domain.SenseBucket) []domain.WitnessKey {
	keys := make([]domain.WitnessKey, 0, len(bucket.Witnesses))
	for _, w := range bucket.Witnesses {
		keys = append(keys, w.Key())
	}
	return keys
}
