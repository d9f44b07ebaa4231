package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConstantID is the stable, human-readable UPPER_SNAKE_CASE identifier of
// a semantic constant (e.g. "AUSPICIOUS", "SIVA_DEITY").
type ConstantID string

func (id ConstantID) String() string { return string(id) }

// SemanticConstant is a long-lived, language-agnostic concept identifier
// shared across lemmas and languages. Constants are owned by the registry;
// their lifetime spans the deployment, unlike run-scoped witnesses and
// buckets.
type SemanticConstant struct {
	ID             uuid.UUID
	ConstantID     ConstantID
	CanonicalLabel string
	Description    string
	Domains        []string
	Status         ConstantStatus
	// CreatedFrom records the witness references that originated the
	// constant, for traceability back to the evidence.
	CreatedFrom []WitnessKey
	CreatedAt   time.Time
	// CuratedAt is set exactly once, when the constant is promoted.
	CuratedAt *time.Time
}

// IsCurated reports whether the constant has been through human curation.
func (c *SemanticConstant) IsCurated() bool {
	return c.Status == StatusCurated
}
