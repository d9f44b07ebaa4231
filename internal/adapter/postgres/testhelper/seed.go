package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okeanid/glossarion/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedConstant inserts a provisional semantic constant with a unique id and
// one origin witness. Returns the stored domain.SemanticConstant.
func SeedConstant(t *testing.T, pool *pgxpool.Pool) domain.SemanticConstant {
	t.Helper()

	suffix := uniqueSuffix()
	return SeedConstantWith(t, pool, domain.SemanticConstant{
		ConstantID:     domain.ConstantID("TEST_" + suffix),
		CanonicalLabel: "test label " + suffix,
		Description:    "test label " + suffix + "; seeded constant",
		Domains:        []string{"test"},
		Status:         domain.StatusProvisional,
		CreatedFrom: []domain.WitnessKey{
			{Source: domain.SourceMW, SenseRef: "seed." + suffix},
		},
	})
}

// SeedConstantWith inserts the given constant, filling ID and CreatedAt when
// zero. Returns the stored row.
func SeedConstantWith(t *testing.T, pool *pgxpool.Pool, c domain.SemanticConstant) domain.SemanticConstant {
	t.Helper()
	ctx := context.Background()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if c.Status == "" {
		c.Status = domain.StatusProvisional
	}

	type originRow struct {
		Source   string `json:"source"`
		SenseRef string `json:"sense_ref"`
	}
	origins := make([]originRow, 0, len(c.CreatedFrom))
	for _, k := range c.CreatedFrom {
		origins = append(origins, originRow{Source: string(k.Source), SenseRef: k.SenseRef})
	}
	createdFrom, err := json.Marshal(origins)
	if err != nil {
		t.Fatalf("testhelper: SeedConstantWith marshal created_from: %v", err)
	}

	domains := c.Domains
	if domains == nil {
		domains = []string{}
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO semantic_constants
		     (id, constant_id, canonical_label, description, domains, status, created_from, created_at, curated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, string(c.ConstantID), c.CanonicalLabel, c.Description,
		domains, string(c.Status), createdFrom, c.CreatedAt, c.CuratedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConstantWith insert semantic_constant: %v", err)
	}

	return c
}
