// Package constant implements the semantic constant store on PostgreSQL.
// Reads use raw SQL; the one variable-shape query (filtered listing for
// registry inspection) is built with squirrel.
package constant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okeanid/glossarion/internal/adapter/postgres"
	"github.com/okeanid/glossarion/internal/domain"
)

// Repo provides semantic constant persistence backed by PostgreSQL.
// All methods honor a transaction carried in the context by the
// TxManager, which is how the registry's check-then-insert stays atomic.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new constant repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `
SELECT id, constant_id, canonical_label, description, domains, status,
       created_from, created_at, curated_at
FROM semantic_constants
ORDER BY created_at, constant_id`

const getSQL = `
SELECT id, constant_id, canonical_label, description, domains, status,
       created_from, created_at, curated_at
FROM semantic_constants
WHERE constant_id = $1`

const insertSQL = `
INSERT INTO semantic_constants
    (id, constant_id, canonical_label, description, domains, status,
     created_from, created_at, curated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const markCuratedSQL = `
UPDATE semantic_constants
SET status = 'CURATED', curated_at = $2
WHERE constant_id = $1`

// List returns every constant ordered by (created_at, constant_id), the
// order the registry's match tie-break relies on.
func (r *Repo) List(ctx context.Context) ([]domain.SemanticConstant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list constants: %w", err)
	}
	defer rows.Close()

	constants, err := scanConstants(rows)
	if err != nil {
		return nil, fmt.Errorf("list constants: %w", err)
	}
	return constants, nil
}

// Filter narrows the listing for registry inspection tooling.
type Filter struct {
	Status domain.ConstantStatus
	Domain string
	Limit  int
}

// ListFiltered returns constants matching the filter, in match tie-break
// order. Zero-valued filter fields are ignored.
func (r *Repo) ListFiltered(ctx context.Context, f Filter) ([]domain.SemanticConstant, error) {
	builder := sq.Select(
		"id", "constant_id", "canonical_label", "description", "domains",
		"status", "created_from", "created_at", "curated_at",
	).
		From("semantic_constants").
		OrderBy("created_at", "constant_id").
		PlaceholderFormat(sq.Dollar)

	if f.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.Domain != "" {
		builder = builder.Where("? = ANY(domains)", f.Domain)
	}
	if f.Limit > 0 {
		builder = builder.Limit(uint64(f.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build filtered list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list constants filtered: %w", err)
	}
	defer rows.Close()

	constants, err := scanConstants(rows)
	if err != nil {
		return nil, fmt.Errorf("list constants filtered: %w", err)
	}
	return constants, nil
}

// Get returns one constant by its ConstantID.
func (r *Repo) Get(ctx context.Context, id domain.ConstantID) (*domain.SemanticConstant, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, string(id))
	c, err := scanConstantRow(row)
	if err != nil {
		return nil, postgres.MapError(err, "constant", string(id))
	}
	return c, nil
}

// Create inserts a new constant. A duplicate constant_id maps to
// domain.ErrAlreadyExists via the unique index, never an overwrite.
func (r *Repo) Create(ctx context.Context, c *domain.SemanticConstant) error {
	createdFrom, err := marshalOrigins(c.CreatedFrom)
	if err != nil {
		return fmt.Errorf("create constant %s: %w", c.ConstantID, err)
	}

	domains := c.Domains
	if domains == nil {
		domains = []string{}
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	_, err = querier.Exec(ctx, insertSQL,
		c.ID, string(c.ConstantID), c.CanonicalLabel, c.Description,
		domains, string(c.Status), createdFrom, c.CreatedAt, c.CuratedAt,
	)
	if err != nil {
		return postgres.MapError(err, "constant", string(c.ConstantID))
	}
	return nil
}

// MarkCurated flips the status to CURATED. Unknown ids yield
// domain.ErrNotFound.
func (r *Repo) MarkCurated(ctx context.Context, id domain.ConstantID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, markCuratedSQL, string(id), at)
	if err != nil {
		return postgres.MapError(err, "constant", string(id))
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "constant", string(id))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// originRow is the persisted shape of one created_from entry.
type originRow struct {
	Source   string `json:"source"`
	SenseRef string `json:"sense_ref"`
}

func marshalOrigins(keys []domain.WitnessKey) ([]byte, error) {
	rows := make([]originRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, originRow{Source: string(k.Source), SenseRef: k.SenseRef})
	}
	return json.Marshal(rows)
}

func unmarshalOrigins(raw []byte) ([]domain.WitnessKey, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []originRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	keys := make([]domain.WitnessKey, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, domain.WitnessKey{Source: domain.Source(r.Source), SenseRef: r.SenseRef})
	}
	return keys, nil
}

func scanConstantRow(row pgx.Row) (*domain.SemanticConstant, error) {
	var (
		c           domain.SemanticConstant
		constantID  string
		status      string
		createdFrom []byte
	)
	err := row.Scan(
		&c.ID, &constantID, &c.CanonicalLabel, &c.Description, &c.Domains,
		&status, &createdFrom, &c.CreatedAt, &c.CuratedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ConstantID = domain.ConstantID(constantID)
	c.Status = domain.ConstantStatus(status)
	c.CreatedFrom, err = unmarshalOrigins(createdFrom)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanConstants(rows pgx.Rows) ([]domain.SemanticConstant, error) {
	var out []domain.SemanticConstant
	for rows.Next() {
		c, err := scanConstantRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
