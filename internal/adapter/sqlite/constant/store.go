// Package constant implements the semantic constant store on SQLite,
// for single-machine use of the reduction tools without a PostgreSQL
// instance. Domains and origin witnesses are stored as JSON text.
package constant

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/okeanid/glossarion/internal/adapter/sqlite"
	"github.com/okeanid/glossarion/internal/domain"
)

// Store provides semantic constant persistence backed by SQLite. All
// methods honor a transaction carried in the context by the TxManager.
type Store struct {
	db *sql.DB
}

// New creates a new constant store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
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
WHERE constant_id = ?`

const insertSQL = `
INSERT INTO semantic_constants
    (id, constant_id, canonical_label, description, domains, status,
     created_from, created_at, curated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

const markCuratedSQL = `
UPDATE semantic_constants
SET status = 'CURATED', curated_at = ?
WHERE constant_id = ?`

// List returns every constant ordered by (created_at, constant_id).
func (s *Store) List(ctx context.Context) ([]domain.SemanticConstant, error) {
	querier := sqlite.QuerierFromCtx(ctx, s.db)

	rows, err := querier.QueryContext(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list constants: %w", err)
	}
	defer rows.Close()

	var out []domain.SemanticConstant
	for rows.Next() {
		c, err := scanConstant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list constants: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list constants: %w", err)
	}
	return out, nil
}

// Get returns one constant by its ConstantID, or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, id domain.ConstantID) (*domain.SemanticConstant, error) {
	querier := sqlite.QuerierFromCtx(ctx, s.db)

	row := querier.QueryRowContext(ctx, getSQL, string(id))
	c, err := scanConstant(row.Scan)
	if err != nil {
		return nil, mapError(err, string(id))
	}
	return c, nil
}

// Create inserts a new constant. A duplicate constant_id maps to
// domain.ErrAlreadyExists via the unique index.
func (s *Store) Create(ctx context.Context, c *domain.SemanticConstant) error {
	domains, err := json.Marshal(emptyIfNil(c.Domains))
	if err != nil {
		return fmt.Errorf("create constant %s: %w", c.ConstantID, err)
	}
	createdFrom, err := marshalOrigins(c.CreatedFrom)
	if err != nil {
		return fmt.Errorf("create constant %s: %w", c.ConstantID, err)
	}

	querier := sqlite.QuerierFromCtx(ctx, s.db)
	_, err = querier.ExecContext(ctx, insertSQL,
		c.ID.String(), string(c.ConstantID), c.CanonicalLabel, c.Description,
		string(domains), string(c.Status), string(createdFrom),
		c.CreatedAt, nullableTime(c.CuratedAt),
	)
	if err != nil {
		return mapError(err, string(c.ConstantID))
	}
	return nil
}

// MarkCurated flips the status to CURATED. Unknown ids yield
// domain.ErrNotFound.
func (s *Store) MarkCurated(ctx context.Context, id domain.ConstantID, at time.Time) error {
	querier := sqlite.QuerierFromCtx(ctx, s.db)

	res, err := querier.ExecContext(ctx, markCuratedSQL, at, string(id))
	if err != nil {
		return mapError(err, string(id))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark curated %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("constant %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// mapError translates driver errors into domain sentinels.
func mapError(err error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("constant %s: %w", id, domain.ErrNotFound)
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("constant %s: %w", id, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("constant %s: %w", id, err)
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

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

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func scanConstant(scan func(dest ...any) error) (*domain.SemanticConstant, error) {
	var (
		c           domain.SemanticConstant
		rawID       string
		constantID  string
		domainsJSON string
		status      string
		createdFrom string
		curatedAt   sql.NullTime
	)
	err := scan(
		&rawID, &constantID, &c.CanonicalLabel, &c.Description, &domainsJSON,
		&status, &createdFrom, &c.CreatedAt, &curatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse constant uuid %q: %w", rawID, err)
	}
	c.ConstantID = domain.ConstantID(constantID)
	c.Status = domain.ConstantStatus(status)
	if curatedAt.Valid {
		t := curatedAt.Time
		c.CuratedAt = &t
	}

	if err := json.Unmarshal([]byte(domainsJSON), &c.Domains); err != nil {
		return nil, fmt.Errorf("parse constant domains: %w", err)
	}
	var origins []originRow
	if err := json.Unmarshal([]byte(createdFrom), &origins); err != nil {
		return nil, fmt.Errorf("parse constant origins: %w", err)
	}
	for _, o := range origins {
		c.CreatedFrom = append(c.CreatedFrom, domain.WitnessKey{
			Source:   domain.Source(o.Source),
			SenseRef: o.SenseRef,
		})
	}

	return &c, nil
}
