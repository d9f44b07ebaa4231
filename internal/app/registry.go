package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/okeanid/glossarion/internal/adapter/postgres"
	pgconstant "github.com/okeanid/glossarion/internal/adapter/postgres/constant"
	"github.com/okeanid/glossarion/internal/adapter/sqlite"
	liteconstant "github.com/okeanid/glossarion/internal/adapter/sqlite/constant"
	"github.com/okeanid/glossarion/internal/config"
	"github.com/okeanid/glossarion/internal/registry"
)

// OpenRegistry wires a registry.Service to the store selected by the
// config driver. Driver "none" returns a nil service: reduction then
// runs with buckets left unpinned. The returned close func releases the
// underlying connection and is safe to call when the service is nil.
func OpenRegistry(ctx context.Context, log *slog.Logger, cfg config.RegistryConfig) (*registry.Service, func(), error) {
	switch cfg.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open registry: %w", err)
		}
		svc := registry.NewService(log, pgconstant.New(pool), postgres.NewTxManager(pool), cfg.MatchThreshold)
		return svc, pool.Close, nil

	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open registry: %w", err)
		}
		svc := registry.NewService(log, liteconstant.New(db), sqlite.NewTxManager(db), cfg.MatchThreshold)
		return svc, func() { _ = db.Close() }, nil

	case "none":
		return nil, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("open registry: unknown driver %q", cfg.Driver)
	}
}
