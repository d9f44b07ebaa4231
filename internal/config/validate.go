package config

import (
	"fmt"

	"github.com/okeanid/glossarion/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Registry.Driver {
	case "postgres":
		if c.Registry.Database.DSN == "" {
			return fmt.Errorf("registry.database.dsn is required for the postgres driver")
		}
	case "sqlite":
		if c.Registry.SQLitePath == "" {
			return fmt.Errorf("registry.sqlite_path is required for the sqlite driver")
		}
	case "none":
	default:
		return fmt.Errorf("registry.driver must be postgres, sqlite or none (got %q)", c.Registry.Driver)
	}

	if t := c.Registry.MatchThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("registry.match_threshold must be in (0, 1] (got %v)", t)
	}

	if _, err := domain.ParseMode(c.Reduction.DefaultMode); err != nil {
		return fmt.Errorf("reduction.default_mode: %w", err)
	}

	if c.Reduction.BatchWorkers < 1 {
		return fmt.Errorf("reduction.batch_workers must be >= 1 (got %d)", c.Reduction.BatchWorkers)
	}

	return nil
}

// Mode returns the parsed default reduction mode. Validate must have
// succeeded first.
func (c *ReductionConfig) Mode() domain.Mode {
	mode, err := domain.ParseMode(c.DefaultMode)
	if err != nil {
		return domain.ModeOpen
	}
	return mode
}
