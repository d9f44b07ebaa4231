package config

import "time"

// Config is the root application configuration.
type Config struct {
	Registry  RegistryConfig  `yaml:"registry"`
	Reduction ReductionConfig `yaml:"reduction"`
	Log       LogConfig       `yaml:"log"`
}

// RegistryConfig holds semantic constant registry settings. Driver
// selects the backing store: "postgres" for a shared deployment,
// "sqlite" for a local single-file registry, "none" to run without a
// registry (buckets stay unpinned).
type RegistryConfig struct {
	Driver         string  `yaml:"driver"          env:"REGISTRY_DRIVER"          env-default:"sqlite"`
	SQLitePath     string  `yaml:"sqlite_path"     env:"REGISTRY_SQLITE_PATH"     env-default:"glossarion.db"`
	MatchThreshold float64 `yaml:"match_threshold" env:"REGISTRY_MATCH_THRESHOLD" env-default:"0.85"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection settings, used when the
// registry driver is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ReductionConfig holds reduction pipeline settings.
type ReductionConfig struct {
	DefaultMode  string `yaml:"default_mode"  env:"REDUCTION_DEFAULT_MODE"  env-default:"open"`
	BatchWorkers int    `yaml:"batch_workers" env:"REDUCTION_BATCH_WORKERS" env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
