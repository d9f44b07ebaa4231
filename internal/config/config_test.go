package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okeanid/glossarion/internal/domain"
)

func validConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			Driver:         "sqlite",
			SQLitePath:     "glossarion.db",
			MatchThreshold: 0.85,
		},
		Reduction: ReductionConfig{
			DefaultMode:  "open",
			BatchWorkers: 4,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Drivers(t *testing.T) {
	cfg := validConfig()
	cfg.Registry.Driver = "none"
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Registry.Driver = "postgres"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dsn")

	cfg.Registry.Database.DSN = "postgres://localhost/glossarion"
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Registry.Driver = "sqlite"
	cfg.Registry.SQLitePath = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Registry.Driver = "mysql"
	assert.Error(t, cfg.Validate())
}

func TestValidate_MatchThreshold(t *testing.T) {
	for _, bad := range []float64{0, -0.1, 1.01} {
		cfg := validConfig()
		cfg.Registry.MatchThreshold = bad
		assert.Error(t, cfg.Validate(), "threshold %v", bad)
	}

	cfg := validConfig()
	cfg.Registry.MatchThreshold = 1
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Reduction(t *testing.T) {
	cfg := validConfig()
	cfg.Reduction.DefaultMode = "credulous"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Reduction.BatchWorkers = 0
	assert.Error(t, cfg.Validate())
}

func TestReductionConfigMode(t *testing.T) {
	cfg := ReductionConfig{DefaultMode: "skeptic"}
	assert.Equal(t, domain.ModeSkeptic, cfg.Mode())

	cfg = ReductionConfig{DefaultMode: "open"}
	assert.Equal(t, domain.ModeOpen, cfg.Mode())
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glossarion.yaml")
	yaml := `
registry:
  driver: sqlite
  sqlite_path: /tmp/test.db
  match_threshold: 0.9
reduction:
  default_mode: skeptic
  batch_workers: 8
log:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Registry.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Registry.SQLitePath)
	assert.Equal(t, 0.9, cfg.Registry.MatchThreshold)
	assert.Equal(t, "skeptic", cfg.Reduction.DefaultMode)
	assert.Equal(t, 8, cfg.Reduction.BatchWorkers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glossarion.yaml")
	yaml := `
registry:
  driver: sqlite
  sqlite_path: /tmp/test.db
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("REGISTRY_DRIVER", "none")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Registry.Driver)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Registry.Driver)
	assert.Equal(t, "glossarion.db", cfg.Registry.SQLitePath)
	assert.Equal(t, 0.85, cfg.Registry.MatchThreshold)
	assert.Equal(t, "open", cfg.Reduction.DefaultMode)
	assert.Equal(t, 4, cfg.Reduction.BatchWorkers)
}
