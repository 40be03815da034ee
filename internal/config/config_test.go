package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := config.LoadDefaults()
	assert.Equal(t, config.EngineDualIso, cfg.Match.Engine)
	assert.Equal(t, 1_000_000, cfg.Match.Limit)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
match:
  engine: dualsim
  timeout: 2s
  workers: 4
catalog:
  path: /tmp/x.db
`)
	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, config.EngineDualSim, cfg.Match.Engine)
	assert.Equal(t, 2*time.Second, cfg.Match.Timeout)
	assert.Equal(t, 4, cfg.Match.Workers)
	assert.Equal(t, 1_000_000, cfg.Match.Limit)
	assert.Equal(t, "/tmp/x.db", cfg.Catalog.Path)
}

func TestLoadFromFile_MissingAndEmpty(t *testing.T) {
	cfg, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.LoadDefaults(), cfg)

	cfg, err = config.LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, config.LoadDefaults(), cfg)

	cfg, err = config.LoadFromFile(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.LoadDefaults(), cfg)
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	_, err := config.LoadFromFile(writeFile(t, "match:\n  engin: dualiso\n"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LVMATCH_ENGINE", "graphsim")
	t.Setenv("LVMATCH_LIMIT", "25")
	t.Setenv("LVMATCH_TIMEOUT", "3")
	t.Setenv("LVMATCH_IGNORE_EDGE_LABELS", "yes")
	t.Setenv("LVMATCH_WORKERS", "not-a-number")
	t.Setenv("LVMATCH_CATALOG_TIMEOUT", "250ms")

	cfg := config.LoadDefaults()
	config.ApplyEnv(cfg)

	assert.Equal(t, config.EngineGraphSim, cfg.Match.Engine)
	assert.Equal(t, 25, cfg.Match.Limit)
	assert.Equal(t, 3*time.Second, cfg.Match.Timeout)
	assert.True(t, cfg.Match.IgnoreEdgeLabels)
	assert.Equal(t, 0, cfg.Match.Workers, "bad value ignored")
	assert.Equal(t, 250*time.Millisecond, cfg.Catalog.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "match:\n  limit: 10\n")
	t.Setenv("LVMATCH_LIMIT", "20")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Match.Limit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"engine", func(c *config.Config) { c.Match.Engine = "vf2" }},
		{"limit", func(c *config.Config) { c.Match.Limit = 0 }},
		{"timeout", func(c *config.Config) { c.Match.Timeout = -time.Second }},
		{"workers", func(c *config.Config) { c.Match.Workers = -1 }},
		{"catalog", func(c *config.Config) { c.Catalog.Path = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.LoadDefaults()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := config.LoadDefaults()
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"

	var buf bytes.Buffer
	log := cfg.Logger(&buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.WithField("engine", "dualiso").Warn("shown")
	assert.Contains(t, buf.String(), `"engine":"dualiso"`)
}
