// Package config handles lvmatch configuration via a YAML file and
// environment variables.
//
// Precedence (highest to lowest):
//  1. Command-line flags (--limit, --engine, ...), applied by cmd/lvmatch
//  2. Environment variables (LVMATCH_*)
//  3. Config file (lvmatch.yaml)
//  4. Built-in defaults
//
// Environment variables:
//   - LVMATCH_LOG_LEVEL="info"
//   - LVMATCH_LOG_FORMAT="text" or "json"
//   - LVMATCH_ENGINE="dualiso"
//   - LVMATCH_LIMIT=1000000
//   - LVMATCH_TIMEOUT="30s" (or plain seconds)
//   - LVMATCH_IGNORE_EDGE_LABELS=false
//   - LVMATCH_WORKERS=0
//   - LVMATCH_CATALOG="./lvmatch.db"
//   - LVMATCH_CATALOG_TIMEOUT="5s"
//   - LVMATCH_METRICS_FILE=""
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Engines accepted by Match.Engine.
const (
	EngineGraphSim = "graphsim"
	EngineDualSim  = "dualsim"
	EngineDualIso  = "dualiso"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "lvmatch.yaml"

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full lvmatch configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Match   MatchConfig   `yaml:"match"`
	Catalog CatalogConfig `yaml:"catalog"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MatchConfig holds engine defaults for the match command.
type MatchConfig struct {
	Engine           string        `yaml:"engine"`
	Limit            int           `yaml:"limit"`
	Timeout          time.Duration `yaml:"timeout"`
	IgnoreEdgeLabels bool          `yaml:"ignore_edge_labels"`
	Workers          int           `yaml:"workers"`
}

// CatalogConfig locates the on-disk graph catalog.
type CatalogConfig struct {
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"`
}

// MetricsConfig controls the prometheus textfile dump. An empty File disables it.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// LoadDefaults returns the built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "text"},
		Match:   MatchConfig{Engine: EngineDualIso, Limit: 1_000_000},
		Catalog: CatalogConfig{Path: "./lvmatch.db", Timeout: 5 * time.Second},
	}
}

// LoadFromFile starts from the defaults and overlays the YAML file at path.
// An empty path or a missing file yields the defaults. Unknown keys are errors.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Load is LoadFromFile, then ApplyEnv, then Validate.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overlays LVMATCH_* variables. Unparsable values are ignored.
func ApplyEnv(cfg *Config) {
	cfg.Log.Level = getEnv("LVMATCH_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LVMATCH_LOG_FORMAT", cfg.Log.Format)

	cfg.Match.Engine = getEnv("LVMATCH_ENGINE", cfg.Match.Engine)
	cfg.Match.Limit = getEnvInt("LVMATCH_LIMIT", cfg.Match.Limit)
	cfg.Match.Timeout = getEnvDuration("LVMATCH_TIMEOUT", cfg.Match.Timeout)
	cfg.Match.IgnoreEdgeLabels = getEnvBool("LVMATCH_IGNORE_EDGE_LABELS", cfg.Match.IgnoreEdgeLabels)
	cfg.Match.Workers = getEnvInt("LVMATCH_WORKERS", cfg.Match.Workers)

	cfg.Catalog.Path = getEnv("LVMATCH_CATALOG", cfg.Catalog.Path)
	cfg.Catalog.Timeout = getEnvDuration("LVMATCH_CATALOG_TIMEOUT", cfg.Catalog.Timeout)

	cfg.Metrics.File = getEnv("LVMATCH_METRICS_FILE", cfg.Metrics.File)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Match.Engine {
	case EngineGraphSim, EngineDualSim, EngineDualIso:
	default:
		return fmt.Errorf("%w: engine %q", ErrInvalidConfig, c.Match.Engine)
	}
	if c.Match.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Match.Limit)
	}
	if c.Match.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidConfig, c.Match.Timeout)
	}
	if c.Match.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", ErrInvalidConfig, c.Match.Workers)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("%w: empty catalog path", ErrInvalidConfig)
	}

	return nil
}

// Logger builds a logrus logger writing to out with the configured level and
// formatter. Call Validate first; an unknown level falls back to info.
func (c *Config) Logger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	if c.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}
