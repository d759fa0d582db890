package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/notifier/internal/errors"
	"github.com/vango-dev/notifier/pkg/style"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "notifier.json"

	// YAMLConfigFileName is looked up when notifier.json is absent.
	YAMLConfigFileName = "notifier.yaml"

	// EnvPrefix prefixes environment overrides, as in NOTIFIER_POSITION.
	EnvPrefix = "NOTIFIER_"

	// DefaultPosition is bottom-right.
	DefaultPosition = 9

	// DefaultTickMs is the duration bar refresh period.
	DefaultTickMs = 15

	// DefaultLogLevel is used when logLevel is empty.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "notifier"
)

// Config represents the complete notifier.json configuration.
type Config struct {
	// Position is the default anchor, 1-9.
	Position int `json:"position,omitempty" yaml:"position,omitempty" env:"POSITION"`

	// DurationMs auto-dismisses notifications after this many
	// milliseconds. Zero keeps them until closed.
	DurationMs int `json:"durationMs,omitempty" yaml:"durationMs,omitempty" env:"DURATION_MS"`

	// ShowDurationBar shows a bar on timed notifications.
	ShowDurationBar bool `json:"showDurationBar,omitempty" yaml:"showDurationBar,omitempty" env:"SHOW_DURATION_BAR"`

	// TickMs is the duration bar refresh period.
	TickMs int `json:"tickMs,omitempty" yaml:"tickMs,omitempty" env:"TICK_MS"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty" env:"LOG_LEVEL"`

	// Metrics contains metrics configuration.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty" envPrefix:"METRICS_"`

	// Kinds maps custom kind names to their theme. Kinds can only be set
	// from a file.
	Kinds map[string]ThemeConfig `json:"kinds,omitempty" yaml:"kinds,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty" env:"NAMESPACE"`
}

// ThemeConfig is the palette of one custom kind.
type ThemeConfig struct {
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
}

// Theme converts the config entry to a style.Theme.
func (t ThemeConfig) Theme() style.Theme {
	return style.Theme{Accent: t.Accent, Background: t.Background}
}

// New returns a configuration with defaults applied.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Position < 1 || c.Position > 9 {
		c.Position = DefaultPosition
	}
	if c.TickMs == 0 {
		c.TickMs = DefaultTickMs
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// FromEnv returns the defaults with NOTIFIER_* environment overrides
// applied.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	return cfg, cfg.finish()
}

// Load reads notifier.json from dir, falling back to notifier.yaml.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		alt := filepath.Join(dir, YAMLConfigFileName)
		if _, err := os.Stat(alt); err == nil {
			path = alt
		}
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path. Files ending
// in .yaml or .yml are parsed as YAML, everything else as JSON.
// Environment overrides take precedence over the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("N010").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create the file or omit --config to use defaults")
		}
		return nil, errors.New("N011").Wrap(err)
	}

	cfg := &Config{}
	format, unmarshal := "JSON", json.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format, unmarshal = "YAML", yaml.Unmarshal
	}
	if err := unmarshal(data, cfg); err != nil {
		return nil, errors.New("N011").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid " + format)
	}

	cfg.configPath = path
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish applies environment overrides and defaults, then validates.
func (c *Config) finish() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.New("N012").
			WithDetail("environment override: " + err.Error()).
			Wrap(err)
	}
	c.applyDefaults()
	return c.Validate()
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.DurationMs < 0 {
		return invalid("durationMs must not be negative, got %d", c.DurationMs)
	}
	if c.TickMs < 0 {
		return invalid("tickMs must not be negative, got %d", c.TickMs)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return invalid("unknown logLevel %q", c.LogLevel)
	}

	names := make([]string, 0, len(c.Kinds))
	for name := range c.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !style.ValidClassSuffix(name) {
			return invalid("kind %q is not a valid class suffix", name)
		}
		if err := c.Kinds[name].Theme().Validate(); err != nil {
			return errors.New("N012").
				WithDetail(fmt.Sprintf("kind %q: %s", name, err.Error())).
				Wrap(err)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New("N012").WithDetail(fmt.Sprintf(format, args...))
}

// Duration returns DurationMs as a time.Duration.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// Tick returns TickMs as a time.Duration.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
