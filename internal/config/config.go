// Package config defines the lexikit server configuration and loads it from
// a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	HTTPAddr        string        `yaml:"http_addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`

	// DefaultText is used by the comparison view when neither the query nor
	// the session provide any text.
	DefaultText string `yaml:"default_text" validate:"required"`

	// Stemmer selects the stemming algorithm: porter, snowball or porter2.
	Stemmer string `yaml:"stemmer" validate:"oneof=porter snowball porter2"`

	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	MCP     MCPConfig     `yaml:"mcp"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SessionConfig controls where the last submitted text is remembered.
type SessionConfig struct {
	Backend    string        `yaml:"backend" validate:"oneof=memory redis"`
	TTL        time.Duration `yaml:"ttl" validate:"gt=0"`
	CookieName string        `yaml:"cookie_name" validate:"required"`
	RedisURL   string        `yaml:"redis_url" validate:"required_if=Backend redis"`
	KeyPrefix  string        `yaml:"key_prefix"`
}

// LogConfig mirrors the two log sinks: a detailed file and a terse console.
type LogConfig struct {
	Level        string `yaml:"level" validate:"oneof=debug info warn error"`
	ConsoleLevel string `yaml:"console_level" validate:"oneof=debug info warn error"`
	File         string `yaml:"file"`
	Format       string `yaml:"format" validate:"oneof=text json"`
}

type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns a working configuration for local use.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:        ":5000",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		DefaultText:     "running runs studied",
		Stemmer:         "porter",
		Session: SessionConfig{
			Backend:    "memory",
			TTL:        24 * time.Hour,
			CookieName: "lexikit_session",
			KeyPrefix:  "lexikit:session:",
		},
		Log: LogConfig{
			Level:        "debug",
			ConsoleLevel: "info",
			File:         "app.log",
			Format:       "text",
		},
		MCP:     MCPConfig{Enabled: true},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads the YAML file at path on top of DefaultConfig. Environment
// variables in the file are expanded first. Unknown keys are an error.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	decoder := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
