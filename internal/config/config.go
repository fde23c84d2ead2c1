// Package config loads Sprout's runtime settings.
//
// Precedence, lowest to highest: defaults, optional YAML file, SPROUT_*
// environment variables, command-line flags (applied by cmd).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, e.g. SPROUT_LOG_LEVEL.
const EnvPrefix = "SPROUT_"

// EnvConfigFile names the env var holding the config file path.
const EnvConfigFile = EnvPrefix + "CONFIG"

var validLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Config holds all runtime settings.
type Config struct {
	// Checklist is an optional path to a JSON catalog file. Empty means the
	// built-in checklist.
	Checklist string `koanf:"checklist"`

	// LogFile receives structured logs. Empty disables logging, since the
	// terminal UI owns stdout.
	LogFile string `koanf:"log_file"`

	// LogLevel is one of trace, debug, info, warn, error, disabled.
	LogLevel string `koanf:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// Load layers defaults, the YAML file at path (or $SPROUT_CONFIG when path is
// empty) and SPROUT_* env vars. It does not validate; callers apply their
// own overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// SPROUT_LOG_FILE -> log_file
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that have a closed set of values.
func (c Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	for _, l := range validLevels {
		if l == level {
			return nil
		}
	}
	return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(validLevels, ", "), c.LogLevel)
}
