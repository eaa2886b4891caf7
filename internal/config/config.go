// Package config handles loading and saving user configuration for blend.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/blend/internal/orthography"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Database   string              `yaml:"database"`
	Dictionary DictionaryConfig    `yaml:"dictionary"`
	Spellings  map[string][]string `yaml:"spellings,omitempty"` // Extra spellings per phoneme
	Server     ServerConfig        `yaml:"server"`
	Log        LogConfig           `yaml:"log"`
}

// DictionaryConfig points at the files "blend import" loads.
type DictionaryConfig struct {
	Pronunciations string `yaml:"pronunciations"` // CMU dictionary, plain or .xz
	Phones         string `yaml:"phones"`         // Phone set, code<TAB>manner
}

// ServerConfig holds settings for "blend serve".
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, auto
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = "."
	}
	return &Config{
		Database: filepath.Join(dir, "blend.db"),
		Dictionary: DictionaryConfig{
			Pronunciations: filepath.Join(dir, "cmudict.dict"),
			Phones:         filepath.Join(dir, "cmudict.phones"),
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Log:    LogConfig{Level: "info", Format: "auto"},
	}
}

// Load reads a configuration file. Fields missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "auto":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Database == "" {
		return fmt.Errorf("database path is empty")
	}
	return nil
}

// SpellingTable returns the built-in spelling table extended with the
// configured spellings.
func (c *Config) SpellingTable() orthography.Table {
	return orthography.Merge(orthography.DefaultTable(), c.Spellings)
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "blend"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
