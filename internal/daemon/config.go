// Package daemon manages the EcoQuest daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Data      DataConfig      `toml:"data"`
	Generator GeneratorConfig `toml:"generator"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// DataConfig controls where game state is stored.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// GeneratorConfig controls the external content service. An empty URL
// means all content comes from the built-in catalog.
type GeneratorConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

// TelemetryConfig controls observability endpoints.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := ecoquestHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8470,
			CORSOrigins: []string{"*"},
		},
		Data: DataConfig{
			Dir: filepath.Join(homeDir, "data"),
		},
		Generator: GeneratorConfig{
			Timeout: "10s",
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "ecoquest.log"),
		},
	}
}

// LoadConfig reads config from $ECOQUEST_HOME/config.toml (default
// ~/.ecoquest/config.toml), falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(ecoquestHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to $ECOQUEST_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(ecoquestHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// GeneratorTimeout parses the configured generator timeout, defaulting
// to 10 seconds.
func (c Config) GeneratorTimeout() time.Duration {
	return parseDuration(c.Generator.Timeout, 10*time.Second)
}

// parseDuration parses a duration string, returning a fallback on error.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// ecoquestHome returns the EcoQuest data directory.
func ecoquestHome() string {
	if env := os.Getenv("ECOQUEST_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ecoquest")
}

// EcoquestHome is exported for use by other packages.
func EcoquestHome() string {
	return ecoquestHome()
}
