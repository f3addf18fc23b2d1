package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the journal application configuration.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
	Display DisplayConfig `json:"display" yaml:"display"`
	Export  ExportConfig  `json:"export" yaml:"export"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StorageConfig selects the durable key-value backend.
type StorageConfig struct {
	Type      string `json:"type" yaml:"type"` // "sqlite", "file" or "memory"
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// DisplayConfig controls how values are rendered.
type DisplayConfig struct {
	Currency string `json:"currency" yaml:"currency"`
}

// ExportConfig controls where exports are written.
type ExportConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // debug|info|warn|error
	JSON  bool   `json:"json,omitempty" yaml:"json,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON).
// Fields missing from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "sqlite", "file":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path required for %s type", c.Storage.Type)
		}
	case "memory":
	default:
		return fmt.Errorf("storage.type must be 'sqlite', 'file' or 'memory'")
	}
	if c.Storage.Namespace == "" {
		return fmt.Errorf("storage.namespace is required")
	}
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type:      "sqlite",
			Path:      "./jurnal.sqlite",
			Namespace: "jurnalforex",
		},
		Display: DisplayConfig{
			Currency: "AUC",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
