package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the stem tool.
type Config struct {
	Stemmer StemmerConfig `yaml:"stemmer"`
	Index   IndexConfig   `yaml:"index"`
	Lookup  LookupConfig  `yaml:"lookup"`
	Logging LoggingConfig `yaml:"logging"`
}

// StemmerConfig holds stemming configuration.
type StemmerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Variant string `yaml:"variant"` // "standard" (de facto departures) or "paper"
}

// IndexConfig holds indexing configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LookupConfig holds term lookup configuration.
type LookupConfig struct {
	TopK int `yaml:"top_k"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Stemmer: StemmerConfig{
			Enabled: true,
			Variant: "standard",
		},
		Index: IndexConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.rst", "**/*.html", "**/*.csv", "**/*.log"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/.stem/**", "**/dist/**", "**/build/**"},
		},
		Lookup: LookupConfig{
			TopK: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for stem.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "stem.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".stem", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".stem", "index.db")
}

// EnsureStemDir ensures the .stem directory exists.
func EnsureStemDir(dir string) error {
	stemDir := filepath.Join(dir, ".stem")
	return os.MkdirAll(stemDir, 0755)
}
