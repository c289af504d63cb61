package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration loaded from config.yaml.
type Config struct {
	// MaxRecentEntries caps the recently-opened history length
	MaxRecentEntries int `yaml:"maxRecentEntries"`

	// InsertSpaces selects space indentation for rewritten workspace files
	InsertSpaces bool `yaml:"insertSpaces"`

	// TabSize is the indent width when InsertSpaces is set
	TabSize int `yaml:"tabSize"`

	// EOL is the line ending for rewritten content ("\n" or "\r\n")
	EOL string `yaml:"eol"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		MaxRecentEntries: 100,
		InsertSpaces:     true,
		TabSize:          2,
		EOL:              "\n",
	}
}

// Load reads the config from path, or returns the defaults if the file
// doesn't exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxRecentEntries <= 0 {
		cfg.MaxRecentEntries = DefaultConfig().MaxRecentEntries
	}
	if cfg.EOL == "" {
		cfg.EOL = "\n"
	}
	return cfg, nil
}
