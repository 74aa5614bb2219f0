// Package config loads playground settings from an optional YAML file with
// sensible defaults. The OpenAI API key is deliberately environment-only and
// never read from (or written to) a config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the working directory and $HOME.
const ConfigFileName = ".toonvert.yaml"

// Config represents the complete configuration for toonvert
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Encoder EncoderConfig `yaml:"encoder"`
	LLM     LLMConfig     `yaml:"llm"`
	Dev     DevConfig     `yaml:"dev"`
}

// ServerConfig controls the playground HTTP server
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// EncoderConfig controls TOON encoding
type EncoderConfig struct {
	Indent   int `yaml:"indent"`
	MaxDepth int `yaml:"max_depth"`
}

// LLMConfig controls the LLM test endpoint
type LLMConfig struct {
	Model string `yaml:"model"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8000",
		},
		Encoder: EncoderConfig{
			Indent:   2,
			MaxDepth: 10000,
		},
		LLM: LLMConfig{
			Model: "gpt-4o-mini",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. Unset fields keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads the discovered config file, or returns defaults when
// no file exists.
func LoadOrDefault() (*Config, error) {
	path := FindConfigFile()
	if path == "" {
		return NewConfig(), nil
	}
	return LoadConfig(path)
}

// FindConfigFile looks for the config file in the current directory, then
// in the user's home directory. Returns "" when neither exists.
func FindConfigFile() string {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// Validate checks configured values for obvious mistakes.
func (c *Config) Validate() error {
	if c.Encoder.Indent <= 0 {
		return fmt.Errorf("encoder.indent must be positive, got %d", c.Encoder.Indent)
	}
	if c.Encoder.MaxDepth <= 0 {
		return fmt.Errorf("encoder.max_depth must be positive, got %d", c.Encoder.MaxDepth)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
