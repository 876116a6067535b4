// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-coach/internal/llm"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from the
// environment.
type Config struct {
	// APIKey is the Gemini API key. GEMINI_API_KEY takes precedence when set.
	APIKey string `json:"api_key,omitempty"`

	// EmbeddingModel overrides the default embedding model.
	EmbeddingModel string `json:"embedding_model,omitempty"`

	// GenerationModels overrides models per tier: lite, standard, advanced.
	GenerationModels map[string]string `json:"generation_models,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// LogJSON selects JSON log encoding over console encoding.
	LogJSON bool `json:"log_json,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyEnv()
	return &cfg, nil
}

// FromEnv builds a Config purely from environment variables.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.APIKey = key
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: API key is required (set 'api_key' or GEMINI_API_KEY)")
	}

	for tier := range c.GenerationModels {
		switch llm.ModelTier(tier) {
		case llm.TierLite, llm.TierStandard, llm.TierAdvanced:
		default:
			return fmt.Errorf("config error: unknown generation model tier %q", tier)
		}
	}
	return nil
}

// LLMConfig builds the generation client configuration, applying any
// per-tier overrides on top of the defaults.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	for tier, model := range c.GenerationModels {
		cfg = cfg.WithModel(llm.ModelTier(tier), model)
	}
	return cfg
}
