// Package config loads and validates DynamiChat configuration.
// Configuration lives in .dynamichat/config.yaml and can be overridden
// with environment variables for deployment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the workspace-relative location of the config file.
const DefaultPath = ".dynamichat/config.yaml"

// Config holds all DynamiChat configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Generative backend configuration
	Gemini GeminiConfig `yaml:"gemini"`

	// NLP pipeline configuration
	NLP NLPConfig `yaml:"nlp"`

	// Conversation memory configuration
	Memory MemoryConfig `yaml:"memory"`

	// Analytics store configuration
	Analytics AnalyticsConfig `yaml:"analytics"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the generative backend gateway.
type GeminiConfig struct {
	APIKey          string  `yaml:"api_key"`
	Model           string  `yaml:"model"`
	BaseURL         string  `yaml:"base_url"`
	Timeout         string  `yaml:"timeout"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	Temperature     float64 `yaml:"temperature"`
	MaxRetries      int     `yaml:"max_retries"`
	RetryBackoff    string  `yaml:"retry_backoff"` // multiplied by attempt number
}

// NLPConfig configures the intent classifier.
type NLPConfig struct {
	MultiIntentTopK    int     `yaml:"multi_intent_top_k"`
	MinSimilarity      float64 `yaml:"min_similarity"`       // single-label threshold
	MinMultiSimilarity float64 `yaml:"min_multi_similarity"` // multi-label threshold
}

// MemoryConfig configures the sliding-window conversation memory.
type MemoryConfig struct {
	Window int `yaml:"window"`
}

// AnalyticsConfig configures the analytics store.
type AnalyticsConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"` // debug, info, warn, error
	JSONFormat bool            `yaml:"json_format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "DynamiChat",
		Version: "1.0.0",

		Gemini: GeminiConfig{
			Model:           "gemini-2.0-flash",
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
			Timeout:         "60s",
			MaxOutputTokens: 1024,
			Temperature:     0.7,
			MaxRetries:      3,
			RetryBackoff:    "1.5s",
		},

		NLP: NLPConfig{
			MultiIntentTopK:    3,
			MinSimilarity:      0.12,
			MinMultiSimilarity: 0.05,
		},

		Memory: MemoryConfig{
			Window: 20,
		},

		Analytics: AnalyticsConfig{
			DatabasePath: ".dynamichat/analytics.db",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields defaults; environment variables override either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("MAX_OUTPUT_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Gemini.MaxOutputTokens = n
		}
	}
	if v := os.Getenv("TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Gemini.Temperature = f
		}
	}
	if v := os.Getenv("DYNAMICHAT_DB"); v != "" {
		c.Analytics.DatabasePath = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini api_key is not set (set GEMINI_API_KEY or gemini.api_key in %s)", DefaultPath)
	}
	if c.Memory.Window <= 0 {
		return fmt.Errorf("memory window must be positive, got %d", c.Memory.Window)
	}
	if c.Gemini.MaxRetries <= 0 {
		return fmt.Errorf("gemini max_retries must be positive, got %d", c.Gemini.MaxRetries)
	}
	return nil
}

// GeminiTimeout returns the backend timeout as a duration.
func (c *Config) GeminiTimeout() time.Duration {
	return parseDuration(c.Gemini.Timeout, 60*time.Second)
}

// RetryBackoff returns the base retry backoff as a duration.
func (c *Config) RetryBackoff() time.Duration {
	return parseDuration(c.Gemini.RetryBackoff, 1500*time.Millisecond)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
