// Package config loads service configuration from YAML with environment
// variable expansion. Configuration is read once at startup and treated as
// read-only afterwards.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all concept-ai configuration.
type Config struct {
	Listen    string          `yaml:"listen"`
	DBPath    string          `yaml:"db_path"`
	CORS      CORSConfig      `yaml:"cors"`
	Providers ProvidersConfig `yaml:"providers"`
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// ProvidersConfig holds both generative-text backends. Which one serves
// requests is decided once at startup: OpenRouter wins if its key is set.
type ProvidersConfig struct {
	OpenRouter ProviderConfig `yaml:"openrouter"`
	OpenAI     ProviderConfig `yaml:"openai"`
}

// ProviderConfig defines one upstream backend.
type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
	URL    string `yaml:"url"`
	Model  string `yaml:"model"`
}

// Default returns a Config with sensible defaults. API keys are taken from
// the environment so the service runs without a config file.
func Default() *Config {
	return &Config{
		Listen: ":5000",
		DBPath: "explanations.db",
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Providers: ProvidersConfig{
			OpenRouter: ProviderConfig{
				APIKey: os.Getenv("OPENROUTER_API_KEY"),
				URL:    "https://openrouter.ai/api/v1/chat/completions",
				Model:  "meta-llama/llama-3.2-3b-instruct:free",
			},
			OpenAI: ProviderConfig{
				APIKey: os.Getenv("OPENAI_API_KEY"),
				URL:    "https://api.openai.com/v1/chat/completions",
				Model:  "gpt-4o-mini",
			},
		},
	}
}

// Load reads a YAML config file and expands environment variables before
// parsing, so keys can be written as api_key: ${OPENROUTER_API_KEY}.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file when it exists and falls back to
// defaults when it does not.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
