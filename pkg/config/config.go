package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for askdb.
// Values come from a YAML file with environment variable overrides.
// Secrets (the model API key) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:""`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Embedded SQLite database configuration
	Database DatabaseConfig `yaml:"database"`

	// External language model configuration
	LLM LLMConfig `yaml:"llm"`
}

// DatabaseConfig holds the embedded store's file and migration locations.
type DatabaseConfig struct {
	Path           string `yaml:"path" env:"DB_PATH" env-default:"askdb.db"`
	MigrationsPath string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH" env-default:"migrations"`
}

// LLMConfig holds the external model endpoint settings.
type LLMConfig struct {
	// Provider selects the gateway implementation: "openai" or "anthropic".
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	// BaseURL is only used by the openai provider; it allows pointing the
	// gateway at any OpenAI-compatible endpoint.
	BaseURL string `yaml:"base_url" env:"LLM_BASE_URL" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	APIKey  string `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
}

// Load reads configuration from the given YAML file with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config. A missing port or model API key is a fatal configuration
// error: the server cannot serve requests without either.
func Load(path, version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required: set PORT or port in config")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("model API key is required: set LLM_API_KEY")
	}
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown llm provider %q: must be openai or anthropic", c.LLM.Provider)
	}
	return nil
}
