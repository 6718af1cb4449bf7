package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for coldsight-engine.
// Configuration can come from YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values. Secrets
// (API keys, DSNs) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// LLM backend configuration
	LLM LLMConfig `yaml:"llm"`

	// Warehouse (analytical query backend) configuration
	Warehouse WarehouseConfig `yaml:"warehouse"`

	// Per-agent conversation history windows
	History HistoryConfig `yaml:"history"`
}

// LLMConfig holds LLM provider settings. Temperatures are per handler:
// routing and SQL generation run deterministic, conversation runs warmer.
type LLMConfig struct {
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`
	Endpoint string `yaml:"endpoint" env:"LLM_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model    string `yaml:"model" env:"LLM_MODEL" env-default:"gpt-4o-mini"`
	APIKey   string `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML

	RouterTemperature    float64 `yaml:"router_temperature" env:"LLM_ROUTER_TEMPERATURE" env-default:"0"`
	SQLTemperature       float64 `yaml:"sql_temperature" env:"LLM_SQL_TEMPERATURE" env-default:"0"`
	SynthesisTemperature float64 `yaml:"synthesis_temperature" env:"LLM_SYNTHESIS_TEMPERATURE" env-default:"0"`
	GeneralTemperature   float64 `yaml:"general_temperature" env:"LLM_GENERAL_TEMPERATURE" env-default:"0.7"`
}

// WarehouseConfig holds settings for the analytical warehouse the generated
// SQL runs against. Driver selects the adapter: "bigquery" or "postgres".
type WarehouseConfig struct {
	Driver    string `yaml:"driver" env:"WAREHOUSE_DRIVER" env-default:"bigquery"`
	ProjectID string `yaml:"project_id" env:"WAREHOUSE_PROJECT_ID" env-default:""`
	Dataset   string `yaml:"dataset" env:"WAREHOUSE_DATASET" env-default:"coldchain"`
	Location  string `yaml:"location" env:"WAREHOUSE_LOCATION" env-default:"asia-northeast3"`
	DSN       string `yaml:"-" env:"WAREHOUSE_DSN"` // Secret - postgres driver only
}

// HistoryConfig sets how many trailing conversation turns each agent sees.
// The SQL agent keeps a short window to leave room for the schema prompt;
// the conversational agent keeps a longer one.
type HistoryConfig struct {
	SQLWindow     int `yaml:"sql_window" env:"HISTORY_SQL_WINDOW" env-default:"6"`
	GeneralWindow int `yaml:"general_window" env:"HISTORY_GENERAL_WINDOW" env-default:"10"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. The version parameter is injected at build time and set on the
// returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		return nil, fmt.Errorf("failed to read config.yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv reads configuration from environment variables only, without
// requiring a config.yaml. Used by the CLI.
func LoadFromEnv(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLM.Provider)
	}

	switch c.Warehouse.Driver {
	case "bigquery", "postgres":
	default:
		return fmt.Errorf("unsupported warehouse driver %q", c.Warehouse.Driver)
	}

	if c.History.SQLWindow < 0 || c.History.GeneralWindow < 0 {
		return fmt.Errorf("history windows must be non-negative")
	}

	return nil
}
