package provider

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// API call shapes a provider entry can select.
const (
	// APIModeResponses uses the structured-output Responses API.
	APIModeResponses = "responses"

	// APIModeChat falls back to chat completions with JSON mode.
	APIModeChat = "chat"
)

const (
	defaultBaseURL        = "https://api.openai.com/v1"
	defaultTimeoutSeconds = 120
)

// Config configures a single provider entry.
type Config struct {
	// Name is the provider identifier (e.g. "openai").
	Name string `yaml:"name"`

	// BaseURL is the API root; defaults to the OpenAI endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// APIKey authenticates requests. Environment variables in the
	// providers file are expanded before parsing, so ${OPENAI_API_KEY}
	// works here.
	APIKey string `yaml:"api_key,omitempty"`

	// APIMode selects the client variant at construction time:
	// "responses" (default) or "chat".
	APIMode string `yaml:"api_mode,omitempty"`

	// TimeoutSeconds bounds each HTTP request; defaults to 120.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// Validate checks a provider entry for construction-blocking problems.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.APIKey, validation.Required.Error("api key is required (set OPENAI_API_KEY or api_key in providers.yaml)")),
		validation.Field(&c.APIMode, validation.In("", APIModeResponses, APIModeChat)),
		validation.Field(&c.TimeoutSeconds, validation.Min(0)),
	)
}

// ProvidersConfig represents the complete providers.yaml configuration.
type ProvidersConfig struct {
	Providers []Config `yaml:"providers"`
}

// Validate checks the whole providers file.
func (pc *ProvidersConfig) Validate() error {
	if len(pc.Providers) == 0 {
		return fmt.Errorf("no providers configured")
	}
	for i := range pc.Providers {
		if err := pc.Providers[i].Validate(); err != nil {
			return fmt.Errorf("provider %d (%s): %w", i, pc.Providers[i].Name, err)
		}
	}
	return nil
}

// Primary returns the provider entry the planner should use.
// With a single-provider file that is simply the first entry.
func (pc *ProvidersConfig) Primary() *Config {
	if len(pc.Providers) == 0 {
		return nil
	}
	return &pc.Providers[0]
}

// LoadConfig loads provider configuration from a YAML file.
// Environment variable references in the file are expanded first.
func LoadConfig(path string) (*ProvidersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var config ProvidersConfig
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// DefaultFromEnv synthesizes a provider entry from the environment when no
// providers.yaml exists. OPENAI_API_KEY, OPENAI_BASE_URL and OPENAI_API_MODE
// are consulted.
func DefaultFromEnv() *Config {
	mode := os.Getenv("OPENAI_API_MODE")
	if mode == "" {
		mode = APIModeResponses
	}
	return &Config{
		Name:    "openai",
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		APIMode: mode,
	}
}

// defaultConfigYAML is written by `openai-planner providers init`.
const defaultConfigYAML = `# openai-planner provider configuration.
# Environment variable references are expanded when this file is loaded.
providers:
  - name: openai
    base_url: https://api.openai.com/v1
    api_key: ${OPENAI_API_KEY}
    # api_mode selects the call shape: "responses" (structured output via
    # the Responses API) or "chat" (chat completions with JSON mode).
    api_mode: responses
    timeout_seconds: 120
`

// SaveDefaultConfig writes the default providers.yaml template to path,
// creating parent directories as needed. Refuses to overwrite.
func SaveDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// New constructs the client variant selected by cfg.APIMode.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil provider config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.APIMode {
	case "", APIModeResponses:
		return NewResponsesClient(cfg)
	case APIModeChat:
		return NewChatClient(cfg)
	default:
		return nil, fmt.Errorf("unknown api_mode %q", cfg.APIMode)
	}
}
