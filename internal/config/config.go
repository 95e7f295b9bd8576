package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string          `yaml:"addr"`
	JWTSecret     string          `yaml:"jwt_secret"`
	APITimeout    time.Duration   `yaml:"timeout"`
	DatabasePath  string          `yaml:"database_path"`
	TokenDuration time.Duration   `yaml:"token_duration"`
	Ollama        OllamaConfig    `yaml:"ollama"`
	Engine        EngineConfig    `yaml:"engine"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

type OllamaConfig struct {
	// BaseURL is the HTTP endpoint for the Ollama instance, e.g. http://localhost:11434
	BaseURL string `yaml:"base_url"`
	// Timeout is the per-request timeout
	Timeout time.Duration `yaml:"timeout"`
}

// EngineConfig carries the sampling parameters for both relay paths.
// Analysis and chat can use different models and bounds; defaults are
// 500 tokens @ 0.7 for analysis and 300 tokens @ 0.8 for chat.
type EngineConfig struct {
	AnalysisModel   string        `yaml:"analysis_model"`
	ChatModel       string        `yaml:"chat_model"`
	MaxTokens       int           `yaml:"max_tokens"`
	ChatMaxTokens   int           `yaml:"chat_max_tokens"`
	Temperature     float64       `yaml:"temperature"`
	ChatTemperature float64       `yaml:"chat_temperature"`
	Timeout         time.Duration `yaml:"timeout"`
}

type RateLimitConfig struct {
	Window time.Duration `yaml:"window"`
	Max    int           `yaml:"max"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("MOOD_ADDR", ":5001"),
		JWTSecret:     getEnv("MOOD_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("MOOD_DATABASE_PATH", "moodlog.db"),
		TokenDuration: 1 * time.Hour,
		Ollama: OllamaConfig{
			BaseURL: getEnv("MOOD_OLLAMA_URL", "http://localhost:11434"),
			Timeout: 30 * time.Second,
		},
		Engine: EngineConfig{
			AnalysisModel:   getEnv("MOOD_ANALYSIS_MODEL", "llama3"),
			ChatModel:       getEnv("MOOD_CHAT_MODEL", "llama3"),
			MaxTokens:       500,
			ChatMaxTokens:   300,
			Temperature:     0.7,
			ChatTemperature: 0.8,
			Timeout:         30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Window: 15 * time.Minute,
			Max:    100,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the config for values that are unsafe to run with. The
// default JWT secret is only tolerated when MOOD_ENV is "development".
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.JWTSecret == "" || c.JWTSecret == "supersecretkey" {
		if os.Getenv("MOOD_ENV") != "development" {
			return fmt.Errorf("jwt_secret must be set to a non-default value outside development")
		}
	}
	if c.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama base_url must not be empty")
	}
	if c.Engine.AnalysisModel == "" || c.Engine.ChatModel == "" {
		return fmt.Errorf("engine models must not be empty")
	}
	if c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit window and max must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
