package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth (optional; empty disables auth on the HTTP surface)
	APIKey string

	// Batch I/O
	InputDir   string
	InputSpec  string
	OutputPath string

	// Assistant (optional generative model)
	AssistantEnabled      bool
	AssistantURL          string
	AssistantModel        string
	AssistantTimeout      time.Duration
	AssistantFailureLimit int

	// Ranking
	MaxAnalyzed  int     // sections re-scored by the assistant (N)
	TopK         int     // sections reported and refined (K)
	AssistWeight float64 // scale for the assistant's 1-10 rating

	// Bounds
	MaxSectionChars     int
	MaxExcerptChars     int
	MaxPromptChars      int
	MaxCompletionTokens int

	// Parallel document extraction
	WorkerCount int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("API_KEY"),

		InputDir:   envOr("INPUT_DIR", "input"),
		InputSpec:  envOr("INPUT_SPEC", "input/challenge.json"),
		OutputPath: envOr("OUTPUT_PATH", "output/analysis_output.json"),

		AssistantEnabled:      envBool("ASSISTANT_ENABLED", true),
		AssistantURL:          envOr("ASSISTANT_URL", "http://localhost:11434"),
		AssistantModel:        envOr("ASSISTANT_MODEL", "gemma3:1b"),
		AssistantTimeout:      envDuration("ASSISTANT_TIMEOUT", 20*time.Second),
		AssistantFailureLimit: envInt("ASSISTANT_FAILURE_LIMIT", 3),

		MaxAnalyzed:  envInt("MAX_ANALYZED", 10),
		TopK:         envInt("TOP_K", 5),
		AssistWeight: envFloat("ASSIST_WEIGHT", 2.0),

		MaxSectionChars:     envInt("MAX_SECTION_CHARS", 1500),
		MaxExcerptChars:     envInt("MAX_EXCERPT_CHARS", 250),
		MaxPromptChars:      envInt("MAX_PROMPT_CHARS", 2000),
		MaxCompletionTokens: envInt("MAX_COMPLETION_TOKENS", 50),

		WorkerCount: envInt("WORKER_COUNT", 4),
	}

	if cfg.AssistantFailureLimit <= 0 {
		cfg.AssistantFailureLimit = 3
	}
	if cfg.MaxAnalyzed <= 0 {
		cfg.MaxAnalyzed = 10
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 5
	}
	if cfg.AssistWeight < 0 {
		cfg.AssistWeight = 2.0
	}
	if cfg.MaxSectionChars <= 0 {
		cfg.MaxSectionChars = 1500
	}
	if cfg.MaxExcerptChars <= 0 {
		cfg.MaxExcerptChars = 250
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = 2000
	}
	if cfg.MaxCompletionTokens <= 0 {
		cfg.MaxCompletionTokens = 50
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.AssistantTimeout <= 0 {
		cfg.AssistantTimeout = 20 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("INPUT_DIR is required")
	}
	if c.AssistantEnabled && c.AssistantURL == "" {
		return fmt.Errorf("ASSISTANT_URL is required when the assistant is enabled")
	}
	if c.TopK > c.MaxAnalyzed {
		return fmt.Errorf("TOP_K (%d) must not exceed MAX_ANALYZED (%d)", c.TopK, c.MaxAnalyzed)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
