// Package config loads pipeline configuration from the process environment,
// an optional .env file, and an optional config.yaml for tuning overrides.
// Environment variables always win over file values.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the generation pipeline needs at startup.
type Config struct {
	// Record store (Airtable-style HTTP API).
	AirtableToken  string
	AirtableBaseID string
	AirtableTable  string

	// LLM provider: "openai", "anthropic", or "mock".
	LLMProvider string
	LLMModel    string
	LLMAPIKey   string
	LLMBaseURL  string

	// Where generated markdown lands.
	ContentDir string
	AuthorName string

	// Selection tuning. AvoidanceDays of 180 matches the store-backed
	// predicate; 30 is the light-rotation variant.
	AvoidanceDays int
	RecentStates  int

	// Soft word-count bounds for generated bodies.
	MinWordCount int
	MaxWordCount int

	// Cron spec used by --serve.
	ServeCron string

	// Per-profile weight overrides from config.yaml (templates.weights).
	TemplateWeights map[string]float64
}

// Load reads configuration and validates required values. Every missing
// required variable is named in the returned error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Printf("[config] no .env file found, skipping")
		} else {
			log.Printf("[config] failed to load .env: %v", err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
	}

	viper.SetDefault("AIRTABLE_TABLE_NAME", "national-parks")
	viper.SetDefault("LLM_PROVIDER", "openai")
	viper.SetDefault("BLOG_CONTENT_DIR", "src/content/blog")
	viper.SetDefault("AUTHOR_NAME", "National Park Directory Team")
	viper.SetDefault("SELECTION_AVOIDANCE_DAYS", 180)
	viper.SetDefault("SELECTION_RECENT_STATES", 5)
	viper.SetDefault("MIN_WORD_COUNT", 800)
	viper.SetDefault("MAX_WORD_COUNT", 1500)
	viper.SetDefault("SERVE_CRON", "0 6 * * *")

	cfg := Config{
		AirtableToken:   viper.GetString("AIRTABLE_TOKEN"),
		AirtableBaseID:  viper.GetString("AIRTABLE_BASE_ID"),
		AirtableTable:   viper.GetString("AIRTABLE_TABLE_NAME"),
		LLMProvider:     strings.ToLower(viper.GetString("LLM_PROVIDER")),
		LLMModel:        viper.GetString("LLM_MODEL"),
		LLMBaseURL:      viper.GetString("LLM_BASE_URL"),
		ContentDir:      viper.GetString("BLOG_CONTENT_DIR"),
		AuthorName:      viper.GetString("AUTHOR_NAME"),
		AvoidanceDays:   viper.GetInt("SELECTION_AVOIDANCE_DAYS"),
		RecentStates:    viper.GetInt("SELECTION_RECENT_STATES"),
		MinWordCount:    viper.GetInt("MIN_WORD_COUNT"),
		MaxWordCount:    viper.GetInt("MAX_WORD_COUNT"),
		ServeCron:       viper.GetString("SERVE_CRON"),
		TemplateWeights: templateWeights(),
	}

	switch cfg.LLMProvider {
	case "openai":
		cfg.LLMAPIKey = viper.GetString("OPENAI_API_KEY")
		if cfg.LLMModel == "" {
			cfg.LLMModel = "gpt-4"
		}
	case "anthropic":
		cfg.LLMAPIKey = viper.GetString("ANTHROPIC_API_KEY")
		if cfg.LLMModel == "" {
			cfg.LLMModel = "claude-sonnet-4-5"
		}
	case "mock":
		cfg.LLMModel = "mock"
	default:
		return Config{}, fmt.Errorf("llm provider %q not supported (want openai, anthropic, or mock)", cfg.LLMProvider)
	}

	var missing []string
	if cfg.AirtableToken == "" {
		missing = append(missing, "AIRTABLE_TOKEN")
	}
	if cfg.AirtableBaseID == "" {
		missing = append(missing, "AIRTABLE_BASE_ID")
	}
	if cfg.LLMAPIKey == "" {
		switch cfg.LLMProvider {
		case "openai":
			missing = append(missing, "OPENAI_API_KEY")
		case "anthropic":
			missing = append(missing, "ANTHROPIC_API_KEY")
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// templateWeights reads templates.weights from config.yaml, if present.
func templateWeights() map[string]float64 {
	raw := viper.GetStringMap("templates.weights")
	if len(raw) == 0 {
		return nil
	}
	weights := make(map[string]float64, len(raw))
	for id, v := range raw {
		switch n := v.(type) {
		case float64:
			weights[id] = n
		case int:
			weights[id] = float64(n)
		}
	}
	return weights
}
