// README: Config loader: .env, optional tripbud.yaml, environment overrides, code defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log struct {
		Level  string
		Format string
	}
	Web struct {
		Addr       string
		APIURL     string
		APITimeout time.Duration
		SessionTTL time.Duration
	}
	API struct {
		Addr        string
		CORSOrigins []string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		Provider    string
		GeminiKey   string
		GeminiModel string
		OpenAIKey   string
		OpenAIModel string

		AnthropicKey   string
		AnthropicModel string
	}
	Maps struct {
		APIKey string
	}
}

// envKeys maps config keys to the environment variables that may set them,
// in priority order.
var envKeys = map[string][]string{
	"log.level":          {"TRIPBUD_LOG_LEVEL"},
	"log.format":         {"TRIPBUD_LOG_FORMAT"},
	"web.addr":           {"TRIPBUD_WEB_ADDR"},
	"web.api_url":        {"TRIPBUD_API_URL", "VITE_API_URL"},
	"web.api_timeout":    {"TRIPBUD_API_TIMEOUT"},
	"web.session_ttl":    {"TRIPBUD_SESSION_TTL"},
	"api.addr":           {"TRIPBUD_API_ADDR"},
	"api.cors_origins":   {"TRIPBUD_CORS_ORIGINS"},
	"db.dsn":             {"TRIPBUD_DB_DSN"},
	"redis.addr":         {"TRIPBUD_REDIS_ADDR"},
	"ai.provider":        {"TRIPBUD_PROVIDER"},
	"ai.gemini_key":      {"GEMINI_API_KEY"},
	"ai.gemini_model":    {"GEMINI_MODEL"},
	"ai.openai_key":      {"OPENAI_API_KEY"},
	"ai.openai_model":    {"OPENAI_MODEL"},
	"ai.anthropic_key":   {"ANTHROPIC_API_KEY"},
	"ai.anthropic_model": {"ANTHROPIC_MODEL"},
	"maps.api_key":       {"GOOGLE_MAPS_API_KEY"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("web.addr", ":3000")
	v.SetDefault("web.api_url", "http://localhost:8000")
	v.SetDefault("web.api_timeout", "60s")
	v.SetDefault("web.session_ttl", "24h")
	v.SetDefault("api.addr", ":8000")
	v.SetDefault("api.cors_origins", "*")
	v.SetDefault("db.dsn", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("ai.provider", "")
	v.SetDefault("ai.gemini_model", "gemini-2.0-flash")
	v.SetDefault("ai.openai_model", "gpt-4o-mini")
	v.SetDefault("ai.anthropic_model", "claude-sonnet-4-20250514")
}

// Load reads configuration. A missing .env or tripbud.yaml is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("tripbud")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	setDefaults(v)
	for key, envs := range envKeys {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	cfg.Log.Level = strings.ToLower(v.GetString("log.level"))
	cfg.Log.Format = strings.ToLower(v.GetString("log.format"))
	cfg.Web.Addr = v.GetString("web.addr")
	cfg.Web.APIURL = v.GetString("web.api_url")
	cfg.Web.APITimeout = v.GetDuration("web.api_timeout")
	cfg.Web.SessionTTL = v.GetDuration("web.session_ttl")
	cfg.API.Addr = v.GetString("api.addr")
	cfg.API.CORSOrigins = splitList(v.GetString("api.cors_origins"))
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.AI.Provider = strings.ToLower(v.GetString("ai.provider"))
	cfg.AI.GeminiKey = v.GetString("ai.gemini_key")
	cfg.AI.GeminiModel = v.GetString("ai.gemini_model")
	cfg.AI.OpenAIKey = v.GetString("ai.openai_key")
	cfg.AI.OpenAIModel = v.GetString("ai.openai_model")
	cfg.AI.AnthropicKey = v.GetString("ai.anthropic_key")
	cfg.AI.AnthropicModel = v.GetString("ai.anthropic_model")
	cfg.Maps.APIKey = v.GetString("maps.api_key")

	if cfg.Web.APITimeout <= 0 {
		return Config{}, fmt.Errorf("web.api_timeout must be positive")
	}
	switch cfg.AI.Provider {
	case "", "gemini", "openai", "anthropic", "places", "mock":
	default:
		return Config{}, fmt.Errorf("unsupported provider %q (use gemini, openai, anthropic, places or mock)", cfg.AI.Provider)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
