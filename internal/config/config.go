// README: Config loader with env defaults for HTTP, LLM provider, optional DB/Redis/Maps settings.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type LLMConfig struct {
	Provider      string
	Model         string
	APIKey        string
	OpenAIBaseURL string
	Timeout       time.Duration
}

type QuotaConfig struct {
	Daily int
}

type Config struct {
	HTTP struct {
		Addr    string
		GinMode string
	}
	LLM       LLMConfig
	Itinerary struct {
		MaxDays int
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Quota QuotaConfig
	Maps  struct {
		APIKey string
	}
}

// Load reads the process environment. A .env file in the working directory is
// applied first when present; variables already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPSIGHT_HTTP_ADDR", ":8000")
	cfg.HTTP.GinMode = os.Getenv("GIN_MODE")

	cfg.LLM.Provider = strings.ToLower(envOrDefault("TRIPSIGHT_LLM_PROVIDER", ProviderOpenAI))
	cfg.LLM.Model = os.Getenv("TRIPSIGHT_LLM_MODEL")
	switch cfg.LLM.Provider {
	case ProviderGemini:
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	cfg.LLM.OpenAIBaseURL = strings.TrimRight(envOrDefault("TRIPSIGHT_OPENAI_BASE_URL", "https://api.openai.com/v1"), "/")
	cfg.LLM.Timeout = time.Duration(envOrDefaultInt("TRIPSIGHT_COMPLETION_TIMEOUT_SECONDS", 60)) * time.Second

	cfg.Itinerary.MaxDays = envOrDefaultInt("TRIPSIGHT_MAX_DAYS", 0)

	cfg.DB.DSN = os.Getenv("TRIPSIGHT_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TRIPSIGHT_REDIS_ADDR")
	cfg.Quota.Daily = envOrDefaultInt("TRIPSIGHT_DAILY_QUOTA", 50)
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	return cfg, nil
}

// Warnings lists configuration problems that do not prevent startup.
func (c Config) Warnings() []string {
	var out []string
	if c.LLM.APIKey == "" {
		key := "OPENAI_API_KEY"
		if c.LLM.Provider == ProviderGemini {
			key = "GEMINI_API_KEY"
		}
		out = append(out, key+" is missing; itinerary requests will fail until it is set")
	}
	if c.LLM.Provider != ProviderOpenAI && c.LLM.Provider != ProviderGemini {
		out = append(out, "unknown TRIPSIGHT_LLM_PROVIDER "+strconv.Quote(c.LLM.Provider))
	}
	return out
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
