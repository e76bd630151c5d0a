package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config is built once at process start and handed to the constructors that need it.
type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	DBDriver    string
	DatabaseURL string

	AIProvider    string
	AIModel       string
	AIMaxRetries  int
	AITimeout     time.Duration
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string

	LogLevel  string
	LogFormat string
}

// APIKey returns the key of the configured generation provider.
func (c Config) APIKey() string {
	if c.AIProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Load reads the process environment, after merging an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	var errs []error

	retries, err := envInt("AI_MAX_RETRIES", 2)
	if err != nil {
		errs = append(errs, err)
	} else if retries < 0 {
		errs = append(errs, fmt.Errorf("AI_MAX_RETRIES must not be negative, got %d", retries))
	}

	timeout, err := envDuration("AI_TIMEOUT", 90*time.Second)
	if err != nil {
		errs = append(errs, err)
	}

	cfg := Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "*"),
		DBDriver:      strings.ToLower(envOr("DB_DRIVER", DriverPostgres)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AIProvider:    strings.ToLower(envOr("AI_PROVIDER", ProviderOpenAI)),
		AIModel:       os.Getenv("AI_MODEL"),
		AIMaxRetries:  retries,
		AITimeout:     timeout,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		LogFormat:     envOr("LOG_FORMAT", "json"),
	}

	if cfg.DatabaseURL == "" {
		errs = append(errs, errors.New("missing required environment variable: DATABASE_URL"))
	}
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}

	switch cfg.AIProvider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("missing required environment variable: OPENAI_API_KEY"))
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			errs = append(errs, errors.New("missing required environment variable: GEMINI_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported AI_PROVIDER %q", cfg.AIProvider))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", k, err)
	}
	return n, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", k, v)
	}
	return d, nil
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
