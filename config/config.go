package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var providers = []string{ProviderGemini, ProviderOpenAI}

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Port            string
	Provider        string
	Model           string
	BaseURL         string
	APIKey          string
	UpstreamTimeout time.Duration
	AllowedOrigin   string
	LogLevel        string
}

// Init loads config/.env.<APP_ENV>.local and config/.env.<APP_ENV> from the
// working directory. Missing files are skipped; variables already present in
// the environment are never overwritten.
func Init() error {
	exPath, err := os.Getwd()
	if err != nil {
		return err
	}
	return loadEnvFiles(filepath.Join(exPath, "config"))
}

func loadEnvFiles(dir string) error {
	appEnv, exists := os.LookupEnv("APP_ENV")
	if !exists {
		appEnv = "dev"
	}

	var files []string
	for _, name := range []string{".env." + appEnv + ".local", ".env." + appEnv} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		log.Debug().Str("dir", dir).Str("env", appEnv).Msg("no env files found")
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}
	log.Debug().Strs("files", files).Msg("loaded env files")
	return nil
}

// Load builds a Config from the environment and validates it.
func Load() (*Config, error) {
	provider := env("LLM_PROVIDER", ProviderGemini)

	timeout, err := envDuration("UPSTREAM_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            env("HTTP_SERVER_PORT", "8000"),
		Provider:        provider,
		Model:           env("LLM_MODEL", defaultModel(provider)),
		BaseURL:         env("LLM_BASE_URL", defaultBaseURL(provider)),
		APIKey:          os.Getenv(apiKeyVar(provider)),
		UpstreamTimeout: timeout,
		AllowedOrigin:   env("CORS_ALLOWED_ORIGIN", "*"),
		LogLevel:        env("LOG_LEVEL", "info"),
	}
	if os.Getenv("DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first problem that would make every request fail.
func (c *Config) Validate() error {
	if !slices.Contains(providers, c.Provider) {
		return fmt.Errorf("unknown LLM_PROVIDER %q (want one of %v)", c.Provider, providers)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s is not set", apiKeyVar(c.Provider))
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	return nil
}

func apiKeyVar(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GOOGLE_API_KEY"
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return "gpt-4o-mini"
	}
	return "gemini-pro"
}

func defaultBaseURL(provider string) string {
	if provider == ProviderOpenAI {
		return "https://api.openai.com/v1"
	}
	return "https://generativelanguage.googleapis.com"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envDuration accepts a Go duration ("45s") or a bare number of seconds.
func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", k, v, err)
	}
	return d, nil
}
