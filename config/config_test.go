package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_SERVER_PORT", "LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL",
		"GOOGLE_API_KEY", "OPENAI_API_KEY", "UPSTREAM_TIMEOUT",
		"CORS_ALLOWED_ORIGIN", "LOG_LEVEL", "DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaultsToGemini(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderGemini {
		t.Errorf("expected provider %q, got %q", ProviderGemini, cfg.Provider)
	}
	if cfg.Model != "gemini-pro" {
		t.Errorf("unexpected model: %s", cfg.Model)
	}
	if cfg.APIKey != "g-key" {
		t.Errorf("unexpected api key: %s", cfg.APIKey)
	}
	if cfg.Port != "8000" {
		t.Errorf("unexpected port: %s", cfg.Port)
	}
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.UpstreamTimeout)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("unexpected origin: %s", cfg.AllowedOrigin)
	}
}

func TestLoadOpenAI(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GOOGLE_API_KEY", "ignored")
	t.Setenv("LLM_MODEL", "gpt-test")
	t.Setenv("UPSTREAM_TIMEOUT", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("expected openai key, got %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-test" {
		t.Errorf("unexpected model: %s", cfg.Model)
	}
	if cfg.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("unexpected base url: %s", cfg.BaseURL)
	}
	if cfg.UpstreamTimeout != 45*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.UpstreamTimeout)
	}
}

func TestLoadMissingKeyFailsFast(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing credential")
	}
	if !strings.Contains(err.Error(), "GOOGLE_API_KEY") {
		t.Errorf("error should name the variable, got %v", err)
	}
}

func TestLoadUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "banana")
	t.Setenv("GOOGLE_API_KEY", "g-key")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable timeout")
	}

	t.Setenv("UPSTREAM_TIMEOUT", "-5s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestDebugForcesLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %s", cfg.LogLevel)
	}
}

func TestLoadEnvFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("APP_ENV", "test")

	if err := os.WriteFile(filepath.Join(dir, ".env.test.local"), []byte("LLM_MODEL=local-model\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env.test"), []byte("LLM_MODEL=shared-model\nHTTP_SERVER_PORT=9100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("LLM_MODEL")
		os.Unsetenv("HTTP_SERVER_PORT")
	})
	// clearEnv set these to "", which godotenv treats as already present.
	os.Unsetenv("LLM_MODEL")
	os.Unsetenv("HTTP_SERVER_PORT")

	if err := loadEnvFiles(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("LLM_MODEL"); got != "local-model" {
		t.Errorf("local file should win, got %q", got)
	}
	if got := os.Getenv("HTTP_SERVER_PORT"); got != "9100" {
		t.Errorf("expected port from shared file, got %q", got)
	}
}

func TestLoadEnvFilesMissingDir(t *testing.T) {
	t.Setenv("APP_ENV", "nowhere")
	if err := loadEnvFiles(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("missing files should be skipped, got %v", err)
	}
}
