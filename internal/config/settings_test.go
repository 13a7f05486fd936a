package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIKeyPrecedence(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{APIKey: "env-key"})

	if got := settings.APIKey(); got != "env-key" {
		t.Errorf("Expected env key, got %q", got)
	}

	settings.SetAPIKeyOverride("  pref-key ")
	if got := settings.APIKey(); got != "pref-key" {
		t.Errorf("Expected override key, got %q", got)
	}

	settings.SetAPIKeyOverride("")
	if got := settings.APIKey(); got != "env-key" {
		t.Errorf("Expected env key after clearing override, got %q", got)
	}
}

func TestMaxResults(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if got := settings.GetMaxResults(); got != DefaultMaxResults {
		t.Errorf("Expected default max results %d, got %d", DefaultMaxResults, got)
	}

	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"custom", 30, 30},
		{"clamped to minimum", 0, 1},
		{"clamped to maximum", 200, MaxResultsLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings.SetMaxResults(tt.input)
			if got := settings.GetMaxResults(); got != tt.expected {
				t.Errorf("SetMaxResults(%d) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestThumbnailWorkers(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if got := settings.GetThumbnailWorkers(); got != DefaultThumbWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultThumbWorkers, got)
	}

	settings.SetThumbnailWorkers(15) // Should be clamped to 10
	if settings.GetThumbnailWorkers() != ThumbWorkersLimit {
		t.Error("Thumbnail workers should be clamped to maximum")
	}

	settings.SetThumbnailWorkers(-3)
	if settings.GetThumbnailWorkers() != 1 {
		t.Error("Thumbnail workers should be clamped to minimum 1")
	}
}

func TestThumbnailLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if got := settings.GetThumbnailLimit(); got != DefaultThumbLimit {
		t.Errorf("Expected default thumbnail limit %d, got %d", DefaultThumbLimit, got)
	}

	settings.SetThumbnailLimit(6)
	if got := settings.GetThumbnailLimit(); got != 6 {
		t.Errorf("Expected thumbnail limit 6, got %d", got)
	}
}

func TestRequestsPerSecond(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if got := settings.GetRequestsPerSecond(); got != DefaultRequestsPerSec {
		t.Errorf("Expected default rps %v, got %v", DefaultRequestsPerSec, got)
	}

	settings.SetRequestsPerSecond(-1)
	if got := settings.GetRequestsPerSecond(); got != 0 {
		t.Errorf("Negative rps should be stored as 0, got %v", got)
	}

	settings.SetRequestsPerSecond(math.NaN())
	if got := settings.GetRequestsPerSecond(); got != 0 {
		t.Errorf("NaN rps should be stored as 0, got %v", got)
	}

	settings.SetRequestsPerSecond(2.5)
	if got := settings.GetRequestsPerSecond(); got != 2.5 {
		t.Errorf("Expected rps 2.5, got %v", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language pt, got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Env{})

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, exists := options[key]; !exists {
			t.Errorf("Expected language option %s to exist", key)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "YOUTUBE_API_KEY=file-key\nYOUTUBE_API_BASE=http://localhost:9999\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvAPIKey)
	t.Setenv(EnvBaseURL, "http://from-env")

	env := LoadEnv(envFile)
	if env.APIKey != "file-key" {
		t.Errorf("Expected key from file, got %q", env.APIKey)
	}
	if env.BaseURL != "http://from-env" {
		t.Errorf("Environment should win over .env file, got %q", env.BaseURL)
	}
	os.Unsetenv(EnvAPIKey)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "only-env")

	env := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if env.APIKey != "only-env" {
		t.Errorf("Expected key from environment, got %q", env.APIKey)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "custom.env")
	if err := os.WriteFile(envFile, []byte("YOUTUBE_API_BASE=http://from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(EnvBaseURL, "")
	os.Unsetenv(EnvBaseURL)
	t.Setenv(EnvAPIKey, "env-key")

	env, err := LoadEnvFile(envFile)
	if err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if env.BaseURL != "http://from-file" {
		t.Errorf("Expected base URL from file, got %q", env.BaseURL)
	}
	if env.APIKey != "env-key" {
		t.Errorf("Expected key from environment, got %q", env.APIKey)
	}
	os.Unsetenv(EnvBaseURL)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")

	_, err := LoadEnvFile(path)
	if err == nil {
		t.Fatal("Expected an error for a missing env file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.env") {
		t.Errorf("Error should name the file, got %v", err)
	}
}
