package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"
)

// Environment variables read at startup
const (
	EnvAPIKey  = "YOUTUBE_API_KEY"
	EnvBaseURL = "YOUTUBE_API_BASE"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey         = "youtube_api_key"
	KeyMaxResults     = "search_max_results"
	KeyThumbWorkers   = "thumbnail_workers"
	KeyThumbLimit     = "thumbnail_limit"
	KeyLanguage       = "app_language"
	KeyRequestsPerSec = "requests_per_second"
)

// Default values
const (
	DefaultMaxResults     = 20
	DefaultThumbWorkers   = 4
	DefaultThumbLimit     = 10
	DefaultLanguage       = "system"
	DefaultRequestsPerSec = 5.0

	MaxResultsLimit   = 50
	ThumbWorkersLimit = 10
	ThumbLimitMax     = 50
)

// Env holds values taken from the process environment
type Env struct {
	APIKey  string
	BaseURL string
}

// LoadEnv reads an optional .env file from the working directory and then
// the process environment. Variables already set in the environment win.
func LoadEnv(files ...string) Env {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("config: load .env: %v", err)
	}
	return envFromProcess()
}

// LoadEnvFile is LoadEnv for an explicitly named file, which must exist
func LoadEnvFile(path string) (Env, error) {
	if err := godotenv.Load(path); err != nil {
		return Env{}, fmt.Errorf("load env file %s: %w", path, err)
	}
	return envFromProcess(), nil
}

func envFromProcess() Env {
	return Env{
		APIKey:  strings.TrimSpace(os.Getenv(EnvAPIKey)),
		BaseURL: strings.TrimSpace(os.Getenv(EnvBaseURL)),
	}
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, env Env) *Settings {
	return &Settings{app: app, env: env}
}

// APIKey returns the key override from preferences, falling back to the
// environment.
func (s *Settings) APIKey() string {
	if key := s.GetAPIKeyOverride(); key != "" {
		return key
	}
	return s.env.APIKey
}

// BaseURL returns the API base URL from the environment, empty for default
func (s *Settings) BaseURL() string {
	return s.env.BaseURL
}

// GetAPIKeyOverride returns the key stored in preferences
func (s *Settings) GetAPIKeyOverride() string {
	return strings.TrimSpace(s.app.Preferences().String(KeyAPIKey))
}

// SetAPIKeyOverride stores an API key; an empty key removes the override
func (s *Settings) SetAPIKeyOverride(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		s.app.Preferences().RemoveValue(KeyAPIKey)
		return
	}
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetMaxResults returns how many videos one search fetches
func (s *Settings) GetMaxResults() int {
	value := s.app.Preferences().Int(KeyMaxResults)
	if value <= 0 {
		s.SetMaxResults(DefaultMaxResults)
		return DefaultMaxResults
	}
	return value
}

// SetMaxResults sets how many videos one search fetches
func (s *Settings) SetMaxResults(count int) {
	s.app.Preferences().SetInt(KeyMaxResults, clamp(count, 1, MaxResultsLimit))
}

// GetThumbnailWorkers returns the number of concurrent thumbnail downloads
func (s *Settings) GetThumbnailWorkers() int {
	value := s.app.Preferences().Int(KeyThumbWorkers)
	if value <= 0 {
		s.SetThumbnailWorkers(DefaultThumbWorkers)
		return DefaultThumbWorkers
	}
	return value
}

// SetThumbnailWorkers sets the number of concurrent thumbnail downloads
func (s *Settings) SetThumbnailWorkers(count int) {
	s.app.Preferences().SetInt(KeyThumbWorkers, clamp(count, 1, ThumbWorkersLimit))
}

// GetThumbnailLimit returns how many thumbnails the gallery shows
func (s *Settings) GetThumbnailLimit() int {
	value := s.app.Preferences().Int(KeyThumbLimit)
	if value <= 0 {
		s.SetThumbnailLimit(DefaultThumbLimit)
		return DefaultThumbLimit
	}
	return value
}

// SetThumbnailLimit sets how many thumbnails the gallery shows
func (s *Settings) SetThumbnailLimit(count int) {
	s.app.Preferences().SetInt(KeyThumbLimit, clamp(count, 1, ThumbLimitMax))
}

// GetRequestsPerSecond returns the request pacing for API calls and thumbnail downloads
func (s *Settings) GetRequestsPerSecond() float64 {
	return s.app.Preferences().FloatWithFallback(KeyRequestsPerSec, DefaultRequestsPerSec)
}

// SetRequestsPerSecond sets the API request pacing; zero disables pacing
func (s *Settings) SetRequestsPerSecond(rps float64) {
	if rps < 0 || math.IsNaN(rps) {
		rps = 0
	}
	s.app.Preferences().SetFloat(KeyRequestsPerSec, rps)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
