// Package config loads runtime settings from the environment, optionally
// seeded from .env.local and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported generator providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

const (
	DefaultAddr     = ":8080"
	DefaultProvider = ProviderGemini
	DefaultTimeout  = 60 * time.Second
	DefaultWorkers  = 4
	DefaultQueue    = 32
)

// ErrMissingSetting is returned by Validate when the selected provider lacks
// a required value.
var ErrMissingSetting = errors.New("config: missing setting")

// Config holds everything cmd/api needs to wire the service.
type Config struct {
	Addr     string
	Provider string
	Model    string
	Timeout  time.Duration
	Workers  int
	Queue    int

	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string

	GeminiAPIKey string
	OllamaHost   string

	ThemePrimary string
	ThemeAccent  string
}

// Load reads .env files (unless disabled) and then the process environment.
func Load() (Config, error) {
	if err := LoadDotEnv(".env.local", ".env"); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// LoadDotEnv loads each file in order, skipping missing ones. Variables that
// are already set are left untouched.
func LoadDotEnv(paths ...string) error {
	if dotEnvDisabled() {
		return nil
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", p, err)
		}
		log.Printf("config: loaded env from %s", p)
	}
	return nil
}

func dotEnvDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("MOODSNAP_DOTENV"))) {
	case "0", "false", "off", "no":
		return true
	default:
		return false
	}
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	timeout, err := getDuration("MOODSNAP_TIMEOUT", DefaultTimeout)
	if err != nil {
		return Config{}, err
	}

	workers, err := getPositiveInt("MOODSNAP_WORKERS", DefaultWorkers)
	if err != nil {
		return Config{}, err
	}
	queue, err := getPositiveInt("MOODSNAP_QUEUE", DefaultQueue)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:     getEnv("MOODSNAP_ADDR", DefaultAddr),
		Provider: strings.ToLower(getEnv("MOODSNAP_PROVIDER", DefaultProvider)),
		Model:    getEnv("MOODSNAP_MODEL", ""),
		Timeout:  timeout,
		Workers:  workers,
		Queue:    queue,

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		OAuthTokenURL:     getEnv("OPENAI_OAUTH_TOKEN_URL", ""),
		OAuthClientID:     getEnv("OPENAI_OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OPENAI_OAUTH_CLIENT_SECRET", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		OllamaHost:   getEnv("OLLAMA_HOST", ""),

		ThemePrimary: getEnv("MOODSNAP_THEME_PRIMARY", ""),
		ThemeAccent:  getEnv("MOODSNAP_THEME_ACCENT", ""),
	}, nil
}

// UsesOAuth reports whether client-credentials auth is configured for the
// OpenAI-compatible provider.
func (c Config) UsesOAuth() bool {
	return c.OAuthTokenURL != "" && c.OAuthClientID != ""
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: MOODSNAP_ADDR", ErrMissingSetting)
	}
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" && !c.UsesOAuth() {
			return fmt.Errorf("%w: OPENAI_API_KEY or OPENAI_OAUTH_TOKEN_URL with OPENAI_OAUTH_CLIENT_ID", ErrMissingSetting)
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingSetting)
		}
	case ProviderOllama:
		// The client falls back to localhost.
	default:
		return fmt.Errorf("config: unknown provider %q (want openai, gemini or ollama)", c.Provider)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", key, d)
	}
	return d, nil
}

func getPositiveInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("config: %s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
