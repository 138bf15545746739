package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config contains runtime configuration values.
type Config struct {
	GitHubAPIURL      string
	GitHubToken       string
	SettingsPath      string
	RequestTimeout    time.Duration
	ResponseTimeout   time.Duration
	EnrichMetadata    bool
	DiscordWebhookURL string
	WatchCron         string
	InboxDir          string
	LogLevel          string
}

const (
	defaultAPIURL          = "https://api.github.com"
	defaultRequestTimeout  = 30 * time.Second
	defaultResponseTimeout = 15 * time.Second
	defaultWatchCron       = "*/5 * * * *" // every five minutes
	defaultInboxDir        = "inbox"
	defaultLogLevel        = "info"
	settingsFileName       = "settings.yaml"
)

// Load builds a Config from environment variables with sane defaults. A .env file in the
// working directory, when present, is read first; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	settingsPath, err := defaultSettingsPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GitHubAPIURL:      getenvDefault("GITHUB_API_URL", defaultAPIURL),
		GitHubToken:       getenvDefault("GITHUB_TOKEN", ""),
		SettingsPath:      getenvDefault("LEETPUSH_SETTINGS", settingsPath),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultRequestTimeout),
		ResponseTimeout:   parseDurationDefault("RESPONSE_TIMEOUT", defaultResponseTimeout),
		EnrichMetadata:    parseBoolDefault("ENRICH_METADATA", true),
		DiscordWebhookURL: getenvDefault("DISCORD_WEBHOOK_URL", ""),
		WatchCron:         getenvDefault("WATCH_CRON", defaultWatchCron),
		InboxDir:          getenvDefault("INBOX_DIR", defaultInboxDir),
		LogLevel:          getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ResponseTimeout <= 0 {
		cfg.ResponseTimeout = defaultResponseTimeout
	}

	if _, err := cron.ParseStandard(cfg.WatchCron); err != nil {
		return nil, fmt.Errorf("invalid WATCH_CRON %q: %w", cfg.WatchCron, err)
	}

	return cfg, nil
}

func defaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("locate config dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "leetpush", settingsFileName), nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
