package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollSchedule      = "@every 10m" // RETRY_TIME of 600 seconds
	DefaultLogFile           = "main.log"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string
	PracticumEndpoint string
	PracticumTimeout  time.Duration // 0 means no client timeout
	PollSchedule      string        // cron spec, see robfig/cron ParseStandard
	TelegramAPIURL    string        // empty means the telebot default
	NotifyRatePerSec  float64
	DatabaseURL       string // optional, enables the delivery journal
	LogLevel          string
	LogFile           string // empty disables file logging
	Environment       string
}

// ConfigError reports secrets that are missing from the environment.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Missing, ", "))
}

// Load reads configuration from environment variables and .env file (if present).
// Secrets are not validated here; call Validate once logging is set up.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	// Secrets are trimmed so that a blank value counts as missing.
	cfg.PracticumToken = strings.TrimSpace(os.Getenv("PRACTICUM_TOKEN"))
	cfg.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN"))
	if cfg.TelegramToken == "" {
		cfg.TelegramToken = strings.TrimSpace(os.Getenv("TOKEN")) // legacy name
	}
	cfg.TelegramChatID = strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumEndpoint
	}

	if raw := os.Getenv("PRACTICUM_TIMEOUT"); raw != "" {
		cfg.PracticumTimeout, err = time.ParseDuration(raw)
		if err != nil || cfg.PracticumTimeout < 0 {
			return nil, fmt.Errorf("invalid PRACTICUM_TIMEOUT %q", raw)
		}
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = DefaultPollSchedule
	}

	cfg.TelegramAPIURL = os.Getenv("TELEGRAM_API_URL")

	cfg.NotifyRatePerSec = 1
	if raw := os.Getenv("NOTIFY_RATE_PER_SEC"); raw != "" {
		cfg.NotifyRatePerSec, err = strconv.ParseFloat(raw, 64)
		if err != nil || cfg.NotifyRatePerSec <= 0 {
			return nil, fmt.Errorf("invalid NOTIFY_RATE_PER_SEC %q", raw)
		}
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	logFile, ok := os.LookupEnv("LOG_FILE")
	if !ok {
		logFile = DefaultLogFile
	}
	cfg.LogFile = logFile

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// CheckTokens reports whether all three secrets needed by the bot are present.
func (c *AppConfig) CheckTokens() bool {
	return len(c.missingTokens()) == 0
}

// Validate returns a *ConfigError naming every missing secret.
func (c *AppConfig) Validate() error {
	if missing := c.missingTokens(); len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// AuthHeader is the Authorization header value for the review API.
func (c *AppConfig) AuthHeader() string {
	return "OAuth " + c.PracticumToken
}

func (c *AppConfig) missingTokens() []string {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	return missing
}
