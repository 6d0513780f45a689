package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config: AI provider, persistence, session and speech settings
type Config struct {
	Provider string

	// Database selects the gorm driver: "postgres" or "sqlite".
	Database   string
	SQLitePath string

	SessionTTL     time.Duration
	ExclusionLimit int

	TTSAPIKey   string
	TTSVoice    string
	TTSLanguage string

	ExportEnabled  bool
	ExportSchedule string
	ExportDir      string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:       getEnvOrDefault("AI_PROVIDER", "gemini"),
		Database:       getEnvOrDefault("DATABASE_DRIVER", "postgres"),
		SQLitePath:     getEnvOrDefault("SQLITE_PATH", "smarthire.db"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),
		ExclusionLimit: getEnvInt("EXCLUSION_LIMIT", 50),
		TTSAPIKey:      firstNonEmpty(os.Getenv("GOOGLE_CLOUD_API_KEY"), os.Getenv("GEMINI_API_KEY")),
		TTSVoice:       getEnvOrDefault("TTS_VOICE", "it-IT-Neural2-A"),
		TTSLanguage:    getEnvOrDefault("TTS_LANGUAGE", "it-IT"),
		ExportEnabled:  getEnvOrDefault("QUESTION_EXPORT_ENABLED", "false") == "true",
		ExportSchedule: getEnvOrDefault("QUESTION_EXPORT_SCHEDULE", "0 2 * * *"),
		ExportDir:      getEnvOrDefault("QUESTION_EXPORT_DIR", "./exports"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.Database != "postgres" && config.Database != "sqlite" {
		return errors.New("unsupported database driver: " + config.Database + ". Currently supported: postgres, sqlite")
	}
	if config.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
