package config

import (
	"fmt"
	"os"
)

type Config struct {
	DatabaseFile string
	LogLevel     string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// S3 archival (optional; disabled unless endpoint and bucket are set)
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseFile:      getEnv("DATABASE_FILE", "pdf_database.db"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", ""),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	return cfg, nil
}

// ArchiveEnabled reports whether the optional S3 archival step is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Endpoint != "" && c.S3BucketName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
