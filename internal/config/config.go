package config

import (
	"fmt"
	"os"
	"strconv"

	"medassist/internal/logger"
)

type Config struct {
	// OCR Configuration
	OCREngine     string // "tesseract" or "vision"
	TesseractLang string
	TesseractPSM  int

	// Google Cloud Configuration (vision engine only)
	GoogleCloudProject      string
	GoogleServiceAccountKey string

	// Upload limits
	MaxUploadBytes int64

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		OCREngine:               getEnv("OCR_ENGINE", "tesseract"),
		TesseractLang:           getEnv("TESSERACT_LANG", "eng"),
		TesseractPSM:            getEnvInt("TESSERACT_PSM", 6),
		GoogleCloudProject:      getEnv("GOOGLE_CLOUD_PROJECT", ""),
		GoogleServiceAccountKey: getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", ""),
		MaxUploadBytes:          int64(getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024)),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:           getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:               getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.OCREngine {
	case "tesseract", "vision":
	default:
		return fmt.Errorf("OCR_ENGINE must be \"tesseract\" or \"vision\", got %q", c.OCREngine)
	}
	if c.TesseractPSM < 0 || c.TesseractPSM > 13 {
		return fmt.Errorf("TESSERACT_PSM must be between 0 and 13, got %d", c.TesseractPSM)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
