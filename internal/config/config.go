package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Conversion paths
	InputPath  string
	OutputPath string

	// Logging
	LogLevel  string
	LogFormat string

	// HTTP API
	Port           string
	APIKey         string
	MaxUploadBytes int64
	ResultTTL      time.Duration

	// Watch mode
	WatchDebounce time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		InputPath:  envOr("WORDCOLLECT_INPUT", "words.txt"),
		OutputPath: envOr("WORDCOLLECT_OUTPUT", "words_collection.json"),

		LogLevel:  strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(envOr("LOG_FORMAT", "json")),

		Port:           envOr("PORT", "8090"),
		APIKey:         os.Getenv("WORDCOLLECT_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		ResultTTL:      envDuration("RESULT_TTL", 1*time.Hour),

		WatchDebounce: envDuration("WATCH_DEBOUNCE", 250*time.Millisecond),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 1 * time.Hour
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 250 * time.Millisecond
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return ValidatePaths(c.InputPath, c.OutputPath)
}

// ValidatePaths checks that both paths are set and name different files.
func ValidatePaths(input, output string) error {
	if input == "" {
		return fmt.Errorf("input path is required")
	}
	if output == "" {
		return fmt.Errorf("output path is required")
	}
	if filepath.Clean(input) == filepath.Clean(output) {
		return fmt.Errorf("input and output must differ: %s", input)
	}
	return nil
}

// SlogLevel returns the configured level, Info when unparseable.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", s)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
