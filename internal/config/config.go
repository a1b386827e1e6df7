// Package config reads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultReportQueue   = "expense-reports"
	DefaultMaxCategories = 3
)

// Queue names: lower-case letters, digits and single hyphens, 3 to 63 long.
var queueName = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9]|-[a-z0-9]){2,62}$`)

type Config struct {
	LogLevel string

	// Taxonomy source. At most one of file or table may be set; neither means
	// the built-in rules.
	TaxonomyFile    string
	TaxonomyTable   string
	TableServiceURL string

	// Azure Storage
	BlobServiceURL  string
	QueueServiceURL string
	ReportQueue     string

	MaxCategories int
}

// LoadEnvFile loads a .env file from the working directory when present.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func Load() *Config {
	return &Config{
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),

		TaxonomyFile:    getEnv("TAXONOMY_FILE", ""),
		TaxonomyTable:   getEnv("TAXONOMY_TABLE", ""),
		TableServiceURL: getEnv("TABLE_SERVICE_URL", ""),

		BlobServiceURL:  getEnv("BLOB_SERVICE_URL", ""),
		QueueServiceURL: getEnv("QUEUE_SERVICE_URL", ""),
		ReportQueue:     getEnv("REPORT_QUEUE", DefaultReportQueue),

		MaxCategories: getEnvInt("MAX_CATEGORIES", DefaultMaxCategories),
	}
}

// Validate returns all configuration problems as one error.
func (c *Config) Validate() error {
	var errors []string

	if _, ok := logLevels[c.LogLevel]; !ok {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.MaxCategories < 1 {
		errors = append(errors, fmt.Sprintf("invalid max categories %d: must be at least 1", c.MaxCategories))
	}

	if c.TaxonomyFile != "" && c.TaxonomyTable != "" {
		errors = append(errors, "TAXONOMY_FILE and TAXONOMY_TABLE cannot both be set")
	}
	if c.TaxonomyFile != "" {
		if _, err := os.Stat(c.TaxonomyFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("taxonomy file does not exist: %s", c.TaxonomyFile))
		}
	}
	if c.TaxonomyTable != "" && c.TableServiceURL == "" {
		errors = append(errors, "TABLE_SERVICE_URL is required when TAXONOMY_TABLE is set")
	}

	for _, svc := range []struct{ name, value string }{
		{"TABLE_SERVICE_URL", c.TableServiceURL},
		{"BLOB_SERVICE_URL", c.BlobServiceURL},
		{"QUEUE_SERVICE_URL", c.QueueServiceURL},
	} {
		name, value := svc.name, svc.value
		if value == "" {
			continue
		}
		if u, err := url.Parse(value); err != nil {
			errors = append(errors, fmt.Sprintf("invalid %s '%s': %v", name, value, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid %s scheme '%s': must be 'http' or 'https'", name, u.Scheme))
		}
	}

	if c.QueueServiceURL != "" && !queueName.MatchString(c.ReportQueue) {
		errors = append(errors, fmt.Sprintf("invalid report queue name '%s'", c.ReportQueue))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}

func getEnv(key, defaultValue string) string {
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
