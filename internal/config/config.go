package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Storage
	Backend string
	DBPath  string

	// Report export
	ExportDir   string
	ExportFile  string
	Currency    string
	// PDFCurrency is the symbol in the report's total line. The report font
	// is cp1252, which has no rupee sign.
	PDFCurrency string

	// Logging
	LogLevel string

	// AMQP change notifications, disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	currency := getEnv("BUDGET_CURRENCY", "₹")
	return &Config{
		Backend: getEnv("BUDGET_BACKEND", "sqlite"),
		DBPath:  getEnv("BUDGET_DB_PATH", "expenses.db"),

		ExportDir:   getEnv("BUDGET_EXPORT_DIR", ""),
		ExportFile:  getEnv("BUDGET_EXPORT_FILE", "expenses_report.pdf"),
		Currency:    currency,
		PDFCurrency: getEnv("BUDGET_PDF_CURRENCY", strings.ReplaceAll(currency, "₹", "Rs.")),

		LogLevel: getEnv("LOG_LEVEL", "warn"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "budget"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "ledger_events"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"sqlite", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "sqlite" && c.DBPath == "" {
		errors = append(errors, "database path cannot be empty when using sqlite backend")
	}

	if c.ExportFile == "" {
		errors = append(errors, "export file name cannot be empty")
	} else if filepath.Base(c.ExportFile) != c.ExportFile {
		errors = append(errors, fmt.Sprintf("export file name '%s' must not contain a directory", c.ExportFile))
	}

	if c.ExportDir != "" {
		if info, err := os.Stat(c.ExportDir); err != nil {
			errors = append(errors, fmt.Sprintf("export directory '%s' is not accessible: %v", c.ExportDir, err))
		} else if !info.IsDir() {
			errors = append(errors, fmt.Sprintf("export directory '%s' is not a directory", c.ExportDir))
		}
	}

	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, err.Error())
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
