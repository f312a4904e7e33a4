// Package cli provides the command-line front end of the ledger: process
// initialization and the subcommands that drive the expense service.
package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"budget/internal/backend"
	"budget/internal/config"
	applog "budget/internal/log"
)

// SetupLogger initializes structured logging at the configured level.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logCfg := applog.DefaultConfig()
	if level, err := cfg.SlogLevel(); err == nil {
		logCfg.Level = level
	}
	logger := applog.New(logCfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file if there is one.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitBackend opens the configured ledger store and wires the expense service.
func InitBackend(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.WithFields(applog.NewFields().
			WithOperation(applog.OpStartup).
			WithErrorType(applog.ErrorTypeConfiguration).
			WithError(err)).
			ErrorContext(ctx, "Invalid backend configuration", applog.FieldBackend, cfg.Backend)
		return nil, err
	}
	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.WithFields(applog.NewFields().
			WithOperation(applog.OpStartup).
			WithErrorType(applog.ErrorTypeDatabase).
			WithError(err)).
			ErrorContext(ctx, "Failed to initialize backend", applog.FieldBackend, cfg.Backend)
		return nil, fmt.Errorf("initialize backend: %w", err)
	}
	return result, nil
}
