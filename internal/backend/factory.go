package backend

import (
	"context"
	"fmt"

	"budget/internal/amqp"
	"budget/internal/ledger"
	"budget/internal/ledger/memory"
	applog "budget/internal/log"
	"budget/internal/services"
	"budget/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory. A nil logger uses the default
// slog handler.
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		return &DefaultFactory{logger: applog.ForComponent(applog.ComponentBackend)}
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var store ledger.Store
	switch config.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized SQLite backend",
			applog.FieldBackend, config.Type,
			applog.FieldPath, config.SQLiteDBPath)
		store = repo
	case MemoryBackend:
		store = memory.New()
		f.logger.InfoContext(ctx, "Initialized memory backend", applog.FieldBackend, config.Type)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}

	service := services.NewExpenseService(store, f.newPublisher(ctx, config))

	return &BackendResult{
		Service: service,
		Cleanup: service.Close,
	}, nil
}

// newPublisher connects to AMQP when configured. A broker that cannot be
// reached disables notifications instead of failing startup.
func (f *DefaultFactory) newPublisher(ctx context.Context, config Config) services.EventPublisher {
	if config.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.WithFields(applog.NewFields().
			WithOperation(applog.OpStartup).
			WithErrorType(applog.ErrorTypeMessaging).
			WithError(err)).
			WarnContext(ctx, "Failed to initialize AMQP client, continuing without notifications")
		return nil
	}
	f.logger.InfoContext(ctx, "Initialized AMQP client",
		applog.FieldExchange, config.AMQPExchange,
		applog.FieldQueue, config.AMQPQueue)
	return client
}
