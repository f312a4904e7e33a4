package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget/internal/core"
	"budget/internal/ledger"
	applog "budget/internal/log"
)

// EventPublisher announces ledger changes to other processes.
type EventPublisher interface {
	PublishExpenseCreated(ctx context.Context, id int64, total float64) error
	PublishExpenseDeleted(ctx context.Context, ids []int64, removed int64, total float64) error
	Close() error
}

// ExpenseService validates user input, applies it to the ledger store and
// keeps the running total current after every mutation.
type ExpenseService struct {
	store     ledger.Store
	publisher EventPublisher
	total     float64
	logger    *applog.Logger
}

// NewExpenseService takes ownership of store and publisher; Close releases
// both. publisher may be nil.
func NewExpenseService(store ledger.Store, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
		logger:    applog.ForComponent(applog.ComponentExpense),
	}
}

// AddExpense validates the raw form values and stores a new expense.
// Date, category and amount are required; description may be empty.
func (s *ExpenseService) AddExpense(ctx context.Context, dateRaw, categoryRaw, amountRaw, descriptionRaw string) (core.Expense, error) {
	for _, f := range []struct{ name, value string }{
		{"date", dateRaw},
		{"category", categoryRaw},
		{"amount", amountRaw},
	} {
		if strings.TrimSpace(f.value) == "" {
			return core.Expense{}, &core.ValidationError{Kind: core.MissingField, Field: f.name}
		}
	}

	amount, err := core.ParseAmount(amountRaw)
	if err != nil {
		return core.Expense{}, err
	}

	e := core.Expense{
		Date:        dateRaw,
		Category:    categoryRaw,
		Amount:      amount,
		Description: descriptionRaw,
	}
	id, err := s.store.Insert(ctx, e)
	if err != nil {
		return core.Expense{}, fmt.Errorf("save expense: %w", err)
	}
	e.ID = id

	total, err := s.recomputeTotal(ctx)
	if err != nil {
		return e, err
	}

	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishExpenseCreated(ctx, id, total)
	})

	return e, nil
}

// ListExpenses returns every expense in id order, numbered 1..N for display.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]core.Row, error) {
	expenses, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return core.Number(expenses), nil
}

// DeleteExpense removes the expenses with the given ids. Unknown ids are
// ignored. It returns how many records were removed. If a deletion fails
// the ones before it stay applied and the total still reflects them.
func (s *ExpenseService) DeleteExpense(ctx context.Context, ids ...int64) (int64, error) {
	var removed int64
	for i, id := range ids {
		n, err := s.store.DeleteByID(ctx, id)
		if err != nil {
			err = fmt.Errorf("delete expense %d: %w", id, err)
			return removed, errors.Join(err, s.afterDelete(ctx, ids[:i], removed))
		}
		removed += n
	}
	return removed, s.afterDelete(ctx, ids, removed)
}

// DeleteMatching removes every expense equal to the given values,
// duplicates included. The amount is compared exactly.
func (s *ExpenseService) DeleteMatching(ctx context.Context, date, category string, amount float64, description string) (int64, error) {
	removed, err := s.store.DeleteMatching(ctx, core.Expense{
		Date:        date,
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return 0, fmt.Errorf("delete matching expenses: %w", err)
	}
	return removed, s.afterDelete(ctx, nil, removed)
}

// CurrentTotal returns the sum of all stored amounts, 0 when empty.
func (s *ExpenseService) CurrentTotal(ctx context.Context) (float64, error) {
	return s.recomputeTotal(ctx)
}

// Total returns the total as of the last mutation or CurrentTotal call.
func (s *ExpenseService) Total() float64 {
	return s.total
}

// Snapshot returns the numbered rows and the total together.
func (s *ExpenseService) Snapshot(ctx context.Context) (core.Snapshot, error) {
	rows, err := s.ListExpenses(ctx)
	if err != nil {
		return core.Snapshot{}, err
	}
	total, err := s.recomputeTotal(ctx)
	if err != nil {
		return core.Snapshot{}, err
	}
	return core.Snapshot{Rows: rows, Total: total}, nil
}

func (s *ExpenseService) afterDelete(ctx context.Context, ids []int64, removed int64) error {
	total, err := s.recomputeTotal(ctx)
	if err != nil {
		return err
	}
	if removed == 0 {
		return nil
	}
	s.publish(ctx, func(p EventPublisher) error {
		return p.PublishExpenseDeleted(ctx, ids, removed, total)
	})
	return nil
}

func (s *ExpenseService) recomputeTotal(ctx context.Context) (float64, error) {
	total, err := s.store.SumAmounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum amounts: %w", err)
	}
	s.total = total
	return total, nil
}

// publish never fails the caller: the ledger change is already stored.
func (s *ExpenseService) publish(ctx context.Context, send func(EventPublisher) error) {
	if s.publisher == nil {
		return
	}
	if err := send(s.publisher); err != nil {
		s.logger.WithFields(applog.NewFields().
			WithOperation(applog.OpPublish).
			WithErrorType(applog.ErrorTypeMessaging).
			WithTotal(s.total).
			WithError(err)).
			ErrorContext(ctx, "Failed to publish ledger event")
	}
}

// Close closes both storage and publisher connections
func (s *ExpenseService) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}

	return nil
}
