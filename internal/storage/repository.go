package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"budget/internal/core"
	applog "budget/internal/log"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the file-backed ledger store. It owns one
// connection for its whole lifetime; callers must Close it.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
	logger  *applog.Logger
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Single user, single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
		logger:  applog.ForComponent(applog.ComponentStorage),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements ledger.ExpenseWriter
func (r *SQLiteRepository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	expense, err := r.queries.CreateExpense(ctx, CreateExpenseParams{
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
	})
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}

	r.logger.WithFields(applog.NewFields().
		WithOperation(applog.OpCreate).
		WithExpenseID(expense.ID).
		WithExpense(expense.Date, expense.Category, expense.Amount, expense.Description)).
		InfoContext(ctx, "Expense saved to SQLite")

	return expense.ID, nil
}

// ListAll implements ledger.ExpenseLister
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Expense, error) {
	dbExpenses, err := r.queries.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	expenses := make([]core.Expense, len(dbExpenses))
	for i, e := range dbExpenses {
		expenses[i] = core.Expense{
			ID:          e.ID,
			Date:        e.Date,
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
		}
	}

	return expenses, nil
}

// DeleteByID implements ledger.ExpenseDeleter
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	removed, err := r.queries.DeleteExpense(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete expense %d: %w", id, err)
	}

	r.logger.WithFields(applog.NewFields().
		WithOperation(applog.OpDelete).
		WithExpenseID(id).
		WithRemoved(removed)).
		InfoContext(ctx, "Expense deleted from SQLite")
	return removed, nil
}

// DeleteMatching implements ledger.ExpenseDeleter
func (r *SQLiteRepository) DeleteMatching(ctx context.Context, e core.Expense) (int64, error) {
	removed, err := r.queries.DeleteMatchingExpenses(ctx, DeleteMatchingExpensesParams{
		Date:        e.Date,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
	})
	if err != nil {
		return 0, fmt.Errorf("delete matching expenses: %w", err)
	}

	r.logger.WithFields(applog.NewFields().
		WithOperation(applog.OpDelete).
		WithExpense(e.Date, e.Category, e.Amount, e.Description).
		WithRemoved(removed)).
		InfoContext(ctx, "Matching expenses deleted from SQLite")
	return removed, nil
}

// SumAmounts implements ledger.TotalReader. The amounts are added with
// core.SumAmounts so both stores report the same total for the same data.
func (r *SQLiteRepository) SumAmounts(ctx context.Context) (float64, error) {
	amounts, err := r.queries.ListAmounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum amounts: %w", err)
	}
	return core.SumAmounts(amounts), nil
}
