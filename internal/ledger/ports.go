package ledger

import (
	"context"

	"budget/internal/core"
)

// Ports implemented by the ledger store backends.
type (
	ExpenseWriter interface {
		// Insert appends the expense and returns the id assigned to it.
		Insert(ctx context.Context, e core.Expense) (id int64, err error)
	}

	// ExpenseLister returns every stored expense ordered by id.
	ExpenseLister interface {
		ListAll(ctx context.Context) ([]core.Expense, error)
	}

	ExpenseDeleter interface {
		// DeleteByID removes the expense with the given id, if any.
		DeleteByID(ctx context.Context, id int64) (removed int64, err error)
		// DeleteMatching removes every expense whose date, category, amount
		// and description equal those of e. The id of e is ignored.
		DeleteMatching(ctx context.Context, e core.Expense) (removed int64, err error)
	}

	// TotalReader aggregates stored amounts. An empty ledger sums to 0.
	TotalReader interface {
		SumAmounts(ctx context.Context) (float64, error)
	}

	Store interface {
		ExpenseWriter
		ExpenseLister
		ExpenseDeleter
		TotalReader
		Close() error
	}
)
