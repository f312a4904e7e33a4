package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Expense mirrors a row of the expenses table.
type Expense struct {
	ID          int64
	Date        string
	Category    string
	Amount      float64
	Description string
}

type CreateExpenseParams struct {
	Date        string
	Category    string
	Amount      float64
	Description string
}

const createExpense = `INSERT INTO expenses (date, category, amount, description)
VALUES (?, ?, ?, ?)
RETURNING id, date, category, amount, COALESCE(description, '')`

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, createExpense, arg.Date, arg.Category, arg.Amount, arg.Description)
	var i Expense
	err := row.Scan(&i.ID, &i.Date, &i.Category, &i.Amount, &i.Description)
	return i, err
}

const listExpenses = `SELECT id, COALESCE(date, ''), COALESCE(category, ''), COALESCE(amount, 0), COALESCE(description, '')
FROM expenses
ORDER BY id ASC`

func (q *Queries) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var i Expense
		if err := rows.Scan(&i.ID, &i.Date, &i.Category, &i.Amount, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteExpense = `DELETE FROM expenses WHERE id = ?`

func (q *Queries) DeleteExpense(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpense, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type DeleteMatchingExpensesParams struct {
	Date        string
	Category    string
	Amount      float64
	Description string
}

const deleteMatchingExpenses = `DELETE FROM expenses
WHERE date = ? AND category = ? AND amount = ? AND COALESCE(description, '') = ?`

func (q *Queries) DeleteMatchingExpenses(ctx context.Context, arg DeleteMatchingExpensesParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMatchingExpenses, arg.Date, arg.Category, arg.Amount, arg.Description)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listAmounts = `SELECT CAST(COALESCE(amount, 0) AS REAL) FROM expenses ORDER BY id`

func (q *Queries) ListAmounts(ctx context.Context) ([]float64, error) {
	rows, err := q.db.QueryContext(ctx, listAmounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []float64
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return nil, err
		}
		items = append(items, amount)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
