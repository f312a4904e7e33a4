package core

import (
	"strings"
)

type (
	// Expense is a single ledger entry. ID is assigned by the store.
	Expense struct {
		ID          int64
		Date        string // free-form, usually DD-MM-YYYY
		Category    string
		Amount      float64
		Description string
	}

	// Row is an expense as shown to the user. Seq is a 1-based display
	// number recomputed on every listing and is not an identifier.
	Row struct {
		Seq int
		Expense
	}
)

// Validate checks the fields every persisted expense must carry.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return newMissingField("date")
	}
	if strings.TrimSpace(e.Category) == "" {
		return newMissingField("category")
	}
	if !isFinite(e.Amount) {
		return &ValidationError{Kind: NotNumeric, Field: "amount"}
	}
	return nil
}

// SameValues reports whether two expenses match on the four displayed
// fields, ignoring the ID.
func (e Expense) SameValues(o Expense) bool {
	return e.Date == o.Date &&
		e.Category == o.Category &&
		e.Amount == o.Amount &&
		e.Description == o.Description
}

// Number assigns display sequence numbers 1..N in the given order.
func Number(expenses []Expense) []Row {
	rows := make([]Row, len(expenses))
	for i, e := range expenses {
		rows[i] = Row{Seq: i + 1, Expense: e}
	}
	return rows
}
