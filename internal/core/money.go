// Package core provides the expense model, amount parsing and formatting.
package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts user input to an amount.
//
// Surrounding whitespace is ignored. Only decimal notation is read:
// hexadecimal floats, anything else strconv cannot parse, and the
// non-finite values NaN and ±Inf are rejected with NotNumeric. Negative
// and zero amounts are accepted.
//
// Examples:
//	ParseAmount("10.50") -> 10.5, nil
//	ParseAmount(" 3 ")   -> 3, nil
//	ParseAmount("abc")   -> 0, ValidationError{NotNumeric}
//	ParseAmount("0x1p4") -> 0, ValidationError{NotNumeric}
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, newMissingField("amount")
	}
	if isHex(s) {
		return 0, &ValidationError{Kind: NotNumeric, Field: "amount"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, &ValidationError{Kind: NotNumeric, Field: "amount"}
	}
	return v, nil
}

// FormatAmount renders an amount with exactly two decimals, rounding the
// binary value the way %.2f does (2.675 -> "2.67").
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatTotal renders a total the way the running total label shows it.
func FormatTotal(currency string, v float64) string {
	return currency + FormatAmount(v)
}

// Sum adds the expenses' amounts with SumAmounts.
func Sum(expenses []Expense) float64 {
	amounts := make([]float64, len(expenses))
	for i, e := range expenses {
		amounts[i] = e.Amount
	}
	return SumAmounts(amounts)
}

// SumAmounts adds amounts in decimal, each taken at its shortest decimal
// form, so 0.1 + 0.2 is 0.3 and the result does not depend on the order
// of additions. Every ledger store totals through it.
func SumAmounts(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
