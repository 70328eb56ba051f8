// Package validate implements the input checks that run before any write to
// the ledger. All functions are pure and never touch the database.
package validate

import (
	"errors"
	"strings"

	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

var ErrInvalidFormat = errors.New("the value does not have the expected format")

// Required reports whether every field is non-empty after trimming whitespace.
func Required(fields ...string) bool {
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}

	return true
}

// Date parses a "YYYY-MM-DD" string into a Date.
func Date(s string) (types.Date, error) {
	date, err := types.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return types.Date{}, ErrInvalidFormat
	}

	return date, nil
}

// Amount parses a string into a decimal amount.
//
// Any finite decimal is accepted, including negative ones. Rejecting negative
// expense amounts is deliberately not done here, refunds are recorded as
// negative expenses.
func Amount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidFormat
	}

	return amount, nil
}
