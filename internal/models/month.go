package models

import (
	"fmt"

	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tier classifies the remaining budget of a month relative to its target.
type Tier string

const (
	TierOK      Tier = "OK"
	TierWarning Tier = "WARNING"
	TierOver    Tier = "OVER"
)

// warningShare is the share of the target below which the remaining budget
// is classified as TierWarning.
var warningShare = decimal.NewFromFloat(0.2)

// MonthSummary is the spending summary for one month.
type MonthSummary struct {
	Month     types.Month     `json:"month" example:"2024-06"`    // The month the summary is for
	Budget    decimal.Decimal `json:"budget" example:"5000"`      // The target for the month, zero when none is set
	Spent     decimal.Decimal `json:"spent" example:"1273.5"`     // Sum of all expense amounts in the month
	Remaining decimal.Decimal `json:"remaining" example:"3726.5"` // Budget minus Spent. Negative when overdrawn
	Tier      Tier            `json:"tier" example:"OK"`          // OK, WARNING or OVER
}

// CategoryTotal is the summed amount for one expense category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"327.84"`
}

// TotalSpent returns the sum of all expense amounts within the given month.
// Months without any expenses sum to zero.
func TotalSpent(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("expenses").
		Where("strftime('%Y-%m', date) = ?", month.String()).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses for %s failed: %w", month, err)
	}

	return sum.Decimal, nil
}

// Summary computes the budget utilization for the given month.
//
// The tier rules are evaluated top to bottom:
//
//  1. Remaining < 0 means the month is overdrawn: OVER
//  2. Remaining below 20% of the target: WARNING
//  3. everything else: OK
//
// A month with a zero target and no spending has zero remaining, which both
// rules reject, so it is OK without being a special case.
func Summary(db *gorm.DB, month types.Month) (MonthSummary, error) {
	budget, err := BudgetFor(db, month)
	if err != nil {
		return MonthSummary{}, err
	}

	spent, err := TotalSpent(db, month)
	if err != nil {
		return MonthSummary{}, err
	}

	remaining := budget.Budget.Sub(spent)

	tier := TierOK
	switch {
	case remaining.IsNegative():
		tier = TierOver
	case remaining.LessThan(budget.Budget.Mul(warningShare)):
		tier = TierWarning
	}

	return MonthSummary{
		Month:     month,
		Budget:    budget.Budget,
		Spent:     spent,
		Remaining: remaining,
		Tier:      tier,
	}, nil
}

// CategoryTotals groups all expenses by category and sums their amounts.
//
// The result is empty when there are no expenses at all. The grouping order
// is not a contract, consumers that need determinism sort for themselves.
func CategoryTotals(db *gorm.DB) ([]CategoryTotal, error) {
	totals := make([]CategoryTotal, 0)

	err := db.Table("expenses").
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating expenses by category failed: %w", err)
	}

	return totals, nil
}
