package models

import (
	"errors"
	"fmt"

	"github.com/pocket-ledger/backend/internal/types"
	"github.com/pocket-ledger/backend/internal/validate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the spending target for one calendar month.
//
// The month is the primary key, so there is at most one target per month and
// setting a new one replaces the old: latest wins, no history is kept.
type Budget struct {
	Month  types.Month     `json:"month" gorm:"primaryKey" example:"2024-06"`       // The month the target applies to
	Budget decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)" example:"5000"` // The target amount
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.Budget.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// SetBudget validates the raw field values and upserts the target for the
// given month, replacing any existing one. It returns the stored record.
func SetBudget(db *gorm.DB, month, amount string) (Budget, error) {
	if !validate.Required(month, amount) {
		return Budget{}, ErrBudgetFieldsMissing
	}

	parsedMonth, err := types.ParseMonth(month)
	if err != nil {
		return Budget{}, fmt.Errorf("month: %w", validate.ErrInvalidFormat)
	}

	parsedAmount, err := validate.Amount(amount)
	if err != nil {
		return Budget{}, fmt.Errorf("budget: %w", err)
	}

	budget := Budget{
		Month:  parsedMonth,
		Budget: parsedAmount,
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		UpdateAll: true,
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// Budgets returns all stored targets, earliest month first.
func Budgets(db *gorm.DB) ([]Budget, error) {
	var budgets []Budget

	err := db.Order("month ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// BudgetFor returns the target for the given month.
//
// A month without a stored target is not an error, it defaults to a zero
// target for that month.
func BudgetFor(db *gorm.DB, month types.Month) (Budget, error) {
	var budget Budget

	err := db.First(&budget, "month = ?", month).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Budget{Month: month, Budget: decimal.Zero}, nil
	}
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}
