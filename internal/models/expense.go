package models

import (
	"fmt"
	"strings"

	"github.com/pocket-ledger/backend/internal/types"
	"github.com/pocket-ledger/backend/internal/validate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending record in the ledger.
//
// Expenses are never updated in place. They are created, listed and deleted,
// and their IDs are assigned by the database and never reused.
type Expense struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement" example:"17"`            // Sequence number of the expense, assigned by the database
	Date        types.Date      `json:"date" example:"2024-06-15"`                                  // Day the expense occurred
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"17.23"`           // Amount of money spent. Negative amounts are refunds
	Category    string          `json:"category" example:"Food"`                                    // Free-form category label
	Description string          `json:"description" example:"Lunch at the place around the corner"` // Optional free-form text
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Date.IsZero() || e.Category == "" {
		return ErrExpenseFieldsMissing
	}

	return nil
}

// CreateExpense validates the raw field values and persists a new expense.
//
// The values arrive exactly as the user typed them. Nothing is written when
// any of them fails validation.
func CreateExpense(db *gorm.DB, date, amount, category, description string) (Expense, error) {
	if !validate.Required(date, amount, category) {
		return Expense{}, ErrExpenseFieldsMissing
	}

	parsedDate, err := validate.Date(date)
	if err != nil {
		return Expense{}, fmt.Errorf("date: %w", err)
	}

	parsedAmount, err := validate.Amount(amount)
	if err != nil {
		return Expense{}, fmt.Errorf("amount: %w", err)
	}

	expense := Expense{
		Date:        parsedDate,
		Amount:      parsedAmount,
		Category:    category,
		Description: description,
	}

	err = db.Create(&expense).Error
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// DeleteExpense deletes the expense with the given ID and returns the number
// of rows affected.
//
// Deleting an ID that does not exist is not an error, it affects zero rows.
// Callers that need "the target must exist" semantics check for themselves.
func DeleteExpense(db *gorm.DB, id uint64) (int64, error) {
	result := db.Delete(&Expense{}, id)
	return result.RowsAffected, result.Error
}

// Expenses returns all expenses ordered by their ID.
func Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.Order("id ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
