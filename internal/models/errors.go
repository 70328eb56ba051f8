package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrExpenseFieldsMissing = errors.New("date, amount and category are required for an expense")
	ErrBudgetFieldsMissing  = errors.New("month and budget amount are required for a budget")
	ErrBudgetAmountNegative = errors.New("budget amounts must not be negative")
)
