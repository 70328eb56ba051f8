package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters.
//
// Setting a budget for a month that already has one replaces the
// existing amount.
type BudgetEditable struct {
	Month  string `json:"month" example:"2024-06"` // Month the budget applies to, in YYYY-MM format
	Budget string `json:"budget" example:"1500"`   // Budgeted amount. Must not be negative
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/v1/budgets/2024-06"` // The budget itself
}

type Budget struct {
	Month  types.Month     `json:"month" example:"2024-06"` // Month the budget applies to
	Budget decimal.Decimal `json:"budget" example:"1500"`   // Budgeted amount
	Links  BudgetLinks     `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		Month:  model.Month,
		Budget: model.Budget,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.Month),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                            // List of budgets
	Error *string  `json:"error" example:"the budget must not be negative"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                            // List of the set budgets or their respective error
	Error *string          `json:"error" example:"the budget must not be negative"` // The error, if any occurred
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                            // Data for the budget
	Error *string `json:"error" example:"the budget must not be negative"` // The error, if any occurred
}
