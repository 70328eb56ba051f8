package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters.
//
// Date and Amount are strings on the wire so that validation happens in one
// place and invalid values produce the same errors everywhere.
type ExpenseEditable struct {
	Date        string `json:"date" example:"2024-06-15"`                        // Day the expense occurred, in YYYY-MM-DD format
	Amount      string `json:"amount" example:"12.50"`                           // Amount spent. Negative amounts record refunds
	Category    string `json:"category" example:"Groceries"`                     // Category the expense belongs to
	Description string `json:"description" example:"Weekly shopping" default:""` // Optional note about the expense
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/v1/expenses/17"` // The expense itself
}

type Expense struct {
	ID          uint64          `json:"id" example:"17"`                       // ID of the expense
	Date        types.Date      `json:"date" example:"2024-06-15"`             // Day the expense occurred
	Amount      decimal.Decimal `json:"amount" example:"12.5"`                 // Amount spent
	Category    string          `json:"category" example:"Groceries"`          // Category the expense belongs to
	Description string          `json:"description" example:"Weekly shopping"` // Optional note about the expense
	Links       ExpenseLinks    `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		ID:          model.ID,
		Date:        model.Date,
		Amount:      model.Amount,
		Category:    model.Category,
		Description: model.Description,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%d", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                     // List of expenses
	Error      *string     `json:"error" example:"the amount is not a valid decimal number"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                               // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                     // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the amount is not a valid decimal number"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                    // Data for the expense
	Error *string  `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category string      `form:"category" filterField:"false"` // By category name, glob patterns are supported
	Month    types.Month `form:"month" filterField:"false"`    // Only expenses that occurred in this month
	Offset   uint        `form:"offset" filterField:"false"`   // The offset of the first Expense returned. Defaults to 0.
	Limit    int         `form:"limit" filterField:"false"`    // Maximum number of Expenses to return. Defaults to 50.
}
