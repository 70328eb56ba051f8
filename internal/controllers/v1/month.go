package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Month struct {
	Month     types.Month     `json:"month" example:"2024-06"` // The month the summary is for
	Budget    decimal.Decimal `json:"budget" example:"1000"`   // Budgeted amount for the month
	Spent     decimal.Decimal `json:"spent" example:"850"`     // Sum of all expenses in the month
	Remaining decimal.Decimal `json:"remaining" example:"150"` // Budget minus spent
	Tier      models.Tier     `json:"tier" example:"WARNING"`  // One of OK, WARNING, OVER
}

func newMonth(summary models.MonthSummary) Month {
	return Month{
		Month:     summary.Month,
		Budget:    summary.Budget,
		Spent:     summary.Spent,
		Remaining: summary.Remaining,
		Tier:      summary.Tier,
	}
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                            // Data for the month
	Error *string `json:"error" example:"month must be in YYYY-MM format"` // The error, if any occurred
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month summary
// @Description	Returns budget, spending and tier for a month. Defaults to the current month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	err := c.ShouldBind(&query)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month := query.Month
	if month.IsZero() {
		month = types.MonthOf(time.Now())
	}

	summary, err := models.Summary(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(summary)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
