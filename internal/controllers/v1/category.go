package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type CategoryTotal struct {
	Category string          `json:"category" example:"Groceries"` // Name of the category
	Total    decimal.Decimal `json:"total" example:"327.5"`        // Sum of all expenses in the category
}

type CategoryTotalListResponse struct {
	Data  []CategoryTotal `json:"data"`                                                                // List of category totals
	Error *string         `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategoryTotals)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get category totals
// @Description	Returns the total spending per category over all recorded expenses
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryTotalListResponse
// @Failure		500	{object}	CategoryTotalListResponse
// @Router			/v1/categories [get]
func GetCategoryTotals(c *gin.Context) {
	totals, err := models.CategoryTotals(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryTotalListResponse{
			Error: &s,
		})
		return
	}

	data := make([]CategoryTotal, 0, len(totals))
	for _, total := range totals {
		data = append(data, CategoryTotal{
			Category: total.Category,
			Total:    total.Total,
		})
	}

	// The grouping order of the database is not guaranteed
	slices.SortFunc(data, func(a, b CategoryTotal) int {
		return strings.Compare(a.Category, b.Category)
	})

	c.JSON(http.StatusOK, CategoryTotalListResponse{Data: data})
}
