package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Budgets    string `json:"budgets" example:"https://example.com/v1/budgets"`       // URL of budget collection endpoint
	Categories string `json:"categories" example:"https://example.com/v1/categories"` // URL of category totals endpoint
	Expenses   string `json:"expenses" example:"https://example.com/v1/expenses"`     // URL of expense collection endpoint
	Import     string `json:"import" example:"https://example.com/v1/import"`         // URL of import endpoint
	Months     string `json:"months" example:"https://example.com/v1/months"`         // URL of month summary endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:    url + "/v1/budgets",
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Import:     url + "/v1/import",
			Months:     url + "/v1/months",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
