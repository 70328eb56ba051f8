package v1

import (
	"github.com/pocket-ledger/backend/internal/types"
)

type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the expense
}

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2024-06"` // Year and month in YYYY-MM format
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-06"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
