package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.Date == "" {
		e.Date = "2024-06-15"
	}

	if e.Amount == "" {
		e.Amount = "12.50"
	}

	if e.Category == "" {
		e.Category = "Groceries"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if r.Code == http.StatusCreated {
		return expense.Data[0]
	}

	return v1.ExpenseResponse{}
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	existing := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string // path at the expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No expense with this ID", "4923", http.StatusNotFound},
		{"Not a valid ID", "NotANumber", http.StatusBadRequest},
		{"Expense exists", fmt.Sprint(existing.Data.ID), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestExpensesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing expense", fmt.Sprint(e.Data.ID), http.StatusOK, http.MethodGet},
		{"GET No expense with this ID", "4923", http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notAnID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notAnID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")

			var expense v1.ExpenseResponse
			test.DecodeResponse(t, &r, &expense)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:     "2024-06-01",
		Amount:   "12.50",
		Category: "Groceries",
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:     "2024-06-15",
		Amount:   "9.99",
		Category: "Transport",
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:     "2024-07-01",
		Amount:   "3.50",
		Category: "Groceries",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Month June", "month=2024-06", 2},
		{"Month July", "month=2024-07", 1},
		{"Month without expenses", "month=2020-01", 0},
		{"Category exact", "category=Transport", 1},
		{"Category glob", "category=Gro*", 2},
		{"Category glob no match", "category=Rent*", 0},
		{"Month and category", "month=2024-06&category=Groceries", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ExpenseListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetMonthInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=2024-13", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                            // expected HTTP status
		testFunc func(t *testing.T, e v1.ExpenseCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "amount": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field ExpenseEditable.amount of type string", *e.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *e.Error)
			},
		},
		{
			"Missing category",
			`[{ "date": "2024-06-15", "amount": "12.50" }]`,
			http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Equal(t, models.ErrExpenseFieldsMissing.Error(), *e.Data[0].Error)
			},
		},
		{
			"Invalid date",
			`[{ "date": "15.06.2024", "amount": "12.50", "category": "Groceries" }]`,
			http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Contains(t, *e.Data[0].Error, "date")
			},
		},
		{
			"Invalid amount",
			`[{ "date": "2024-06-15", "amount": "twelve", "category": "Groceries" }]`,
			http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Contains(t, *e.Data[0].Error, "amount")
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e v1.ExpenseCreateResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

// TestExpensesCreateNegativeAmount verifies that refunds can be recorded.
func (suite *TestSuiteStandard) TestExpensesCreateNegativeAmount() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:      "-5.00",
		Category:    "Groceries",
		Description: "Bottle deposit refund",
	})

	assert.True(suite.T(), e.Data.Amount.IsNegative())
}

// TestExpensesDelete verifies all cases for expense deletions.
func (suite *TestSuiteStandard) TestExpensesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing expense", "4923", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				e := createTestExpense(t, v1.ExpenseEditable{})
				tt.id = fmt.Sprint(e.Data.ID)
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestExpensesGetSorted verifies that expenses are returned in insertion order.
func (suite *TestSuiteStandard) TestExpensesGetSorted() {
	e1 := createTestExpense(suite.T(), v1.ExpenseEditable{Date: "2024-06-30", Category: "First created"})
	e2 := createTestExpense(suite.T(), v1.ExpenseEditable{Date: "2024-06-01", Category: "Second created"})
	e3 := createTestExpense(suite.T(), v1.ExpenseEditable{Date: "2024-06-15", Category: "Third created"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses.Data, 3, "Expense list has wrong length")

	assert.Equal(suite.T(), e1.Data.ID, expenses.Data[0].ID)
	assert.Equal(suite.T(), e2.Data.ID, expenses.Data[1].ID)
	assert.Equal(suite.T(), e3.Data.ID, expenses.Data[2].ID)
}

func (suite *TestSuiteStandard) TestExpensesPagination() {
	for i := 0; i < 10; i++ {
		createTestExpense(suite.T(), v1.ExpenseEditable{Category: fmt.Sprint(i)})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &expenses)

			assert.Equal(t, tt.offset, expenses.Pagination.Offset)
			assert.Equal(t, tt.limit, expenses.Pagination.Limit)
			assert.Equal(t, tt.expectedCount, expenses.Pagination.Count)
			assert.Equal(t, tt.expectedTotal, expenses.Pagination.Total)
		})
	}
}
