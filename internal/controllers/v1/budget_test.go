package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBudget(t *testing.T, b v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if b.Month == "" {
		b.Month = "2024-06"
	}

	if b.Budget == "" {
		b.Budget = "1500"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BudgetEditable{b}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var budget v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &budget)

	if r.Code == http.StatusCreated {
		return budget.Data[0]
	}

	return v1.BudgetResponse{}
}

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBudget(t, v1.BudgetEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BudgetListResponse
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

// TestBudgetsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Month without budget", "/2024-06", http.StatusNoContent, "OPTIONS, GET"},
		{"Not a valid month", "/NotAMonth", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/budgets%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestBudgetsSetReplaces verifies that setting the budget for the same month
// twice keeps only the newest amount.
func (suite *TestSuiteStandard) TestBudgetsSetReplaces() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Month: "2024-06", Budget: "5000"})
	updated := createTestBudget(suite.T(), v1.BudgetEditable{Month: "2024-06", Budget: "7000"})

	assert.True(suite.T(), updated.Data.Budget.Equal(decimalFromString(suite.T(), "7000")))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)

	require.Len(suite.T(), budgets.Data, 1, "Budget list has wrong length")
	assert.True(suite.T(), budgets.Data[0].Budget.Equal(decimalFromString(suite.T(), "7000")))
}

func (suite *TestSuiteStandard) TestBudgetsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                           // expected HTTP status
		testFunc func(t *testing.T, b v1.BudgetCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "budget": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, b v1.BudgetCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field BudgetEditable.budget of type string", *b.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, b v1.BudgetCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *b.Error)
			},
		},
		{
			"Missing month",
			`[{ "budget": "1000" }]`,
			http.StatusBadRequest,
			func(t *testing.T, b v1.BudgetCreateResponse) {
				assert.Equal(t, models.ErrBudgetFieldsMissing.Error(), *b.Data[0].Error)
			},
		},
		{
			"Invalid month",
			`[{ "month": "June 2024", "budget": "1000" }]`,
			http.StatusBadRequest,
			func(t *testing.T, b v1.BudgetCreateResponse) {
				assert.Contains(t, *b.Data[0].Error, "month")
			},
		},
		{
			"Negative budget",
			`[{ "month": "2024-06", "budget": "-1000" }]`,
			http.StatusBadRequest,
			func(t *testing.T, b v1.BudgetCreateResponse) {
				assert.Equal(t, models.ErrBudgetAmountNegative.Error(), *b.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var b v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &b)

			if tt.testFunc != nil {
				tt.testFunc(t, b)
			}
		})
	}
}

// TestBudgetsGetSorted verifies that budgets are sorted by month.
func (suite *TestSuiteStandard) TestBudgetsGetSorted() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Month: "2024-07", Budget: "700"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Month: "2024-05", Budget: "500"})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Month: "2024-06", Budget: "600"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)

	require.Len(suite.T(), budgets.Data, 3, "Budget list has wrong length")

	assert.Equal(suite.T(), "2024-05", budgets.Data[0].Month.String())
	assert.Equal(suite.T(), "2024-06", budgets.Data[1].Month.String())
	assert.Equal(suite.T(), "2024-07", budgets.Data[2].Month.String())
}

// TestBudgetsGetSingle verifies the default for months without a budget.
func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Month: "2024-06", Budget: "1500"})

	tests := []struct {
		name   string
		month  string
		status int
		budget string
	}{
		{"Month with budget", "2024-06", http.StatusOK, "1500"},
		{"Month without budget", "2030-01", http.StatusOK, "0"},
		{"Invalid month", "first-of-june", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.month), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var budget v1.BudgetResponse
			test.DecodeResponse(t, &r, &budget)

			assert.Equal(t, tt.month, budget.Data.Month.String())
			assert.True(t, budget.Data.Budget.Equal(decimalFromString(t, tt.budget)))
		})
	}
}
