package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/rentfolio/backend/internal/controllers/v1"
	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
	"github.com/rentfolio/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createSummaryTestData() (first, second v1.PropertyResponse) {
	first = createTestProperty(suite.T(), v1.PropertyEditable{Name: "First"})
	second = createTestProperty(suite.T(), v1.PropertyEditable{Name: "Second"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID: first.Data.ID,
		Type:       models.TypeIncome,
		Date:       types.NewDate(2025, 1, 15),
		Amount:     decimal.RequireFromString("950.00"),
		Category:   "Rent",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID: first.Data.ID,
		Type:       models.TypeExpense,
		Date:       types.NewDate(2025, 1, 20),
		Amount:     decimal.RequireFromString("120.50"),
		Category:   "Repairs",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID: second.Data.ID,
		Type:       models.TypeIncome,
		Date:       types.NewDate(2025, 2, 1),
		Amount:     decimal.RequireFromString("720.00"),
		Category:   "Rent",
	})

	return first, second
}

func (suite *TestSuiteStandard) TestSummary() {
	_, _ = suite.createSummaryTestData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Totals.Income.Equal(decimal.RequireFromString("1670.00")), "Income is %s", response.Data.Totals.Income)
	assert.True(suite.T(), response.Data.Totals.Expense.Equal(decimal.RequireFromString("120.50")))
	assert.True(suite.T(), response.Data.Totals.Net.Equal(decimal.RequireFromString("1549.50")))

	require.Len(suite.T(), response.Data.Months, 2)
	assert.True(suite.T(), response.Data.Months[0].Month.Equal(types.NewMonth(2025, 1)), "Months must be in ascending order")
	assert.True(suite.T(), response.Data.Months[0].Totals.Net.Equal(decimal.RequireFromString("829.50")))

	require.Len(suite.T(), response.Data.Properties, 2)
	assert.Equal(suite.T(), "First", response.Data.Properties[0].Name)
	assert.True(suite.T(), response.Data.Properties[0].Totals.Net.Equal(decimal.RequireFromString("829.50")))
	assert.True(suite.T(), response.Data.Properties[1].Totals.Net.Equal(decimal.RequireFromString("720.00")))
}

func (suite *TestSuiteStandard) TestSummaryFiltered() {
	first, second := suite.createSummaryTestData()

	tests := []struct {
		name   string
		query  string
		income string
	}{
		{"single property", fmt.Sprintf("property=%s", first.Data.ID), "950.00"},
		{"date range", "from=2025-02-01&to=2025-02-28", "720.00"},
		{"property and range", fmt.Sprintf("property=%s&from=2025-02-01", second.Data.ID), "720.00"},
		{"empty result", "from=2030-01-01", "0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/summary?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SummaryResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Data)
			assert.True(t, response.Data.Totals.Income.Equal(decimal.RequireFromString(tt.income)), "Income is %s", response.Data.Totals.Income)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryPropertyTotalsIgnoreDateRange() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "First"})

	for _, month := range []time.Month{time.January, time.February} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			PropertyID: property.Data.ID,
			Type:       models.TypeIncome,
			Date:       types.NewDate(2025, month, 15),
			Amount:     decimal.RequireFromString("950.00"),
			Category:   "Rent",
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?from=2025-02-01&to=2025-02-28", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Totals.Income.Equal(decimal.RequireFromString("950.00")), "Overall totals respect the date range, income is %s", response.Data.Totals.Income)

	require.Len(suite.T(), response.Data.Properties, 1)
	assert.True(suite.T(), response.Data.Properties[0].Totals.Income.Equal(decimal.RequireFromString("1900.00")), "Property cards cover the full history, income is %s", response.Data.Properties[0].Totals.Income)
}

func (suite *TestSuiteStandard) TestSummaryFilteredProperty() {
	first, _ := suite.createSummaryTestData()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/summary?property=%s", first.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Properties, 1, "Only the filtered property must be included")
	assert.Equal(suite.T(), "First", response.Data.Properties[0].Name)
}

func (suite *TestSuiteStandard) TestSummaryInvalidFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary?property=NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Totals.Net.IsZero())
	assert.Empty(suite.T(), response.Data.Months)
	assert.Empty(suite.T(), response.Data.Properties)
}
