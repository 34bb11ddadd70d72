package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/rentfolio/backend/internal/controllers/v1"
	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
	"github.com/rentfolio/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID:  property.Data.ID,
		Type:        models.TypeExpense,
		Date:        types.NewDate(2025, 3, 14),
		Amount:      decimal.RequireFromString("120.50"),
		Category:    "Repairs",
		Description: "Boiler repair",
		Receipt:     models.Receipt{Content: "dGVzdA==", MimeType: "image/png", Note: "Invoice"},
	})

	require.Nil(suite.T(), transaction.Error)
	assert.Equal(suite.T(), "2025-03-14", transaction.Data.Date.String())
	assert.Equal(suite.T(), "Repairs", transaction.Data.Category)
	assert.Equal(suite.T(), "Invoice", transaction.Data.Receipt.Note)
	assert.Empty(suite.T(), transaction.Data.RecurringKind, "Manual transactions carry no provenance tag")
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{})

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		err      error
	}{
		{
			"missing property",
			v1.TransactionEditable{Type: models.TypeExpense, Category: "Repairs"},
			models.ErrPropertyIDRequired,
		},
		{
			"invalid type",
			v1.TransactionEditable{PropertyID: property.Data.ID, Type: "refund", Category: "Repairs"},
			models.ErrTransactionTypeInvalid,
		},
		{
			"missing category",
			v1.TransactionEditable{PropertyID: property.Data.ID, Type: models.TypeExpense},
			models.ErrCategoryRequired,
		},
		{
			"negative amount",
			v1.TransactionEditable{PropertyID: property.Data.ID, Type: models.TypeExpense, Category: "Repairs", Amount: decimal.NewFromFloat(-1)},
			models.ErrAmountNegative,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var tr v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &tr)

			require.Len(t, tr.Data, 1)
			require.NotNil(t, tr.Data[0].Error)
			assert.Equal(t, tt.err.Error(), *tr.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetNewestFirst() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{})

	for _, day := range []int{10, 20, 15} {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			PropertyID: property.Data.ID,
			Date:       types.NewDate(2025, 3, day),
			Amount:     decimal.NewFromInt(int64(day)),
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "2025-03-20", response.Data[0].Date.String())
	assert.Equal(suite.T(), "2025-03-15", response.Data[1].Date.String())
	assert.Equal(suite.T(), "2025-03-10", response.Data[2].Date.String())
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	first := createTestProperty(suite.T(), v1.PropertyEditable{Name: "First"})
	second := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Second"})

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
		Date:       types.NewDate(2025, 2, 10),
		Amount:     decimal.RequireFromString("55.00"),
		Category:   "Repairs",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID: second.Data.ID,
		Type:       models.TypeExpense,
		Date:       types.NewDate(2025, 3, 1),
		Amount:     decimal.RequireFromString("80.00"),
		Category:   "Fees",
	})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("property=%s", first.Data.ID), 2},
		{"property=all", 3},
		{"from=2025-02-01", 2},
		{"to=2025-02-10", 2},
		{"from=2025-02-01&to=2025-02-28", 1},
		{"type=income", 1},
		{"type=expense", 2},
		{"category=Rep", 1},
		{fmt.Sprintf("property=%s&type=income", second.Data.ID), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidFilters() {
	tests := []struct {
		name  string
		query string
	}{
		{"invalid property", "property=NotAUUID"},
		{"invalid type", "type=refund"},
		{"inverted range", "from=2025-03-01&to=2025-01-01"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:   decimal.RequireFromString("100.00"),
		Category: "Repairs",
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"amount":      "120.50",
		"description": "Updated",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(suite.T(), "Updated", updated.Data.Description)
	assert.Equal(suite.T(), "Repairs", updated.Data.Category, "Fields not in the request body must be unchanged")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateReceipt() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.RequireFromString("10.00"),
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"receipt": map[string]string{"content": "dGVzdA==", "mimeType": "image/jpeg"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "dGVzdA==", updated.Data.Receipt.Content)
	assert.Equal(suite.T(), "image/jpeg", updated.Data.Receipt.MimeType)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.RequireFromString("10.00"),
	})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingleInvalid() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
