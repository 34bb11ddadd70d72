package v1_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/rentfolio/backend/internal/controllers/v1"
	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
	"github.com/rentfolio/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) createExportTestData() v1.PropertyResponse {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Maple Street 12"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID: property.Data.ID,
		Type:       models.TypeIncome,
		Date:       types.NewDate(2025, 1, 15),
		Amount:     decimal.RequireFromString("950.00"),
		Category:   "Rent",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID:  property.Data.ID,
		Type:        models.TypeExpense,
		Date:        types.NewDate(2025, 3, 2),
		Amount:      decimal.RequireFromString("120.50"),
		Category:    "Repairs",
		Description: "Boiler repair",
	})

	return property
}

func (suite *TestSuiteStandard) TestExportCSV() {
	_ = suite.createExportTestData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "attachment; filename=transactions-")

	records, err := csv.NewReader(r.Body).ReadAll()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 3)

	assert.Equal(suite.T(), []string{"date", "property", "type", "category", "amount", "description"}, records[0])
	assert.Equal(suite.T(), "2025-03-02", records[1][0], "The CSV export is sorted newest first")
	assert.Equal(suite.T(), "Maple Street 12", records[1][1])
	assert.Equal(suite.T(), "120.50", records[1][4])
}

func (suite *TestSuiteStandard) TestExportCSVFiltered() {
	property := suite.createExportTestData()

	other := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Other"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		PropertyID: other.Data.ID,
		Date:       types.NewDate(2025, 2, 1),
		Amount:     decimal.RequireFromString("10.00"),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/export/csv?property=%s", property.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	records, err := csv.NewReader(r.Body).ReadAll()
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), records, 3, "Only the filtered property's transactions are exported")
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	_ = suite.createExportTestData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/xlsx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.Nil(suite.T(), err)
	defer f.Close()

	header, err := f.GetCellValue("Transactions", "A1")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "date", header)
}

func (suite *TestSuiteStandard) TestExportPDF() {
	_ = suite.createExportTestData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/pdf?from=2025-01-01&to=2025-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".pdf")
	assert.True(suite.T(), bytes.HasPrefix(r.Body.Bytes(), []byte("%PDF")))
}

func (suite *TestSuiteStandard) TestExportInvalidFilter() {
	for _, format := range []string{"csv", "xlsx", "pdf"} {
		suite.T().Run(format, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/export/%s?property=NotAUUID", format), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExportOptions() {
	for _, format := range []string{"csv", "xlsx", "pdf"} {
		suite.T().Run(format, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/export/%s", format), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}
