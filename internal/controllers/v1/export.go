package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/backend/internal/export"
	"github.com/rentfolio/backend/internal/httputil"
	"github.com/rentfolio/backend/internal/ledger"
	"github.com/rentfolio/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/csv", httputil.OptionsGet)
	r.GET("/csv", ExportCSV)

	r.OPTIONS("/xlsx", httputil.OptionsGet)
	r.GET("/xlsx", ExportXLSX)

	r.OPTIONS("/pdf", httputil.OptionsGet)
	r.GET("/pdf", ExportPDF)
}

// exportData fetches and assembles the filtered rows for an export.
// On failure it writes the error response and returns ok = false.
func exportData(c *gin.Context, order export.Order) (rows []export.Row, totals ledger.Totals, meta export.ReportMeta, ok bool) {
	var filter FilterQuery
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return rows, totals, meta, false
	}

	propertyID, err := filter.propertyID()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return rows, totals, meta, false
	}

	from, to, err := filter.bounds()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return rows, totals, meta, false
	}

	var properties []models.Property
	err = models.DB.Find(&properties).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return rows, totals, meta, false
	}

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return rows, totals, meta, false
	}

	filtered := ledger.Filter(transactions, propertyID, from, to)

	meta = export.ReportMeta{
		Title:       "Transaction Report",
		RangeLabel:  rangeLabel(filter),
		GeneratedAt: time.Now(),
	}

	return export.AssembleRows(filtered, properties, order), ledger.Sum(filtered), meta, true
}

// rangeLabel describes the active date range filter for report headers.
func rangeLabel(filter FilterQuery) string {
	switch {
	case !filter.From.IsZero() && !filter.To.IsZero():
		return fmt.Sprintf("%s to %s", filter.From.Format("2006-01-02"), filter.To.Format("2006-01-02"))
	case !filter.From.IsZero():
		return fmt.Sprintf("from %s", filter.From.Format("2006-01-02"))
	case !filter.To.IsZero():
		return fmt.Sprintf("until %s", filter.To.Format("2006-01-02"))
	}

	return ""
}

// attachment sets the download headers for an export file.
func attachment(c *gin.Context, extension string) {
	filename := fmt.Sprintf("transactions-%s.%s", time.Now().Format("2006-01-02"), extension)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
}

// @Summary		Export transactions as CSV
// @Description	Exports the filtered transactions as a CSV file, newest first
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export/csv [get]
// @Param			property	query	string	false	"Filter by property ID. Defaults to all properties."
// @Param			from		query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func ExportCSV(c *gin.Context) {
	rows, _, _, ok := exportData(c, export.OrderNewestFirst)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, "csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// @Summary		Export transactions as XLSX
// @Description	Exports the filtered transactions as an Excel workbook with a totals summary, newest first
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export/xlsx [get]
// @Param			property	query	string	false	"Filter by property ID. Defaults to all properties."
// @Param			from		query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func ExportXLSX(c *gin.Context) {
	rows, totals, _, ok := exportData(c, export.OrderNewestFirst)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, rows, totals); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, "xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// @Summary		Export transactions as PDF
// @Description	Exports the filtered transactions as a PDF report in chronological order, including receipt thumbnails
// @Tags			Export
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export/pdf [get]
// @Param			property	query	string	false	"Filter by property ID. Defaults to all properties."
// @Param			from		query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func ExportPDF(c *gin.Context) {
	rows, _, meta, ok := exportData(c, export.OrderChronological)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, rows, meta); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, "pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
