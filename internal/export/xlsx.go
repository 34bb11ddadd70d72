package export

import (
	"fmt"
	"io"

	"github.com/rentfolio/backend/internal/ledger"
	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Transactions"

// WriteXLSX serializes the rows into an Excel workbook with a styled
// header and a totals summary below the listing.
func WriteXLSX(w io.Writer, rows []Row, totals ledger.Totals) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", xlsxSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	for i, header := range Headers() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(xlsxSheet, cell, header); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}

	if err := f.SetRowStyle(xlsxSheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date.Format("2006-01-02"),
			row.Property,
			row.Type,
			row.Category,
			row.Amount.InexactFloat64(),
			row.Description,
		}

		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(xlsxSheet, cell, value); err != nil {
				return fmt.Errorf("error writing row: %w", err)
			}
		}
	}

	// Totals below the listing, one blank row in between
	summaryRow := len(rows) + 3
	summary := [][]interface{}{
		{"Income", totals.Income.InexactFloat64()},
		{"Expenses", totals.Expense.InexactFloat64()},
		{"Net", totals.Net.InexactFloat64()},
	}

	for i, pair := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, summaryRow+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow+i)

		if err := f.SetCellValue(xlsxSheet, labelCell, pair[0]); err != nil {
			return fmt.Errorf("error writing summary: %w", err)
		}
		if err := f.SetCellValue(xlsxSheet, valueCell, pair[1]); err != nil {
			return fmt.Errorf("error writing summary: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}

	return nil
}
