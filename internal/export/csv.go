package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes the rows as RFC 4180 CSV with a header row.
// Quoting of fields containing delimiters, quotes or newlines is
// handled by encoding/csv.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Headers()); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			row.Property,
			row.Type,
			row.Category,
			row.Amount.StringFixed(2),
			row.Description,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
