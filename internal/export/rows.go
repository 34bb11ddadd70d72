// Package export assembles filtered transactions into the row sets used
// by the CSV, XLSX and PDF renderers.
package export

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Order is the sort order of an assembled row set.
type Order int

const (
	// OrderNewestFirst is used for the dashboard and transaction views,
	// where the most recent activity matters most.
	OrderNewestFirst Order = iota

	// OrderChronological is used for formal reports and PDF exports.
	OrderChronological
)

// Labels for the receipt column.
const (
	ReceiptLabelImage = "Image"
	ReceiptLabelFile  = "PDF/File"
)

// unknownProperty is displayed when a transaction references a property
// that no longer exists.
const unknownProperty = "Unknown"

// Row is a single display row of a report or export.
type Row struct {
	Date         time.Time
	Property     string
	Type         string
	Category     string
	Amount       decimal.Decimal
	Description  string
	ReceiptLabel string

	// The full receipt rides along for thumbnail rendering.
	Receipt models.Receipt
}

// Headers returns the column headers for tabular exports.
func Headers() []string {
	return []string{"date", "property", "type", "category", "amount", "description"}
}

// AssembleRows converts transactions into display rows, resolving
// property names and receipt labels, sorted in the requested order.
func AssembleRows(transactions []models.Transaction, properties []models.Property, order Order) []Row {
	names := make(map[uuid.UUID]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}

	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		name, ok := names[t.PropertyID]
		if !ok {
			name = unknownProperty
		}

		rows = append(rows, Row{
			Date:         t.Date,
			Property:     name,
			Type:         typeLabel(t.Type),
			Category:     t.Category,
			Amount:       t.Amount.Round(2),
			Description:  t.Description,
			ReceiptLabel: receiptLabel(t.Receipt),
			Receipt:      t.Receipt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if order == OrderNewestFirst {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].Date.Before(rows[j].Date)
	})

	return rows
}

func typeLabel(t models.TransactionType) string {
	if t == models.TypeIncome {
		return "Income"
	}
	return "Expense"
}

func receiptLabel(r models.Receipt) string {
	if !r.Present() {
		return ""
	}

	if r.IsImage() {
		return ReceiptLabelImage
	}

	return ReceiptLabelFile
}
