package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Totals holds the aggregated amounts for a set of transactions.
// All values are rounded to two decimal places.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthTotals are the Totals of a single calendar month.
type MonthTotals struct {
	Month  types.Month `json:"month"`
	Totals Totals      `json:"totals"`
}

// Filter returns the transactions that match the property and date range.
//
// propertyID uuid.Nil means "all properties". The range bounds are
// inclusive and compared against the economic date of the transaction:
// from matches at start of day, to at end of day.
func Filter(transactions []models.Transaction, propertyID uuid.UUID, from, to *time.Time) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))

	for _, t := range transactions {
		if propertyID != uuid.Nil && t.PropertyID != propertyID {
			continue
		}

		if from != nil {
			start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
			if t.Date.Before(start) {
				continue
			}
		}

		if to != nil {
			// End of day: anything from the next day on is excluded
			end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
			if !t.Date.Before(end) {
				continue
			}
		}

		matched = append(matched, t)
	}

	return matched
}

// Sum aggregates the transactions into income, expense and net totals.
// Income and expense are rounded independently, the net is rounded last.
func Sum(transactions []models.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		if t.Type == models.TypeIncome {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	income = income.Round(2)
	expense = expense.Round(2)

	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense).Round(2),
	}
}

// SumForProperty aggregates all transactions of a single property,
// ignoring any date range. Used for the per-property summary cards.
func SumForProperty(transactions []models.Transaction, propertyID uuid.UUID) Totals {
	return Sum(Filter(transactions, propertyID, nil, nil))
}

// GroupByMonth buckets the transactions by the calendar month of their
// economic date and aggregates each bucket. The result is sorted in
// ascending month order. Generated and manual transactions count alike.
func GroupByMonth(transactions []models.Transaction) []MonthTotals {
	buckets := make(map[string][]models.Transaction)
	months := make(map[string]types.Month)

	for _, t := range transactions {
		month := types.MonthOf(t.Date)
		key := month.String()
		buckets[key] = append(buckets[key], t)
		months[key] = month
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]MonthTotals, 0, len(keys))
	for _, key := range keys {
		result = append(result, MonthTotals{
			Month:  months[key],
			Totals: Sum(buckets[key]),
		})
	}

	return result
}
