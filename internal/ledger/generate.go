// Package ledger implements the rent generation and aggregation engine.
//
// All functions are pure: they operate on transaction slices that the
// caller fetched and return results for the caller to persist. This keeps
// the engine reusable for the dashboard, the transaction list and all
// export formats.
package ledger

import (
	"time"

	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
)

// openEndedHorizonMonths bounds rent generation for open-ended leases to
// a rolling near-future horizon instead of generating indefinitely.
const openEndedHorizonMonths = 2

// GenerateRent computes the rent transactions that should exist for the
// property but do not yet, one per month of the lease window.
//
// The returned error is always one of the precondition sentinels
// (models.ErrRentAutoDisabled, models.ErrMonthlyRentNotPositive,
// models.ErrLeaseStartRequired). Callers that run generation implicitly
// treat it as a no-op; callers acting on an explicit user request may
// surface it as an informational message.
//
// Generation is idempotent: a month that already has a transaction with
// a matching provenance tag is skipped, so repeated invocations converge
// to a fixed point. It is also additive-only: shrinking the lease end
// never retracts transactions that were generated earlier.
func GenerateRent(property models.Property, existing []models.Transaction, today time.Time) ([]models.Transaction, error) {
	if !property.RentAutoEnabled {
		return nil, models.ErrRentAutoDisabled
	}

	if !property.MonthlyRent.IsPositive() {
		return nil, models.ErrMonthlyRentNotPositive
	}

	if property.LeaseStart == nil {
		return nil, models.ErrLeaseStartRequired
	}

	end := types.MonthOf(today).AddDate(0, openEndedHorizonMonths).OnDay(types.MaxDueDay)
	if property.LeaseEnd != nil {
		end = *property.LeaseEnd
	}

	// Index the months that already have a generated rent transaction
	generated := make(map[string]bool)
	for _, t := range existing {
		if t.PropertyID == property.ID && t.RecurringKind == models.RecurringKindRent && t.RecurringMonth != nil {
			generated[t.RecurringMonth.String()] = true
		}
	}

	amount := property.MonthlyRent.Round(2)

	var transactions []models.Transaction
	for _, month := range types.MonthsBetween(*property.LeaseStart, end) {
		dueDate := month.OnDay(property.RentDueDay)

		// The last month may only be partially covered by the lease
		if property.LeaseEnd != nil && dueDate.After(*property.LeaseEnd) {
			continue
		}

		if generated[month.String()] {
			continue
		}

		m := month
		transactions = append(transactions, models.Transaction{
			PropertyID:     property.ID,
			Type:           models.TypeIncome,
			Date:           dueDate,
			Amount:         amount,
			Category:       "Rent",
			Description:    month.Label(),
			RecurringKind:  models.RecurringKindRent,
			RecurringMonth: &m,
		})
	}

	return transactions, nil
}
