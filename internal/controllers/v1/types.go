package v1

import (
	"time"

	"github.com/google/uuid"
	rf_uuid "github.com/rentfolio/backend/internal/uuid"
)

type URIID struct {
	ID rf_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// FilterQuery is the shared property and date range filter of the
// transaction, summary and export endpoints.
type FilterQuery struct {
	Property string    `form:"property"`                                 // Property ID or "all". Defaults to all properties.
	From     time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"` // Transactions at and after this date
	To       time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`   // Transactions before and at this date
}

// propertyID resolves the property parameter. uuid.Nil means all properties.
func (f FilterQuery) propertyID() (uuid.UUID, error) {
	if f.Property == "" || f.Property == "all" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(f.Property)
	if err != nil {
		return uuid.Nil, errPropertyParameterInvalid
	}

	return id, nil
}

// bounds returns the date range as the pointers the ledger filter expects.
func (f FilterQuery) bounds() (from, to *time.Time, err error) {
	if !f.From.IsZero() {
		fromDate := time.Date(f.From.Year(), f.From.Month(), f.From.Day(), 0, 0, 0, 0, time.UTC)
		from = &fromDate
	}

	if !f.To.IsZero() {
		toDate := time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 0, 0, 0, 0, time.UTC)
		to = &toDate
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, errRangeInverted
	}

	return from, to, nil
}
