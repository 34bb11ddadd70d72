package models

import (
	"strings"
	"time"

	"github.com/rentfolio/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property represents a rental unit that income and expenses are tracked for.
type Property struct {
	DefaultModel
	Name            string
	Address         string
	Tenant          string
	Notes           string
	LeaseStart      *time.Time      // nil means no lease is configured
	LeaseEnd        *time.Time      // nil means the lease is open-ended
	MonthlyRent     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RentAutoEnabled bool
	RentDueDay      int
}

// BeforeSave validates the property and normalizes its fields.
//
// It trims whitespace from all strings, rounds the monthly rent to
// two decimal places and enforces the rent due day range.
func (p *Property) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.Tenant = strings.TrimSpace(p.Tenant)
	p.Notes = strings.TrimSpace(p.Notes)

	if p.Name == "" {
		return ErrPropertyNameRequired
	}

	if p.MonthlyRent.IsNegative() {
		return ErrMonthlyRentNegative
	}
	p.MonthlyRent = p.MonthlyRent.Round(2)

	// An unset due day defaults to the first of the month
	if p.RentDueDay == 0 {
		p.RentDueDay = types.MinDueDay
	}

	if p.RentDueDay < types.MinDueDay || p.RentDueDay > types.MaxDueDay {
		return ErrRentDueDayRange
	}

	if p.LeaseStart != nil {
		start := p.LeaseStart.In(time.UTC)
		p.LeaseStart = &start
	}

	if p.LeaseEnd != nil {
		end := p.LeaseEnd.In(time.UTC)
		p.LeaseEnd = &end

		if p.LeaseStart != nil && p.LeaseEnd.Before(*p.LeaseStart) {
			return ErrLeaseEndBeforeStart
		}
	}

	return nil
}

// AfterDelete cascades the deletion to all transactions of the property.
// Transactions without a property would be orphaned and hidden from all
// views, so they are removed together with it.
func (p *Property) AfterDelete(tx *gorm.DB) error {
	return tx.Where("property_id = ?", p.ID).Delete(&Transaction{}).Error
}

// Transactions returns all transactions for this property.
func (p Property) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(Transaction{PropertyID: p.ID}).Find(&transactions)
	return transactions
}
