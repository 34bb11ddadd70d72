package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction. The sign of a
// transaction is carried by its type, never by the amount.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// RecurringKindRent marks transactions created by the rent generator.
const RecurringKindRent = "rent"

// Receipt is an inline attachment for an expense transaction.
type Receipt struct {
	Content  string `json:"content,omitempty"`  // base64 encoded file content
	MimeType string `json:"mimeType,omitempty"` // MIME type of the attached file
	Note     string `json:"note,omitempty"`     // free-text note for the receipt
}

// Present reports whether a receipt is attached.
func (r Receipt) Present() bool {
	return r.Content != ""
}

// IsImage reports whether the attached receipt is an image.
func (r Receipt) IsImage() bool {
	return strings.HasPrefix(r.MimeType, "image/")
}

// Transaction represents a single income or expense entry for a property.
type Transaction struct {
	DefaultModel
	PropertyID  uuid.UUID
	Property    Property `json:"-"`
	Type        TransactionType
	Date        time.Time // the economic date, not the creation time
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string
	Description string
	Receipt     Receipt `gorm:"embedded;embeddedPrefix:receipt_"`

	// Provenance tag for machine-generated transactions. For every
	// property at most one transaction may carry the same kind and month.
	RecurringKind  string       `json:"recurringKind,omitempty"`
	RecurringMonth *types.Month `json:"recurringMonth,omitempty"`
}

// IsGeneratedRent reports whether this transaction was created by the
// rent generator for the given month.
func (t Transaction) IsGeneratedRent(month types.Month) bool {
	return t.RecurringKind == RecurringKindRent &&
		t.RecurringMonth != nil &&
		t.RecurringMonth.Equal(month)
}

// BeforeSave validates the transaction and normalizes its fields.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	t.Receipt.Note = strings.TrimSpace(t.Receipt.Note)

	if t.PropertyID == uuid.Nil {
		return ErrPropertyIDRequired
	}

	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Category == "" {
		return ErrCategoryRequired
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}
	t.Amount = t.Amount.Round(2)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeCreate verifies that the referenced property exists.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	// BeforeSave already rejected an unset property ID, looking it up
	// would stack a second error onto the sentinel
	if t.PropertyID == uuid.Nil {
		return nil
	}

	return tx.First(&Property{}, "id = ?", t.PropertyID).Error
}
