package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	PropertyID uuid.UUID              `json:"propertyId" example:"550dc009-cea6-4c12-b2a5-03455eb7636c"` // ID of the property this transaction belongs to
	Type       models.TransactionType `json:"type" example:"expense" enums:"income,expense"`             // Direction of the transaction
	Date       types.Date             `json:"date" example:"2025-03-14"`                                 // The economic date of the transaction

	// The sign of a transaction is carried by its type, the amount is never negative.
	Amount decimal.Decimal `json:"amount" example:"120.50" minimum:"0" multipleOf:"0.01"` // The amount for the transaction

	Category    string `json:"category" example:"Repairs" default:""`            // Category of the transaction
	Description string `json:"description" example:"Boiler repair" default:""`   // A more detailed description
	Receipt     models.Receipt `json:"receipt"`                                  // Optional inline receipt attachment
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		PropertyID:  editable.PropertyID,
		Type:        editable.Type,
		Date:        editable.Date.Time(),
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Receipt:     editable.Receipt,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`             // The transaction itself
	Property string `json:"property" example:"https://example.com/api/v1/properties/550dc009-cea6-4c12-b2a5-03455eb7636c"`           // The property this transaction belongs to
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable

	// Provenance of generated transactions, read-only.
	RecurringKind  string       `json:"recurringKind" example:"rent"`
	RecurringMonth *types.Month `json:"recurringMonth" example:"2025-03-01T00:00:00Z"`

	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			PropertyID:  model.PropertyID,
			Type:        model.Type,
			Date:        types.NewDate(model.Date.Year(), model.Date.Month(), model.Date.Day()),
			Amount:      model.Amount,
			Category:    model.Category,
			Description: model.Description,
			Receipt:     model.Receipt,
		},
		RecurringKind:  model.RecurringKind,
		RecurringMonth: model.RecurringMonth,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Property: fmt.Sprintf("%s/v1/properties/%s", url, model.PropertyID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	FilterQuery

	Type     models.TransactionType `form:"type" filterField:"false"`     // Direction of the transaction
	Category string                 `form:"category" filterField:"false"` // Category contains this string
}
