package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/backend/internal/models"
	"github.com/rentfolio/backend/internal/types"
	"github.com/shopspring/decimal"
)

type PropertyEditable struct {
	Name    string `json:"name" example:"Maple Street 12"`            // Name of the property
	Address string `json:"address" example:"Maple Street 12, Springfield" default:""` // Street address
	Tenant  string `json:"tenant" example:"Jane Bergström" default:""`                // Name of the current tenant
	Notes   string `json:"notes" example:"Heating serviced 2024" default:""`          // Free-text notes

	LeaseStart *types.Date `json:"leaseStart" example:"2025-01-10"` // First day of the lease
	LeaseEnd   *types.Date `json:"leaseEnd" example:"2025-12-31"`   // Last day of the lease. Omit for an open-ended lease.

	MonthlyRent     decimal.Decimal `json:"monthlyRent" example:"950.00" minimum:"0" multipleOf:"0.01"` // Monthly rent amount
	RentAutoEnabled bool            `json:"rentAutoEnabled" example:"true" default:"false"`             // Generate rent transactions automatically?
	RentDueDay      int             `json:"rentDueDay" example:"3" minimum:"1" maximum:"28"`            // Day of the month the rent is due
}

// model returns the database resource for the API representation of the editable fields
func (editable PropertyEditable) model() models.Property {
	var leaseStart, leaseEnd *time.Time

	if editable.LeaseStart != nil {
		t := editable.LeaseStart.Time()
		leaseStart = &t
	}

	if editable.LeaseEnd != nil {
		t := editable.LeaseEnd.Time()
		leaseEnd = &t
	}

	return models.Property{
		Name:            editable.Name,
		Address:         editable.Address,
		Tenant:          editable.Tenant,
		Notes:           editable.Notes,
		LeaseStart:      leaseStart,
		LeaseEnd:        leaseEnd,
		MonthlyRent:     editable.MonthlyRent,
		RentAutoEnabled: editable.RentAutoEnabled,
		RentDueDay:      editable.RentDueDay,
	}
}

type PropertyLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/properties/550dc009-cea6-4c12-b2a5-03455eb7636c"`              // The property itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?property=550dc009-cea6-4c12-b2a5-03455eb7636c"` // Transactions for this property
	Rent         string `json:"rent" example:"https://example.com/api/v1/properties/550dc009-cea6-4c12-b2a5-03455eb7636c/rent"`         // Rent generation for this property
}

// Property is the representation of a Property in API v1.
type Property struct {
	models.DefaultModel
	PropertyEditable
	Links PropertyLinks `json:"links"`
}

// newProperty returns the API v1 representation of the resource
func newProperty(c *gin.Context, model models.Property) Property {
	url := c.GetString(string(models.DBContextURL))

	var leaseStart, leaseEnd *types.Date

	if model.LeaseStart != nil {
		d := types.NewDate(model.LeaseStart.Year(), model.LeaseStart.Month(), model.LeaseStart.Day())
		leaseStart = &d
	}

	if model.LeaseEnd != nil {
		d := types.NewDate(model.LeaseEnd.Year(), model.LeaseEnd.Month(), model.LeaseEnd.Day())
		leaseEnd = &d
	}

	return Property{
		DefaultModel: model.DefaultModel,
		PropertyEditable: PropertyEditable{
			Name:            model.Name,
			Address:         model.Address,
			Tenant:          model.Tenant,
			Notes:           model.Notes,
			LeaseStart:      leaseStart,
			LeaseEnd:        leaseEnd,
			MonthlyRent:     model.MonthlyRent,
			RentAutoEnabled: model.RentAutoEnabled,
			RentDueDay:      model.RentDueDay,
		},
		Links: PropertyLinks{
			Self:         fmt.Sprintf("%s/v1/properties/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?property=%s", url, model.ID),
			Rent:         fmt.Sprintf("%s/v1/properties/%s/rent", url, model.ID),
		},
	}
}

type PropertyListResponse struct {
	Data  []Property `json:"data"`                                                          // List of properties
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PropertyCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PropertyResponse `json:"data"`                                                          // List of created Properties
}

func (p *PropertyCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PropertyResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PropertyResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Property `json:"data"`                                                          // The Property data, if the request was successful
}

type PropertyQueryFilter struct {
	Name            string `form:"name" filterField:"false"`   // Name of the property, fuzzy matched
	Tenant          string `form:"tenant" filterField:"false"` // Name of the tenant, fuzzy matched
	RentAutoEnabled bool   `form:"rentAutoEnabled"`            // Is automatic rent generation enabled?
}

func (f PropertyQueryFilter) model() models.Property {
	// Name and Tenant are fuzzy matched in the controller function
	return models.Property{
		RentAutoEnabled: f.RentAutoEnabled,
	}
}
