package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/httputil"
	"github.com/rentfolio/backend/internal/ledger"
	"github.com/rentfolio/backend/internal/models"
)

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// Summary is the aggregated dashboard view of the ledger.
type Summary struct {
	Totals     ledger.Totals        `json:"totals"`     // Overall totals for the filtered transactions
	Months     []ledger.MonthTotals `json:"months"`     // Totals per calendar month, in ascending month order
	Properties []PropertySummary    `json:"properties"` // Lifetime totals per property, not limited by the date range
}

// PropertySummary is the aggregate for a single property.
type PropertySummary struct {
	PropertyID uuid.UUID     `json:"propertyId" example:"550dc009-cea6-4c12-b2a5-03455eb7636c"` // ID of the property
	Name       string        `json:"name" example:"Maple Street 12"`                            // Name of the property
	Totals     ledger.Totals `json:"totals"`                                                    // Totals for this property
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Summary `json:"data"`                                                          // The summary data
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns income, expense and net totals for the filtered transactions, overall and per calendar month. The per-property totals always cover the full history of the property, only the property filter limits them.
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
// @Param			property	query	string	false	"Filter by property ID. Defaults to all properties."
// @Param			from		query	string	false	"Transactions at and after this date (YYYY-MM-DD)"
// @Param			to			query	string	false	"Transactions before and at this date (YYYY-MM-DD)"
func GetSummary(c *gin.Context) {
	var filter FilterQuery
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	propertyID, err := filter.propertyID()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	from, to, err := filter.bounds()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	var properties []models.Property
	err = models.DB.Order("properties.name ASC").Find(&properties).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	filtered := ledger.Filter(transactions, propertyID, from, to)

	propertySummaries := make([]PropertySummary, 0, len(properties))
	for _, property := range properties {
		if propertyID != uuid.Nil && property.ID != propertyID {
			continue
		}

		propertySummaries = append(propertySummaries, PropertySummary{
			PropertyID: property.ID,
			Name:       property.Name,
			Totals:     ledger.SumForProperty(transactions, property.ID),
		})
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Data: &Summary{
			Totals:     ledger.Sum(filtered),
			Months:     ledger.GroupByMonth(filtered),
			Properties: propertySummaries,
		},
	})
}
