package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/backend/internal/httputil"
	"github.com/rentfolio/backend/internal/ledger"
	"github.com/rentfolio/backend/internal/models"
)

// RegisterRentRoutes registers the routes for implicit rent generation
// with the RouterGroup that is passed.
func RegisterRentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRent)
	r.POST("", GenerateRent)
}

// RentRun is the result of a rent generation run.
type RentRun struct {
	Message      string        `json:"message" example:"2 rent transactions generated"` // Human readable result of the run
	Transactions []Transaction `json:"transactions"`                                    // The rent transactions created by this run
}

type RentRunResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *RentRun `json:"data"`                                                          // The result of the rent generation run
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rent
// @Success		204
// @Router			/v1/rent [options]
func OptionsRent(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rent
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id}/rent [options]
func OptionsPropertyRent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Property{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Generate rent for a property
// @Description	Generates the missing rent transactions for a single property. When generation is not possible, for example because the monthly rent is not set, the response explains why.
// @Tags			Rent
// @Produce		json
// @Success		200	{object}	RentRunResponse
// @Success		201	{object}	RentRunResponse
// @Failure		400	{object}	RentRunResponse
// @Failure		404	{object}	RentRunResponse
// @Failure		500	{object}	RentRunResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id}/rent [post]
func GeneratePropertyRent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	var existing []models.Transaction
	err = models.DB.Where("transactions.property_id = ?", property.ID).Find(&existing).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	transactions, err := ledger.GenerateRent(property, existing, time.Now())
	if err != nil {
		// An explicit request gets an explanation instead of silence
		c.JSON(http.StatusOK, RentRunResponse{
			Data: &RentRun{
				Message:      fmt.Sprintf("no rent transactions were generated: %s", err),
				Transactions: []Transaction{},
			},
		})
		return
	}

	run, err := persistRentRun(c, transactions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	c.JSON(runStatus(run), RentRunResponse{Data: run})
}

// @Summary		Generate rent
// @Description	Generates the missing rent transactions for all properties that have automatic rent generation enabled. Properties where generation is not possible are skipped silently.
// @Tags			Rent
// @Produce		json
// @Success		200	{object}	RentRunResponse
// @Success		201	{object}	RentRunResponse
// @Failure		500	{object}	RentRunResponse
// @Router			/v1/rent [post]
func GenerateRent(c *gin.Context) {
	var properties []models.Property
	err := models.DB.Where(&models.Property{RentAutoEnabled: true}).Find(&properties).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	var existing []models.Transaction
	err = models.DB.Find(&existing).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	today := time.Now()
	var transactions []models.Transaction

	for _, property := range properties {
		generated, err := ledger.GenerateRent(property, existing, today)
		if err != nil {
			// Implicit runs skip properties that are not ready
			continue
		}

		transactions = append(transactions, generated...)
	}

	run, err := persistRentRun(c, transactions)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RentRunResponse{
			Error: &e,
		})
		return
	}

	c.JSON(runStatus(run), RentRunResponse{Data: run})
}

// persistRentRun creates the generated transactions and builds the run result.
func persistRentRun(c *gin.Context, transactions []models.Transaction) (*RentRun, error) {
	created := make([]Transaction, 0, len(transactions))

	for _, transaction := range transactions {
		err := models.DB.Create(&transaction).Error
		if err != nil {
			return nil, err
		}

		created = append(created, newTransaction(c, transaction))
	}

	message := fmt.Sprintf("%d rent transactions generated", len(created))
	if len(created) == 1 {
		message = "1 rent transaction generated"
	}

	return &RentRun{
		Message:      message,
		Transactions: created,
	}, nil
}

// runStatus is 201 when the run created transactions, 200 otherwise.
func runStatus(run *RentRun) int {
	if len(run.Transactions) > 0 {
		return http.StatusCreated
	}

	return http.StatusOK
}
