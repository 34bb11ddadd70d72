package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentfolio/backend/internal/httputil"
	"github.com/rentfolio/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPropertyRoutes registers the routes for properties with
// the RouterGroup that is passed.
func RegisterPropertyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProperties)
		r.GET("", GetProperties)
		r.POST("", CreateProperties)
	}

	// Property with ID
	{
		r.OPTIONS("/:id", OptionsPropertyDetail)
		r.GET("/:id", GetProperty)
		r.PATCH("/:id", UpdateProperty)
		r.DELETE("/:id", DeleteProperty)
	}

	// Explicit rent generation
	{
		r.OPTIONS("/:id/rent", OptionsPropertyRent)
		r.POST("/:id/rent", GeneratePropertyRent)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Properties
// @Success		204
// @Router			/v1/properties [options]
func OptionsProperties(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Properties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id} [options]
func OptionsPropertyDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Property{})
}

// @Summary		Get property
// @Description	Returns a specific property
// @Tags			Properties
// @Produce		json
// @Success		200	{object}	PropertyResponse
// @Failure		400	{object}	PropertyResponse
// @Failure		404	{object}	PropertyResponse
// @Failure		500	{object}	PropertyResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id} [get]
func GetProperty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusOK, PropertyResponse{Data: &data})
}

// @Summary		Get properties
// @Description	Returns a list of properties
// @Tags			Properties
// @Produce		json
// @Success		200	{object}	PropertyListResponse
// @Failure		400	{object}	PropertyListResponse
// @Failure		500	{object}	PropertyListResponse
// @Router			/v1/properties [get]
// @Param			name			query	string	false	"Filter by name, fuzzy matched"
// @Param			tenant			query	string	false	"Filter by tenant name, fuzzy matched"
// @Param			rentAutoEnabled	query	bool	false	"Is automatic rent generation enabled?"
func GetProperties(c *gin.Context) {
	var filter PropertyQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PropertyListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model for the query
	model := filter.model()

	q := models.DB.Order("properties.name ASC").Where(&model, queryFields...)

	if filter.Name != "" {
		q = q.Where("properties.name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("properties.name = ''")
	}

	if filter.Tenant != "" {
		q = q.Where("properties.tenant LIKE ?", fmt.Sprintf("%%%s%%", filter.Tenant))
	} else if slices.Contains(setFields, "Tenant") {
		q = q.Where("properties.tenant = ''")
	}

	var properties []models.Property
	err := q.Find(&properties).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Property, 0)
	for _, property := range properties {
		data = append(data, newProperty(c, property))
	}

	c.JSON(http.StatusOK, PropertyListResponse{Data: data})
}

// @Summary		Create properties
// @Description	Creates properties from the list of submitted property data. The response code is the highest response code number that a single property creation would have caused. If it is not equal to 201, at least one property has an error.
// @Tags			Properties
// @Produce		json
// @Success		201			{object}	PropertyCreateResponse
// @Failure		400			{object}	PropertyCreateResponse
// @Failure		500			{object}	PropertyCreateResponse
// @Param			properties	body		[]PropertyEditable	true	"Properties"
// @Router			/v1/properties [post]
func CreateProperties(c *gin.Context) {
	var editables []PropertyEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PropertyCreateResponse{}

	for _, editable := range editables {
		property := editable.model()
		err := models.DB.Create(&property).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newProperty(c, property)
		r.Data = append(r.Data, PropertyResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update property
// @Description	Updates an existing property. Only values to be updated need to be specified.
// @Tags			Properties
// @Accept			json
// @Produce		json
// @Success		200			{object}	PropertyResponse
// @Failure		400			{object}	PropertyResponse
// @Failure		404			{object}	PropertyResponse
// @Failure		500			{object}	PropertyResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			property	body		PropertyEditable	true	"Property"
// @Router			/v1/properties/{id} [patch]
func UpdateProperty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	// Get the property resource
	var property models.Property
	err = models.DB.First(&property, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, PropertyEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update PropertyEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	// The name is required, keep the old one when it is not updated
	if update.Name == "" {
		update.Name = property.Name
	}

	err = models.DB.Model(&property).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusOK, PropertyResponse{Data: &data})
}

// @Summary		Delete property
// @Description	Deletes a property and all its transactions
// @Tags			Properties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/properties/{id} [delete]
func DeleteProperty(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&property).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
