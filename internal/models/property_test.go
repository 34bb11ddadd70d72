package models_test

import (
	"time"

	"github.com/rentfolio/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPropertyTrimWhitespace() {
	property := suite.createTestProperty(models.Property{
		Name:    " Maple Street 12\t",
		Address: " Maple Street 12, Springfield ",
		Tenant:  " Jane Bergström ",
		Notes:   " Heating serviced ",
	})

	assert.Equal(suite.T(), "Maple Street 12", property.Name)
	assert.Equal(suite.T(), "Maple Street 12, Springfield", property.Address)
	assert.Equal(suite.T(), "Jane Bergström", property.Tenant)
	assert.Equal(suite.T(), "Heating serviced", property.Notes)
}

func (suite *TestSuiteStandard) TestPropertyNameRequired() {
	err := models.DB.Create(&models.Property{Name: "  "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrPropertyNameRequired)
}

func (suite *TestSuiteStandard) TestPropertyMonthlyRentNegative() {
	err := models.DB.Create(&models.Property{
		Name:        "Negative Rent",
		MonthlyRent: decimal.NewFromFloat(-1),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrMonthlyRentNegative)
}

func (suite *TestSuiteStandard) TestPropertyMonthlyRentRounded() {
	property := suite.createTestProperty(models.Property{
		MonthlyRent: decimal.RequireFromString("950.005"),
	})

	assert.True(suite.T(), property.MonthlyRent.Equal(decimal.RequireFromString("950.01")), "Monthly rent is %s", property.MonthlyRent)
}

func (suite *TestSuiteStandard) TestPropertyRentDueDayDefault() {
	property := suite.createTestProperty(models.Property{})
	assert.Equal(suite.T(), 1, property.RentDueDay)
}

func (suite *TestSuiteStandard) TestPropertyRentDueDayRange() {
	for _, day := range []int{-1, 29, 31} {
		err := models.DB.Create(&models.Property{
			Name:       "Due Day Range",
			RentDueDay: day,
		}).Error
		assert.ErrorIs(suite.T(), err, models.ErrRentDueDayRange, "Due day %d did not error", day)
	}
}

func (suite *TestSuiteStandard) TestPropertyLeaseEndBeforeStart() {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	err := models.DB.Create(&models.Property{
		Name:       "Inverted Lease",
		LeaseStart: &start,
		LeaseEnd:   &end,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrLeaseEndBeforeStart)
}

func (suite *TestSuiteStandard) TestPropertyDeleteCascades() {
	property := suite.createTestProperty(models.Property{})
	other := suite.createTestProperty(models.Property{Name: "Other"})

	_ = suite.createTestTransaction(models.Transaction{PropertyID: property.ID, Amount: decimal.NewFromFloat(10)})
	_ = suite.createTestTransaction(models.Transaction{PropertyID: property.ID, Amount: decimal.NewFromFloat(20)})
	kept := suite.createTestTransaction(models.Transaction{PropertyID: other.ID, Amount: decimal.NewFromFloat(30)})

	err := models.DB.Delete(&property).Error
	assert.Nil(suite.T(), err)

	var transactions []models.Transaction
	err = models.DB.Find(&transactions).Error
	assert.Nil(suite.T(), err)

	if assert.Len(suite.T(), transactions, 1, "Transactions of the deleted property must be deleted with it") {
		assert.Equal(suite.T(), kept.ID, transactions[0].ID)
	}
}

func (suite *TestSuiteStandard) TestPropertyTransactions() {
	property := suite.createTestProperty(models.Property{})

	_ = suite.createTestTransaction(models.Transaction{PropertyID: property.ID, Amount: decimal.NewFromFloat(10)})
	_ = suite.createTestTransaction(models.Transaction{PropertyID: property.ID, Amount: decimal.NewFromFloat(20)})

	assert.Len(suite.T(), property.Transactions(models.DB), 2)
}
