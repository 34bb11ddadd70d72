package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors for properties
var (
	ErrPropertyNameRequired   = errors.New("the property name must be set")
	ErrMonthlyRentNegative    = errors.New("the monthly rent must not be negative")
	ErrRentDueDayRange        = errors.New("the rent due day must be between 1 and 28")
	ErrLeaseEndBeforeStart    = errors.New("the lease end must not be before the lease start")
	ErrLeaseStartRequired     = errors.New("the lease start must be set to generate rent transactions")
	ErrRentAutoDisabled       = errors.New("automatic rent generation is disabled for this property")
	ErrMonthlyRentNotPositive = errors.New("the monthly rent must be greater than zero to generate rent transactions")
)

// Validation errors for transactions
var (
	ErrTransactionTypeInvalid = errors.New("the transaction type must be income or expense")
	ErrAmountNegative         = errors.New("the amount must not be negative")
	ErrCategoryRequired       = errors.New("the category must be set")
	ErrPropertyIDRequired     = errors.New("the transaction must reference a property")
)
