package httputil

import "errors"

// Request handling errors shared by all resource controllers.
var (
	ErrInvalidBody      = errors.New("the request body contains invalid or un-parseable data, check it and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
