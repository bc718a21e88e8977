package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidDate      = errors.New("the date must be formatted as YYYY-MM-DD or RFC 3339")
	ErrEmptyName        = errors.New("the name must not be empty")
)
