package validation

import "errors"

// ErrValidation is the sentinel matched by every *Error.
var ErrValidation = errors.New("validation error")
