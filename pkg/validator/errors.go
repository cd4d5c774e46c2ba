package validator

import "errors"

// ErrInvalidParameter is returned (or wrapped) by APIs that surface a failed presence
// check as an error instead of a zero value.
var ErrInvalidParameter = errors.New("validator.invalid_parameter")
