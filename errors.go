package simplehelpers

import "errors"

// ErrInvalidConfig is returned by Config.Validate and NewFromConfig.
var ErrInvalidConfig = errors.New("simplehelpers.invalid_config")
