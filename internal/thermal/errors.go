package thermal

import "errors"

// Error categories. Specific validation failures wrap one of these, so
// callers can match with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrParameterOutOfRange  = errors.New("parameter out of range")
)
