package solar

import "errors"

var (
	ErrInvalidArea       = errors.New("panel area must be positive")
	ErrInvalidEfficiency = errors.New("panel efficiency must be in (0, 1]")
	ErrInvalidLatitude   = errors.New("latitude must be within [-90, 90] degrees")
)
