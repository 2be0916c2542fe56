package physics

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid world config")
	ErrInvalidBounds = errors.New("invalid world bounds")
)
