package generator

import "errors"

var (
	ErrInvalidCount  = errors.New("invalid problem count")
	ErrInvalidConfig = errors.New("invalid generator config")
	ErrNilSource     = errors.New("nil random source")
)
