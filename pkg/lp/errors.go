package lp

import "errors"

// Sentinel errors for malformed problem records
var (
	ErrShapeMismatch  = errors.New("problem shape mismatch")
	ErrInvalidBounds  = errors.New("invalid variable bounds")
	ErrEmptyObjective = errors.New("objective has no variables")
)
