package storage

import "errors"

var (
	ErrBatchNotFound       = errors.New("batch not found")
	ErrIncompatibleArchive = errors.New("incompatible archive version")
)
