package service

import "errors"

// Service errors.
var (
	// ErrShapeCorrupted is returned when a stored shape payload can no
	// longer be decoded into its shape kind.
	ErrShapeCorrupted = errors.New("stored shape payload is corrupted")
)
