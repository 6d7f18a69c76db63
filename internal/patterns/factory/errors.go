package factory

import "errors"

// Common factory errors.
var (
	// ErrUnknownKind is returned when a factory is asked to create a
	// kind that has no registered constructor.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrKindExists is returned when registering a constructor for a
	// kind that already has one.
	ErrKindExists = errors.New("kind already registered")

	// ErrNilConstructor is returned when registering a nil constructor.
	ErrNilConstructor = errors.New("constructor cannot be nil")
)
