package validator

import "errors"

var (
	// ErrUnknownRule is returned when a rule name is not registered.
	ErrUnknownRule = errors.New("validator: unknown rule")

	// ErrDuplicateRule is returned when registering a name twice.
	ErrDuplicateRule = errors.New("validator: rule already registered")

	// ErrInvalidConstraint is returned for constraints without a name or check.
	ErrInvalidConstraint = errors.New("validator: constraint needs a name and a check")
)
