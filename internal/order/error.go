package order

import "errors"

var (
	// ErrInvalidCart marks malformed placement input. It is never retried.
	ErrInvalidCart = errors.New("invalid cart")
	ErrEmptyStatus = errors.New("status must not be empty")

	errOrderNotFound = errors.New("order not found")
)
