package models

import "errors"

// Shared error taxonomy. Wrap with %w so callers can map to transport codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)
