package domain

import "errors"

var (
	// ErrNotFound: the mutation target does not exist in the store.
	ErrNotFound = errors.New("item not found")
	// ErrConflict: an insert collided with an existing id.
	ErrConflict = errors.New("item already exists")
	// ErrValidation: a required field is missing or empty after trimming.
	ErrValidation = errors.New("validation failed")
)
