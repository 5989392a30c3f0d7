package repositories

import "errors"

// Common storage errors. Implementations wrap these so callers can classify
// failures with errors.Is without depending on the storage engine.
var (
	// ErrNotFound indicates no record exists for the given identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateTitle indicates a movie with the same title already exists,
	// regardless of which user owns it.
	ErrDuplicateTitle = errors.New("movie title already exists")
)
