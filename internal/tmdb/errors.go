package tmdb

import "errors"

// Common errors
var (
	// ErrUnavailable indicates the catalog provider could not be reached or
	// returned a non-success response. Callers may retry the whole step.
	ErrUnavailable = errors.New("movie catalog unavailable")
	// ErrNotFound indicates the provider does not recognize the movie ID.
	ErrNotFound = errors.New("movie not found in catalog")
)
