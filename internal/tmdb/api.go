package tmdb

import "context"

// API defines the catalog operations used by the import workflow.
// It exists so services can be tested against a mock catalog.
type API interface {
	SearchMovies(ctx context.Context, query string) ([]Candidate, error)
	MovieDetails(ctx context.Context, id int64) (*MovieDetails, error)
}
