package services

import (
	"context"
	"fmt"
	"log"

	"filmshelf/internal/models"
	"filmshelf/internal/repositories"
	"filmshelf/internal/tmdb"
	"filmshelf/pkg/rabbitmq"
)

// ImportService orchestrates the two-step import workflow: search the
// catalog for candidates, then fetch one candidate's details and persist it
// into the user's collection. No workflow state is kept between the two
// steps beyond what the request itself carries.
type ImportService struct {
	catalog   tmdb.API
	movieRepo repositories.MovieRepository
	mqClient  *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewImportService creates a new ImportService.
func NewImportService(catalog tmdb.API, movieRepo repositories.MovieRepository, mqClient *rabbitmq.Client) *ImportService {
	return &ImportService{
		catalog:   catalog,
		movieRepo: movieRepo,
		mqClient:  mqClient,
	}
}

// Search returns catalog candidates for a title query. A tmdb.ErrUnavailable
// failure propagates as-is; retrying is up to the caller.
func (s *ImportService) Search(ctx context.Context, query string) ([]tmdb.Candidate, error) {
	candidates, err := s.catalog.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	return candidates, nil
}

// Import fetches the chosen candidate's details and creates the movie in the
// user's collection. Fails with repositories.ErrDuplicateTitle when the
// title already exists anywhere in the store; nothing is merged. On success
// the created movie is returned so the caller can proceed directly to
// rating it.
func (s *ImportService) Import(ctx context.Context, userID string, tmdbID int64) (*models.Movie, error) {
	details, err := s.catalog.MovieDetails(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie details: %w", err)
	}

	movie := &models.Movie{
		Title:       details.Title,
		Year:        details.Year(),
		Description: details.Overview,
		ImageURL:    details.PosterURL,
		UserID:      userID,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"movieID": movie.ID,
			"userID":  userID,
			"title":   movie.Title,
			"year":    movie.Year,
		}
		if err := s.mqClient.PublishMovieEvent("movie.imported", payload); err != nil {
			log.Printf("Warning: Failed to publish movie.imported event for movie %s: %v", movie.ID, err)
		}
	}

	return movie, nil
}
