package services

import (
	"errors"
	"fmt"
	"log"

	"filmshelf/internal/models"
	"filmshelf/internal/repositories"
	"filmshelf/pkg/rabbitmq"
)

// CollectionService handles business logic for a user's movie collection.
type CollectionService struct {
	movieRepo repositories.MovieRepository
	mqClient  *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(movieRepo repositories.MovieRepository, mqClient *rabbitmq.Client) *CollectionService {
	return &CollectionService{
		movieRepo: movieRepo,
		mqClient:  mqClient,
	}
}

// ListOwned returns all movies owned by the user and, as a side effect,
// recomputes and persists each movie's ranking: rank N for the first movie
// down to 1 for the last, over the collection in insertion order. Ranking
// therefore tracks insertion order, not rating.
func (s *CollectionService) ListOwned(userID string) ([]models.Movie, error) {
	movies, err := s.movieRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	for i := range movies {
		rank := len(movies) - i
		movies[i].Ranking = &rank
	}
	if len(movies) > 0 {
		if err := s.movieRepo.UpdateRankings(movies); err != nil {
			return nil, fmt.Errorf("failed to persist rankings: %w", err)
		}
	}
	return movies, nil
}

// getOwned fetches a movie and enforces ownership. A missing ID is
// ErrMovieNotFound; an ID owned by someone else is ErrForbidden.
func (s *CollectionService) getOwned(userID, movieID string) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(movieID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMovieNotFound, movieID)
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie.UserID != userID {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, movieID)
	}
	return movie, nil
}

// Rate overwrites the rating and review of a movie the user owns.
func (s *CollectionService) Rate(userID, movieID string, rating float64, review string) (*models.Movie, error) {
	movie, err := s.getOwned(userID, movieID)
	if err != nil {
		return nil, err
	}

	movie.Rating = &rating
	movie.Review = &review
	if err := s.movieRepo.Update(movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	s.publishEvent("movie.rated", map[string]interface{}{
		"movieID": movie.ID,
		"userID":  userID,
		"rating":  rating,
	})
	return movie, nil
}

// Remove deletes a movie the user owns.
func (s *CollectionService) Remove(userID, movieID string) error {
	movie, err := s.getOwned(userID, movieID)
	if err != nil {
		return err
	}

	if err := s.movieRepo.Delete(movie.ID); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	s.publishEvent("movie.removed", map[string]interface{}{
		"movieID": movie.ID,
		"userID":  userID,
		"title":   movie.Title,
	})
	return nil
}

// publishEvent publishes a movie lifecycle event. Publication failures are
// logged, never surfaced: events are ancillary to the operation itself.
func (s *CollectionService) publishEvent(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishMovieEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
