package repositories

import (
	"fmt"
	"sync"

	"filmshelf/internal/models"

	"github.com/google/uuid"
)

// MockMovieRepository is an in-memory implementation of MovieRepository.
// Movies are kept in insertion order, matching the ordering contract of the
// GORM implementation.
type MockMovieRepository struct {
	movies []models.Movie
	mu     sync.RWMutex
}

// NewMockMovieRepository creates a new instance of MockMovieRepository.
func NewMockMovieRepository() *MockMovieRepository {
	return &MockMovieRepository{}
}

// Create adds a new movie, enforcing the global title uniqueness rule.
func (r *MockMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.movies {
		if r.movies[i].Title == movie.Title {
			return fmt.Errorf("movie %q: %w", movie.Title, ErrDuplicateTitle)
		}
	}

	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	r.movies = append(r.movies, *movie)
	return nil
}

// GetByID returns a movie by its ID.
func (r *MockMovieRepository) GetByID(id string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.movies {
		if r.movies[i].ID == id {
			movie := r.movies[i]
			return &movie, nil
		}
	}
	return nil, fmt.Errorf("movie with ID %s: %w", id, ErrNotFound)
}

// GetByUser returns the user's movies in insertion order.
func (r *MockMovieRepository) GetByUser(userID string) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]models.Movie, 0)
	for i := range r.movies {
		if r.movies[i].UserID == userID {
			owned = append(owned, r.movies[i])
		}
	}
	return owned, nil
}

// Update modifies an existing movie.
func (r *MockMovieRepository) Update(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.movies {
		if r.movies[i].ID == movie.ID {
			r.movies[i] = *movie
			return nil
		}
	}
	return fmt.Errorf("movie with ID %s: %w", movie.ID, ErrNotFound)
}

// UpdateRankings persists the Ranking field of each given movie.
func (r *MockMovieRepository) UpdateRankings(movies []models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range movies {
		for i := range r.movies {
			if r.movies[i].ID == m.ID {
				r.movies[i].Ranking = m.Ranking
				break
			}
		}
	}
	return nil
}

// Delete removes a movie by its ID.
func (r *MockMovieRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.movies {
		if r.movies[i].ID == id {
			r.movies = append(r.movies[:i], r.movies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("movie with ID %s: %w", id, ErrNotFound)
}
