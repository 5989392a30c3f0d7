package repositories

import "filmshelf/internal/models"

// MovieRepository defines the interface for movie data access.
type MovieRepository interface {
	// Create persists a new movie. Returns ErrDuplicateTitle when a movie
	// with the same title already exists anywhere in the store.
	Create(movie *models.Movie) error
	GetByID(id string) (*models.Movie, error)
	// GetByUser returns all movies owned by the given user in insertion
	// order (oldest first).
	GetByUser(userID string) ([]models.Movie, error)
	Update(movie *models.Movie) error
	// UpdateRankings persists the Ranking field of each given movie in a
	// single transaction.
	UpdateRankings(movies []models.Movie) error
	Delete(id string) error
}
