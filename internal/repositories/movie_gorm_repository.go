package repositories

import (
	"errors"
	"fmt"

	"filmshelf/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

// Create creates a new movie in the database. The unique index on title is
// global, so importing a title that any user already owns fails with
// ErrDuplicateTitle.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}

	var existing models.Movie
	err := r.db.First(&existing, "title = ?", movie.Title).Error
	if err == nil {
		return fmt.Errorf("movie %q: %w", movie.Title, ErrDuplicateTitle)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check title %q: %w", movie.Title, err)
	}

	if err := r.db.Create(movie).Error; err != nil {
		// The unique index is the backstop for a concurrent insert of the
		// same title between the check above and this write.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("movie %q: %w", movie.Title, ErrDuplicateTitle)
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// GetByID retrieves a single movie by its ID from the database.
func (r *GORMMovieRepository) GetByID(id string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get movie by ID %s: %w", id, err)
	}
	return &movie, nil
}

// GetByUser retrieves all movies owned by the given user, oldest first.
func (r *GORMMovieRepository) GetByUser(userID string) ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.Where("user_id = ?", userID).Order("created_at asc").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get movies for user %s: %w", userID, err)
	}
	return movies, nil
}

// Update updates an existing movie in the database.
func (r *GORMMovieRepository) Update(movie *models.Movie) error {
	res := r.db.Save(movie) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound for an update that
		// matched nothing, so we check RowsAffected.
		return fmt.Errorf("movie with ID %s: %w", movie.ID, ErrNotFound)
	}
	return nil
}

// UpdateRankings persists the recomputed Ranking of each movie in one
// transaction. Concurrent listings of the same collection are last-write-wins.
func (r *GORMMovieRepository) UpdateRankings(movies []models.Movie) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range movies {
			if err := tx.Model(&models.Movie{}).Where("id = ?", movies[i].ID).
				Update("ranking", movies[i].Ranking).Error; err != nil {
				return fmt.Errorf("failed to update ranking for movie %s: %w", movies[i].ID, err)
			}
		}
		return nil
	})
}

// Delete removes a movie by its ID from the database. The delete is
// permanent so the title becomes importable again.
func (r *GORMMovieRepository) Delete(id string) error {
	res := r.db.Unscoped().Delete(&models.Movie{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("movie with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
