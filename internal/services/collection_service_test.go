package services_test

import (
	"testing"

	"filmshelf/internal/models"
	"filmshelf/internal/repositories"
	"filmshelf/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCollection(t *testing.T, repo repositories.MovieRepository, userID string, titles ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		movie := &models.Movie{Title: title, Year: 2000, UserID: userID}
		require.NoError(t, repo.Create(movie))
		ids = append(ids, movie.ID)
	}
	return ids
}

func TestCollectionService_ListOwned_Rankings(t *testing.T) {
	repo := repositories.NewMockMovieRepository()
	service := services.NewCollectionService(repo, nil)

	seedCollection(t, repo, "user-a", "First Import", "Second Import", "Third Import")

	movies, err := service.ListOwned("user-a")
	require.NoError(t, err)
	require.Len(t, movies, 3)

	// Rank N down to 1 over insertion order: the i-th movie gets N-i.
	for i := range movies {
		require.NotNil(t, movies[i].Ranking)
		assert.Equal(t, len(movies)-i, *movies[i].Ranking)
	}
	assert.Equal(t, "First Import", movies[0].Title)

	// The recomputed ranks are persisted, not just returned
	stored, err := repo.GetByID(movies[0].ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Ranking)
	assert.Equal(t, 3, *stored.Ranking)
}

func TestCollectionService_ListOwned_RanksFollowRemoval(t *testing.T) {
	repo := repositories.NewMockMovieRepository()
	service := services.NewCollectionService(repo, nil)

	ids := seedCollection(t, repo, "user-a", "Movie A", "Movie B", "Movie C")

	_, err := service.ListOwned("user-a")
	require.NoError(t, err)

	// Removing the first movie shifts every remaining rank on the next listing
	require.NoError(t, service.Remove("user-a", ids[0]))

	movies, err := service.ListOwned("user-a")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Movie B", movies[0].Title)
	assert.Equal(t, 2, *movies[0].Ranking)
	assert.Equal(t, 1, *movies[1].Ranking)
}

func TestCollectionService_OwnershipIsolation(t *testing.T) {
	repo := repositories.NewMockMovieRepository()
	service := services.NewCollectionService(repo, nil)

	seedCollection(t, repo, "user-a", "A's Movie")
	seedCollection(t, repo, "user-b", "B's Movie")

	moviesA, err := service.ListOwned("user-a")
	require.NoError(t, err)
	require.Len(t, moviesA, 1)
	assert.Equal(t, "A's Movie", moviesA[0].Title)

	moviesB, err := service.ListOwned("user-b")
	require.NoError(t, err)
	require.Len(t, moviesB, 1)
	assert.Equal(t, "B's Movie", moviesB[0].Title)
}

func TestCollectionService_Rate(t *testing.T) {
	repo := repositories.NewMockMovieRepository()
	service := services.NewCollectionService(repo, nil)

	ids := seedCollection(t, repo, "user-a", "Rated Movie")

	movie, err := service.Rate("user-a", ids[0], 9.0, "great")
	require.NoError(t, err)
	require.NotNil(t, movie.Rating)
	assert.Equal(t, 9.0, *movie.Rating)
	require.NotNil(t, movie.Review)
	assert.Equal(t, "great", *movie.Review)

	// Rating overwrites, never appends
	movie, err = service.Rate("user-a", ids[0], 4.5, "on rewatch, not so great")
	require.NoError(t, err)
	assert.Equal(t, 4.5, *movie.Rating)
	assert.Equal(t, "on rewatch, not so great", *movie.Review)
}

func TestCollectionService_ForbiddenVersusNotFound(t *testing.T) {
	repo := repositories.NewMockMovieRepository()
	service := services.NewCollectionService(repo, nil)

	ids := seedCollection(t, repo, "user-a", "A's Movie")

	// An existing movie owned by someone else is Forbidden, never NotFound
	_, err := service.Rate("user-b", ids[0], 5.0, "not mine")
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.NotErrorIs(t, err, services.ErrMovieNotFound)

	err = service.Remove("user-b", ids[0])
	assert.ErrorIs(t, err, services.ErrForbidden)

	// A missing ID is NotFound regardless of the caller
	_, err = service.Rate("user-b", "no-such-movie", 5.0, "ghost")
	assert.ErrorIs(t, err, services.ErrMovieNotFound)

	err = service.Remove("user-a", "no-such-movie")
	assert.ErrorIs(t, err, services.ErrMovieNotFound)

	// The forbidden attempts changed nothing
	movie, err := repo.GetByID(ids[0])
	require.NoError(t, err)
	assert.Nil(t, movie.Rating)
}

func TestCollectionService_Remove(t *testing.T) {
	repo := repositories.NewMockMovieRepository()
	service := services.NewCollectionService(repo, nil)

	ids := seedCollection(t, repo, "user-a", "Short Lived")

	require.NoError(t, service.Remove("user-a", ids[0]))

	_, err := repo.GetByID(ids[0])
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The title is free for re-import after deletion
	require.NoError(t, repo.Create(&models.Movie{Title: "Short Lived", Year: 2000, UserID: "user-b"}))
}
