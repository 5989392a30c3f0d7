package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmshelf/internal/tmdb"
)

func TestOpenDatabase(t *testing.T) {
	db, err := openDatabase("sqlite", "file:main_test?mode=memory&cache=shared")
	require.NoError(t, err)

	// The schema landed
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("movies"))

	// An unknown driver falls back to sqlite rather than failing
	db, err = openDatabase("", "file:main_test_default?mode=memory&cache=shared")
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestNewAppHealthAndAuthGuard(t *testing.T) {
	db, err := openDatabase("sqlite", "file:main_test_app?mode=memory&cache=shared")
	require.NoError(t, err)

	catalog, err := tmdb.NewClient("http://localhost:1", "http://localhost:1", "test-key", zerolog.Nop())
	require.NoError(t, err)

	app, err := newApp(db, catalog, nil, "test_jwt_secret")
	require.NoError(t, err)

	// Health endpoint is public
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Collection routes are not
	req = httptest.NewRequest(http.MethodGet, "/api/v1/movies/", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
