package tmdb

import (
	"strconv"
	"strings"
)

// Candidate is one search result from the catalog provider.
type Candidate struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// searchResponse mirrors the provider's search payload.
type searchResponse struct {
	Results []Candidate `json:"results"`
}

// MovieDetails is the provider's detail payload for a single movie.
// PosterURL is filled in by the client from the configured image host and
// the raw poster_path.
type MovieDetails struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	PosterURL   string `json:"-"`
}

// Year returns the release year, taken as the portion of the release date
// before the first separator ("2010-07-16" -> 2010). Returns 0 when the
// date is absent or malformed.
func (d *MovieDetails) Year() int {
	prefix, _, _ := strings.Cut(d.ReleaseDate, "-")
	year, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return year
}
