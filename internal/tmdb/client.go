package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is an HTTP client for the TMDB-style movie catalog API.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient creates a new catalog client.
func NewClient(baseURL, imageBaseURL, apiKey string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("catalog API key is required")
	}

	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		imageBaseURL: strings.TrimSuffix(imageBaseURL, "/"),
		apiKey:       apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// doRequest performs an authenticated GET against the provider.
// Transport failures and non-success statuses other than 404 come back as
// ErrUnavailable; 404 comes back as ErrNotFound.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("catalog request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	default:
		c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("catalog returned non-success status")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}

// SearchMovies queries the provider's search endpoint for the given title.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("query", query)

	body, err := c.doRequest(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("%w: failed to decode search response: %v", ErrUnavailable, err)
	}

	c.logger.Debug().Str("query", query).Int("results", len(search.Results)).Msg("catalog search completed")
	return search.Results, nil
}

// MovieDetails fetches the provider's detail record for one movie and
// composes the full poster URL from the configured image host.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("language", "en-US")

	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), params)
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("%w: failed to decode movie details: %v", ErrUnavailable, err)
	}

	if details.PosterPath != "" {
		details.PosterURL = c.imageBaseURL + details.PosterPath
	}

	c.logger.Debug().Int64("id", id).Str("title", details.Title).Msg("fetched movie details")
	return &details, nil
}
