// Package tmdb is a read-only client for the external movie catalog API.
// It covers the list endpoints used by the home screen, search, and the
// per-movie detail/credits pair.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
)

// Config holds catalog access settings. The API key is sent as a query
// parameter on every request.
type Config struct {
	BaseURL   string // e.g. "https://api.themoviedb.org/3"
	APIKey    string
	ImageBase string // e.g. "https://image.tmdb.org/t/p/w500"
	Timeout   time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type listResponse struct {
	Results []models.Movie `json:"results"`
}

type apiError struct {
	StatusMessage string `json:"status_message"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.StatusMessage != "" {
			return fmt.Errorf("catalog error (%d): %s", resp.StatusCode, apiErr.StatusMessage)
		}
		return fmt.Errorf("catalog error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func (c *Client) list(ctx context.Context, path string, query url.Values) ([]models.Movie, error) {
	var lr listResponse
	if err := c.get(ctx, path, query, &lr); err != nil {
		return nil, err
	}
	return lr.Results, nil
}

func (c *Client) Popular(ctx context.Context) ([]models.Movie, error) {
	return c.list(ctx, "/movie/popular", nil)
}

func (c *Client) TrendingWeek(ctx context.Context) ([]models.Movie, error) {
	return c.list(ctx, "/trending/movie/week", nil)
}

func (c *Client) TopRated(ctx context.Context) ([]models.Movie, error) {
	return c.list(ctx, "/movie/top_rated", nil)
}

func (c *Client) Upcoming(ctx context.Context) ([]models.Movie, error) {
	return c.list(ctx, "/movie/upcoming", nil)
}

func (c *Client) Search(ctx context.Context, query string) ([]models.Movie, error) {
	q := url.Values{}
	q.Set("query", query)
	return c.list(ctx, "/search/movie", q)
}

func (c *Client) Details(ctx context.Context, movieID int64) (models.MovieDetails, error) {
	var d models.MovieDetails
	err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &d)
	return d, err
}

func (c *Client) Credits(ctx context.Context, movieID int64) (models.Credits, error) {
	var cr models.Credits
	err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil, &cr)
	return cr, err
}

// ImageURL resolves a poster/backdrop/profile path against the configured
// image base. Empty paths resolve to an empty string.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return c.cfg.ImageBase + path
}
