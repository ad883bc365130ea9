package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
	"github.com/a1br4h33m/IMDB-Redesign/internal/logging"
)

const (
	railLimit   = 10
	searchLimit = 20
	minQueryLen = 2
)

// catalogAPI is the slice of the catalog client the service depends on.
type catalogAPI interface {
	Popular(ctx context.Context) ([]models.Movie, error)
	TrendingWeek(ctx context.Context) ([]models.Movie, error)
	TopRated(ctx context.Context) ([]models.Movie, error)
	Upcoming(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	Details(ctx context.Context, movieID int64) (models.MovieDetails, error)
	Credits(ctx context.Context, movieID int64) (models.Credits, error)
}

// CatalogService exposes the home-screen rails, search, and the per-movie
// detail view over the read-only catalog API.
type CatalogService interface {
	// Featured returns the first popular movie, or nil when the list is empty.
	Featured(ctx context.Context) (*models.Movie, error)

	Trending(ctx context.Context) ([]models.Movie, error)
	TopRated(ctx context.Context) ([]models.Movie, error)
	Upcoming(ctx context.Context) ([]models.Movie, error)

	// Search trims the query and skips lookups shorter than two characters,
	// returning an empty result instead of calling out.
	Search(ctx context.Context, query string) ([]models.Movie, error)

	Details(ctx context.Context, movieID int64) (models.MovieDetails, models.Credits, error)
}

type catalogService struct {
	api catalogAPI
	log logging.Logger
}

func NewCatalogService(api catalogAPI, log logging.Logger) CatalogService {
	return &catalogService{api: api, log: log}
}

func trim(movies []models.Movie, limit int) []models.Movie {
	if len(movies) > limit {
		return movies[:limit]
	}
	return movies
}

func (c *catalogService) Featured(ctx context.Context) (*models.Movie, error) {
	movies, err := c.api.Popular(ctx)
	if err != nil {
		c.log.Warn(ctx, "featured fetch failed", "err", err)
		return nil, fmt.Errorf("featured: %w", err)
	}
	if len(movies) == 0 {
		return nil, nil
	}
	return &movies[0], nil
}

func (c *catalogService) Trending(ctx context.Context) ([]models.Movie, error) {
	movies, err := c.api.TrendingWeek(ctx)
	if err != nil {
		c.log.Warn(ctx, "trending fetch failed", "err", err)
		return nil, fmt.Errorf("trending: %w", err)
	}
	return trim(movies, railLimit), nil
}

func (c *catalogService) TopRated(ctx context.Context) ([]models.Movie, error) {
	movies, err := c.api.TopRated(ctx)
	if err != nil {
		c.log.Warn(ctx, "top rated fetch failed", "err", err)
		return nil, fmt.Errorf("top rated: %w", err)
	}
	return trim(movies, railLimit), nil
}

func (c *catalogService) Upcoming(ctx context.Context) ([]models.Movie, error) {
	movies, err := c.api.Upcoming(ctx)
	if err != nil {
		c.log.Warn(ctx, "upcoming fetch failed", "err", err)
		return nil, fmt.Errorf("upcoming: %w", err)
	}
	return trim(movies, railLimit), nil
}

func (c *catalogService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return nil, nil
	}
	movies, err := c.api.Search(ctx, query)
	if err != nil {
		c.log.Warn(ctx, "search failed", "query", query, "err", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	return trim(movies, searchLimit), nil
}

func (c *catalogService) Details(ctx context.Context, movieID int64) (models.MovieDetails, models.Credits, error) {
	details, err := c.api.Details(ctx, movieID)
	if err != nil {
		c.log.Warn(ctx, "details fetch failed", "movie", movieID, "err", err)
		return models.MovieDetails{}, models.Credits{}, fmt.Errorf("movie details: %w", err)
	}
	credits, err := c.api.Credits(ctx, movieID)
	if err != nil {
		c.log.Warn(ctx, "credits fetch failed", "movie", movieID, "err", err)
		return models.MovieDetails{}, models.Credits{}, fmt.Errorf("movie credits: %w", err)
	}
	return details, credits, nil
}
