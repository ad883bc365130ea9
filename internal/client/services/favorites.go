package services

import (
	"context"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
)

// FavoriteService manages the user's favorites list. Every operation
// requires an active session; without one it fails locally with
// ErrNotAuthenticated and never reaches the network.
type FavoriteService interface {
	Check(ctx context.Context, movieID int64) (bool, error)
	Add(ctx context.Context, fav models.Favorite) error

	// Remove deletes a favorite after confirmation. Returns whether the
	// removal actually happened.
	Remove(ctx context.Context, movieID int64, confirm func() bool) (bool, error)

	List(ctx context.Context) ([]models.Favorite, error)
}

type favoriteService struct {
	Deps
	guard *guard
}

func NewFavoriteService(d Deps) FavoriteService {
	return &favoriteService{Deps: d.withDefaults(), guard: newGuard()}
}

func (f *favoriteService) Check(ctx context.Context, movieID int64) (bool, error) {
	if _, err := f.requireSession(ctx); err != nil {
		return false, err
	}
	fav, err := f.Client.CheckFavorite(ctx, movieID)
	if err != nil {
		return false, f.authFailure(ctx, "check favorite", err)
	}
	return fav, nil
}

func (f *favoriteService) Add(ctx context.Context, fav models.Favorite) error {
	if fav.MovieID == 0 || fav.Title == "" {
		return &ValidationError{Message: "movie id and title are required"}
	}
	if _, err := f.requireSession(ctx); err != nil {
		return err
	}

	op, err := f.guard.begin("add")
	if err != nil {
		return err
	}
	defer f.guard.end("add")

	if err := f.Client.AddFavorite(ctx, fav); err != nil {
		return f.authFailure(ctx, "add favorite", err)
	}
	f.Log.Info(ctx, "favorite added", "op", op, "movie", fav.Title)
	return nil
}

func (f *favoriteService) Remove(ctx context.Context, movieID int64, confirm func() bool) (bool, error) {
	if _, err := f.requireSession(ctx); err != nil {
		return false, err
	}
	if confirm != nil && !confirm() {
		return false, nil
	}

	op, err := f.guard.begin("remove")
	if err != nil {
		return false, err
	}
	defer f.guard.end("remove")

	if err := f.Client.RemoveFavorite(ctx, movieID); err != nil {
		return false, f.authFailure(ctx, "remove favorite", err)
	}
	f.Log.Info(ctx, "favorite removed", "op", op, "movie_id", movieID)
	return true, nil
}

func (f *favoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	if _, err := f.requireSession(ctx); err != nil {
		return nil, err
	}
	favs, err := f.Client.Favorites(ctx)
	if err != nil {
		return nil, f.authFailure(ctx, "list favorites", err)
	}
	return favs, nil
}
