package cli

import (
	"context"
	"fmt"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
)

// Fav fetches the movie's catalog entry and adds it to favorites. The
// catalog lookup fills in the title, poster, rating, and year stored
// alongside the id.
func (a *App) Fav(ctx context.Context, arg string) error {
	id, err := parseMovieID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	details, _, err := a.catalog.Details(ctx, id)
	if err != nil {
		a.renderError(err)
		return err
	}

	if err := a.favorites.Add(ctx, models.FromMovie(details.Movie)); err != nil {
		a.renderError(err)
		return err
	}
	fmt.Fprintf(a.out, "Added %q to favorites.\n", details.Title)
	return nil
}

// Unfav removes a movie from favorites after confirmation.
func (a *App) Unfav(ctx context.Context, arg string) error {
	id, err := parseMovieID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	done, err := a.favorites.Remove(ctx, id, func() bool {
		return confirm(a.reader, "Remove from favorites?", a.out)
	})
	if err != nil {
		a.renderError(err)
		return err
	}
	if !done {
		return nil
	}
	fmt.Fprintln(a.out, "Removed from favorites.")
	return nil
}

// Favorites lists the saved favorites.
func (a *App) Favorites(ctx context.Context) error {
	favs, err := a.favorites.List(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}
	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites yet.")
		return nil
	}
	fmt.Fprintln(a.out, "Your favorites:")
	for _, f := range favs {
		rating := "N/A"
		if f.Rating > 0 {
			rating = fmt.Sprintf("%.1f", f.Rating)
		}
		fmt.Fprintf(a.out, "  [%d] %s (%s)  %s\n", f.MovieID, f.Title, f.Year, rating)
	}
	return nil
}
