package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/services"
)

const castShown = 8

func parseMovieID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id %q", arg)
	}
	return id, nil
}

func (a *App) printMovieLine(m models.Movie) {
	fmt.Fprintf(a.out, "  [%d] %s (%s)  %s\n", m.ID, m.Title, m.Year(), m.Rating())
}

func (a *App) printRail(title string, movies []models.Movie) {
	if len(movies) == 0 {
		return
	}
	fmt.Fprintf(a.out, "%s:\n", title)
	for _, m := range movies {
		a.printMovieLine(m)
	}
}

// Browse renders the home screen: the featured movie followed by the
// trending, top-rated, and upcoming rails. Rail failures are rendered and
// skipped so one broken endpoint does not blank the whole screen.
func (a *App) Browse(ctx context.Context) error {
	featured, err := a.catalog.Featured(ctx)
	if err != nil {
		a.renderError(err)
	} else if featured != nil {
		fmt.Fprintf(a.out, "Featured: %s (%s)  %s\n", featured.Title, featured.Year(), featured.Rating())
		if featured.Overview != "" {
			fmt.Fprintf(a.out, "  %s\n", featured.Overview)
		}
	}

	rails := []struct {
		title string
		fetch func(context.Context) ([]models.Movie, error)
	}{
		{"Trending this week", a.catalog.Trending},
		{"Top rated", a.catalog.TopRated},
		{"Coming soon", a.catalog.Upcoming},
	}
	for _, r := range rails {
		movies, err := r.fetch(ctx)
		if err != nil {
			a.renderError(err)
			continue
		}
		a.printRail(r.title, movies)
	}
	return nil
}

// Search looks up the query in the catalog and lists the matches.
func (a *App) Search(ctx context.Context, query string) error {
	movies, err := a.catalog.Search(ctx, query)
	if err != nil {
		a.renderError(err)
		return err
	}
	if len(movies) == 0 {
		fmt.Fprintln(a.out, "No results.")
		return nil
	}
	a.printRail(fmt.Sprintf("Results for %q", query), movies)
	return nil
}

// Movie shows the detail view: metadata, overview, cast, and, when logged
// in, whether the movie is in the user's favorites.
func (a *App) Movie(ctx context.Context, arg string) error {
	id, err := parseMovieID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	details, credits, err := a.catalog.Details(ctx, id)
	if err != nil {
		a.renderError(err)
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", details.Title, details.Year())
	fmt.Fprintf(a.out, "Rating: %s   Runtime: %s   Genres: %s\n",
		details.Rating(), details.RuntimeLabel(), details.GenreLabel())
	if details.Overview != "" {
		fmt.Fprintln(a.out, details.Overview)
	}
	if details.PosterPath != "" {
		fmt.Fprintf(a.out, "Poster: %s\n", a.images.ImageURL(details.PosterPath))
	}

	if len(credits.Cast) > 0 {
		fmt.Fprintln(a.out, "Cast:")
		cast := credits.Cast
		if len(cast) > castShown {
			cast = cast[:castShown]
		}
		for _, c := range cast {
			if c.Character != "" {
				fmt.Fprintf(a.out, "  %s as %s\n", c.Name, c.Character)
			} else {
				fmt.Fprintf(a.out, "  %s\n", c.Name)
			}
		}
	}

	if a.isLoggedIn() {
		fav, err := a.favorites.Check(ctx, id)
		if err != nil {
			if !errors.Is(err, services.ErrNotAuthenticated) {
				a.renderError(err)
			}
			return nil
		}
		if fav {
			fmt.Fprintln(a.out, "In your favorites.")
		} else {
			fmt.Fprintf(a.out, "Not in your favorites. Use 'fav %d' to add it.\n", id)
		}
	}
	return nil
}
