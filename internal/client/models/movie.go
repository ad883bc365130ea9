package models

import (
	"fmt"
	"strings"
)

// Movie is a single catalog entry as returned in TMDb list responses.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// Year returns the release year, or "TBA" when the release date is unknown.
func (m Movie) Year() string {
	if m.ReleaseDate == "" {
		return "TBA"
	}
	return strings.SplitN(m.ReleaseDate, "-", 2)[0]
}

// Rating returns the vote average formatted to one decimal, or "N/A" when
// the movie has no votes.
func (m Movie) Rating() string {
	if m.VoteAverage == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails extends Movie with the per-movie detail payload.
type MovieDetails struct {
	Movie
	Runtime int     `json:"runtime"`
	Genres  []Genre `json:"genres"`
}

// RuntimeLabel returns e.g. "128 min", or "N/A" when unknown.
func (d MovieDetails) RuntimeLabel() string {
	if d.Runtime == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d min", d.Runtime)
}

// GenreLabel returns the genre names joined with ", ", or "N/A".
func (d MovieDetails) GenreLabel() string {
	if len(d.Genres) == 0 {
		return "N/A"
	}
	names := make([]string, len(d.Genres))
	for i, g := range d.Genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// Credits holds the cast list for a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
}
