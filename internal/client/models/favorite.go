package models

// Favorite is a movie saved to the user's favorites list. Field names follow
// the backend's favorites table columns.
type Favorite struct {
	MovieID int64   `json:"movie_id"`
	Title   string  `json:"movie_title"`
	Poster  string  `json:"movie_poster"`
	Rating  float64 `json:"movie_rating"`
	Year    string  `json:"movie_year"`
}

// FromMovie builds a Favorite from a catalog entry.
func FromMovie(m Movie) Favorite {
	return Favorite{
		MovieID: m.ID,
		Title:   m.Title,
		Poster:  m.PosterPath,
		Rating:  m.VoteAverage,
		Year:    m.Year(),
	}
}
