// Package api talks to the companion backend: authentication, two-factor
// enrollment, favorites, and profile. Responses use a common
// {success, message, ...} JSON envelope; authenticated calls carry a bearer
// token in the Authorization header.
package api

import (
	"context"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
)

// Client is the backend surface consumed by the client services.
//
// SetToken installs (or clears, with "") the bearer credential used by every
// authenticated call. The remaining methods map one-to-one onto backend
// endpoints and return:
//   - *ServerError when the backend answers success:false,
//   - ErrUnauthorized when an authenticated call is rejected with 401,
//   - ErrUnavailable (wrapped) on transport failures or non-JSON bodies.
type Client interface {
	SetToken(token string)

	Login(ctx context.Context, email, password string) (string, models.UserProfile, error)
	Signup(ctx context.Context, name, email, password string) (string, models.UserProfile, error)
	Profile(ctx context.Context) (models.UserProfile, error)

	SetupTwoFA(ctx context.Context) (string, error)
	VerifyTwoFA(ctx context.Context, code string) error
	DisableTwoFA(ctx context.Context, code string) error

	CheckFavorite(ctx context.Context, movieID int64) (bool, error)
	AddFavorite(ctx context.Context, fav models.Favorite) error
	RemoveFavorite(ctx context.Context, movieID int64) error
	Favorites(ctx context.Context) ([]models.Favorite, error)
}
