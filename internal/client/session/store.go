// Package session holds the durable client-side cache of the authenticated
// identity: the bearer token and the user profile snapshot, persisted across
// restarts.
package session

import (
	"context"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/models"
)

// Session is the (token, profile) pair representing an authenticated client.
type Session struct {
	Token string
	User  models.UserProfile
}

// Store persists at most one session.
//
// Contract:
//   - Save overwrites any prior session; token and profile are written
//     together, never one without the other.
//   - Load returns nil when no session is stored, or when the stored profile
//     does not parse (a half-written or corrupted record counts as absent).
//   - Clear removes both fields unconditionally and is idempotent.
//
// There is no client-side expiry: a stored token is kept until a backend call
// rejects it and the caller decides to clear.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, token string, user models.UserProfile) error
	Clear(ctx context.Context) error
}
