// Package services contains the application services for the movie client:
// authentication/session, two-factor enrollment, favorites, and catalog
// browsing. Services are headless: they mutate the session store and report
// state changes through a Notifier; rendering is the caller's concern.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/api"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/session"
	"github.com/a1br4h33m/IMDB-Redesign/internal/logging"
)

var (
	// ErrBusy is returned when the same action is invoked while a previous
	// invocation is still in flight.
	ErrBusy = errors.New("another request is already in progress")

	// ErrNotAuthenticated is returned by operations that require an active
	// session when none is stored.
	ErrNotAuthenticated = errors.New("not logged in")
)

// ValidationError reports a locally detected input problem. Operations
// returning it have not touched the network or the session store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Deps bundles the collaborators shared by the client services.
type Deps struct {
	Client   api.Client
	Store    session.Store
	Notifier Notifier
	Log      logging.Logger

	// ClearSessionOnUnauthorized drops the stored session when an
	// authenticated call is rejected with 401. Disabled by default: a stale
	// token then stays put until the user logs out or logs in again.
	ClearSessionOnUnauthorized bool
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = NopNotifier{}
	}
	return d
}

// requireSession loads the stored session or reports ErrNotAuthenticated.
func (d *Deps) requireSession(ctx context.Context) (*session.Session, error) {
	s, err := d.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s == nil {
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

// authFailure wraps a failed authenticated call and, when configured, drops
// the session after a token rejection.
func (d *Deps) authFailure(ctx context.Context, opName string, err error) error {
	if d.ClearSessionOnUnauthorized && errors.Is(err, api.ErrUnauthorized) {
		if cerr := d.Store.Clear(ctx); cerr != nil {
			d.Log.Error(ctx, "clear session after unauthorized response", "err", cerr)
		} else {
			d.Client.SetToken("")
			d.Notifier.SessionChanged(nil)
			d.Log.Warn(ctx, "session cleared after unauthorized response", "op", opName)
		}
	}
	return fmt.Errorf("%s: %w", opName, err)
}
