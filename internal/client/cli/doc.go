// Package cli provides the interactive movie-catalog command-line client.
//
// It wires configuration, the persisted session store, the backend API
// client, the catalog client, and an interactive REPL. Typical flow: restore
// a previously saved session, then browse rails, search, open movie details,
// and manage favorites and the two-factor settings.
//
// Key features:
//   - Login / Signup / Logout with a persisted session
//   - Browse the featured movie and the trending/top-rated/upcoming rails
//   - Search the catalog and open per-movie details with cast
//   - Add / remove favorites
//   - Enroll or disable the authenticator-app second factor
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
